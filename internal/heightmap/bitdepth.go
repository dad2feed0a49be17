package heightmap

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidBitDepth is returned for any bit mode other than 8 or 16
var ErrInvalidBitDepth = errors.New("bit mode needs to be 8 or 16")

// BitDepth is the width of a single sample
type BitDepth int

const (
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
)

// ParseBitDepth parses the value of the bitmode flag
func ParseBitDepth(s string) (BitDepth, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBitDepth, s)
	}

	return BitDepthFromInt(n)
}

// BitDepthFromInt converts 8 or 16 into a BitDepth
func BitDepthFromInt(n int) (BitDepth, error) {
	switch BitDepth(n) {
	case Depth8, Depth16:
		return BitDepth(n), nil
	}

	return 0, fmt.Errorf("%w: %d", ErrInvalidBitDepth, n)
}

// Max returns the largest sample value representable at this depth.
func (d BitDepth) Max() int {
	if d == Depth16 {
		return 65535
	}
	return 255
}

// Bytes returns the number of bytes per sample.
func (d BitDepth) Bytes() int {
	if d == Depth16 {
		return 2
	}
	return 1
}

func (d BitDepth) String() string {
	return fmt.Sprintf("%d bit", int(d))
}
