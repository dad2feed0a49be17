package remap

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAltitude = errors.New("altitude needs to be greater than 0")
	ErrInvalidDepth    = errors.New("depth needs to be 0 or greater")
	ErrOverflow        = errors.New("altitude + depth is too large")
)

// chunkSize is the number of samples a single worker rewrites at once.
// Buffers up to this size are remapped on the calling goroutine.
const chunkSize = 1 << 16

// Params are the user supplied remap settings
type Params struct {
	// Altitude is the height of the existing terrain
	Altitude int
	// Depth is the height of the band reserved below the existing terrain
	Depth int
}

// Validate checks altitude > 0, depth >= 0 and that their sum fits the
// 32 bit terrain height Unity stores.
func (p Params) Validate() error {
	if p.Altitude <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidAltitude, p.Altitude)
	}
	if p.Depth < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidDepth, p.Depth)
	}
	if int64(p.Altitude)+int64(p.Depth) > math.MaxInt32 {
		return fmt.Errorf("%w: %d + %d", ErrOverflow, p.Altitude, p.Depth)
	}
	return nil
}

// UnityHeight is the terrain height to configure in Unity after importing
// the remapped heightmap.
func (p Params) UnityHeight() int {
	return p.Altitude + p.Depth
}

// FloorColor calculates the lowest sample value after remapping. The
// depth band is the share depth/(altitude+depth) of the full sample range.
// p must be valid.
//
// The ratio is evaluated in single precision and truncated, so existing
// terrain exports line up with heightmaps produced by earlier tooling.
func FloorColor(p Params, depth heightmap.BitDepth) int {
	max := depth.Max()

	floor := int(float32(max) / float32(p.Altitude+p.Depth) * float32(p.Depth))

	// float32 rounding may land on max for very large depths but never above it
	if floor > max {
		floor = max
	}
	if floor < 0 {
		floor = 0
	}

	return floor
}

// Value remaps a single sample from [0, max] into [floor, max].
func Value(s, floor, max int) int {
	return int(int64(s)*int64(max-floor)/int64(max)) + floor
}

type options struct {
	workers int
}

// Option configures Apply
type Option func(*options)

// WithWorkers limits the number of goroutines Apply uses. 1 disables
// parallel processing.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Apply remaps every sample in place and returns the same buffer.
func Apply(samples heightmap.Samples, p Params, opts ...Option) (heightmap.Samples, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	floor := FloorColor(p, samples.BitDepth())

	switch s := samples.(type) {
	case heightmap.U8Samples:
		forEachChunk(len(s), o.workers, func(from, to int) {
			remap8(s[from:to], floor)
		})
	case heightmap.U16Samples:
		forEachChunk(len(s), o.workers, func(from, to int) {
			remap16(s[from:to], floor)
		})
	default:
		return nil, fmt.Errorf("unsupported sample buffer %T", samples)
	}

	return samples, nil
}

func remap8(s heightmap.U8Samples, floor int) {
	for i, v := range s {
		s[i] = uint8(Value(int(v), floor, 255))
	}
}

func remap16(s heightmap.U16Samples, floor int) {
	for i, v := range s {
		s[i] = uint16(Value(int(v), floor, 65535))
	}
}

// forEachChunk splits [0, n) into disjoint chunks and runs fn on them,
// at most workers at a time.
func forEachChunk(n, workers int, fn func(from, to int)) {
	if workers <= 1 || n <= chunkSize {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for from := 0; from < n; from += chunkSize {
		to := from + chunkSize
		if to > n {
			to = n
		}

		g.Go(func() error {
			fn(from, to)
			return nil
		})
	}

	// workers never fail
	_ = g.Wait()
}
