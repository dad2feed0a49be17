package heightmap

// Samples is a heightmap sample buffer of a single bit depth.
// It is implemented by U8Samples and U16Samples only; callers switch on
// the concrete type to reach the values.
type Samples interface {
	BitDepth() BitDepth
	Len() int
	// At returns sample i widened to int.
	At(i int) int

	samples()
}

// U8Samples holds 8 bit samples
type U8Samples []uint8

// U16Samples holds 16 bit samples
type U16Samples []uint16

func (U8Samples) BitDepth() BitDepth {
	return Depth8
}

func (s U8Samples) Len() int {
	return len(s)
}

func (s U8Samples) At(i int) int {
	return int(s[i])
}

func (U8Samples) samples() {}

func (U16Samples) BitDepth() BitDepth {
	return Depth16
}

func (s U16Samples) Len() int {
	return len(s)
}

func (s U16Samples) At(i int) int {
	return int(s[i])
}

func (U16Samples) samples() {}

// Stats returns the smallest and largest sample. Both are 0 for an empty buffer.
func Stats(s Samples) (min, max int) {
	if s.Len() == 0 {
		return 0, 0
	}

	min, max = s.At(0), s.At(0)
	for i := 1; i < s.Len(); i++ {
		v := s.At(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}
