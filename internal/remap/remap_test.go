package remap

import (
	"errors"
	"testing"

	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
)

var paramGrid = []Params{
	{Altitude: 1, Depth: 0},
	{Altitude: 1, Depth: 1},
	{Altitude: 1, Depth: 1000000},
	{Altitude: 100, Depth: 0},
	{Altitude: 350, Depth: 35},
	{Altitude: 600, Depth: 400},
	{Altitude: 1000, Depth: 1},
	{Altitude: 65535, Depth: 65535},
	{Altitude: 2, Depth: 1<<31 - 3},
	{Altitude: 1<<31 - 1, Depth: 0},
}

func TestValidate(t *testing.T) {
	cases := []struct {
		params Params
		want   error
	}{
		{Params{Altitude: 350, Depth: 35}, nil},
		{Params{Altitude: 1, Depth: 0}, nil},
		{Params{Altitude: 0, Depth: 35}, ErrInvalidAltitude},
		{Params{Altitude: -4, Depth: 35}, ErrInvalidAltitude},
		{Params{Altitude: 350, Depth: -1}, ErrInvalidDepth},
		{Params{Altitude: 1 << 30, Depth: 1 << 30}, ErrOverflow},
	}

	for _, c := range cases {
		err := c.params.Validate()
		if c.want == nil {
			if err != nil {
				t.Errorf("%+v: unexpected error %v", c.params, err)
			}
			continue
		}
		if !errors.Is(err, c.want) {
			t.Errorf("%+v: got %v, want %v", c.params, err, c.want)
		}
	}
}

func TestFloorColorScenarios(t *testing.T) {
	cases := []struct {
		params Params
		depth  heightmap.BitDepth
		want   int
	}{
		{Params{Altitude: 350, Depth: 35}, heightmap.Depth8, 23},
		{Params{Altitude: 100, Depth: 0}, heightmap.Depth16, 0},
		{Params{Altitude: 100, Depth: 100}, heightmap.Depth8, 127},
		{Params{Altitude: 100, Depth: 100}, heightmap.Depth16, 32767},
		{Params{Altitude: 350, Depth: 35}, heightmap.Depth16, 5957},
		// single precision results, double precision gives 21845 and 50
		{Params{Altitude: 42, Depth: 21}, heightmap.Depth16, 21844},
		{Params{Altitude: 84, Depth: 21}, heightmap.Depth8, 51},
	}

	for _, c := range cases {
		if got := FloorColor(c.params, c.depth); got != c.want {
			t.Errorf("FloorColor(%+v, %s) = %d, want %d", c.params, c.depth, got, c.want)
		}
	}
}

func TestScenario8Bit(t *testing.T) {
	samples, err := Apply(heightmap.U8Samples{0, 255}, Params{Altitude: 350, Depth: 35})
	if err != nil {
		t.Fatal(err)
	}

	s := samples.(heightmap.U8Samples)
	if s[0] != 23 || s[1] != 255 {
		t.Fatalf("got %v, want [23 255]", []uint8(s))
	}
}

func TestDepthZeroIsIdentity(t *testing.T) {
	s := make(heightmap.U16Samples, 65536)
	for i := range s {
		s[i] = uint16(i)
	}

	if _, err := Apply(s, Params{Altitude: 100, Depth: 0}); err != nil {
		t.Fatal(err)
	}

	for i, v := range s {
		if int(v) != i {
			t.Fatalf("sample %d remapped to %d", i, v)
		}
	}
}

func TestRangeAndMonotonicity(t *testing.T) {
	for _, depth := range []heightmap.BitDepth{heightmap.Depth8, heightmap.Depth16} {
		max := depth.Max()

		for _, p := range paramGrid {
			floor := FloorColor(p, depth)
			if floor < 0 || floor > max {
				t.Fatalf("%s %+v: floor %d outside [0, %d]", depth, p, floor, max)
			}

			prev := -1
			for s := 0; s <= max; s++ {
				v := Value(s, floor, max)
				if v < floor || v > max {
					t.Fatalf("%s %+v: sample %d -> %d outside [%d, %d]", depth, p, s, v, floor, max)
				}
				if v < prev {
					t.Fatalf("%s %+v: sample %d -> %d is below previous %d", depth, p, s, v, prev)
				}
				prev = v
			}

			if got := Value(max, floor, max); got != max {
				t.Fatalf("%s %+v: max maps to %d", depth, p, got)
			}
			if got := Value(0, floor, max); got != floor {
				t.Fatalf("%s %+v: 0 maps to %d, want floor %d", depth, p, got, floor)
			}
		}
	}
}

func TestLargeDepthCompressesTowardsMax(t *testing.T) {
	floor := FloorColor(Params{Altitude: 1, Depth: 1000000}, heightmap.Depth8)
	if floor < 254 {
		t.Fatalf("floor = %d, expected close to 255", floor)
	}

	floor = FloorColor(Params{Altitude: 1000000, Depth: 1}, heightmap.Depth16)
	if floor != 0 {
		t.Fatalf("floor = %d, expected 0", floor)
	}
}

func TestApplyParallelMatchesSequential(t *testing.T) {
	const n = 5*chunkSize + 123
	p := Params{Altitude: 600, Depth: 400}

	seq := make(heightmap.U16Samples, n)
	for i := range seq {
		seq[i] = uint16(i * 2654435761 >> 7)
	}
	par := make(heightmap.U16Samples, n)
	copy(par, seq)

	if _, err := Apply(seq, p, WithWorkers(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(par, p, WithWorkers(8)); err != nil {
		t.Fatal(err)
	}

	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("sample %d: sequential %d, parallel %d", i, seq[i], par[i])
		}
	}
}

func TestApplyKeepsBuffer(t *testing.T) {
	in := heightmap.U8Samples{10, 20, 30}

	out, err := Apply(in, Params{Altitude: 10, Depth: 10})
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 3 || out.BitDepth() != heightmap.Depth8 {
		t.Fatalf("unexpected result %v", out)
	}
	// floor 127: 10 * 128 / 255 + 127
	if in[0] != 132 || out.At(0) != 132 {
		t.Fatalf("Apply did not remap in place: in %d, out %d", in[0], out.At(0))
	}
}

func TestApplyRejectsInvalidParams(t *testing.T) {
	in := heightmap.U8Samples{10, 20, 30}

	_, err := Apply(in, Params{Altitude: 0, Depth: 10})
	if !errors.Is(err, ErrInvalidAltitude) {
		t.Fatalf("expected ErrInvalidAltitude, got %v", err)
	}
	if in[0] != 10 {
		t.Fatalf("buffer modified despite invalid params")
	}
}
