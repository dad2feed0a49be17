package info

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
	"github.com/gruppe-adler/heightmap-raiser/internal/remap"
	"github.com/gruppe-adler/heightmap-raiser/internal/report"
	"github.com/gruppe-adler/heightmap-raiser/internal/validate"
	"github.com/spf13/pflag"
)

// Run is the program's entrypoint
func Run(flagSet *pflag.FlagSet, args []string) error {
	return run(flagSet, args, os.Stdout)
}

func run(flagSet *pflag.FlagSet, args []string, out io.Writer) error {
	inputPtr := flagSet.StringP("fileIn", "i", "", "Path to the heightmap")
	bitmodePtr := flagSet.StringP("bitmode", "b", "", "8bit or 16bit heightmap (8 or 16)")
	altPtr := flagSet.IntP("alt", "a", 0, "Height of the terrain, to preview a raise")
	depthPtr := flagSet.IntP("depth", "d", 0, "The depth to add, to preview a raise")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		flagSet.PrintDefaults()
		return fmt.Errorf("%w: %v", validate.ErrUsage, err)
	}

	// make sure both flags are present
	if !flagSet.Changed("fileIn") || !flagSet.Changed("bitmode") {
		flagSet.PrintDefaults()
		return fmt.Errorf("%w: --fileIn and --bitmode are required", validate.ErrUsage)
	}

	depth, err := heightmap.ParseBitDepth(*bitmodePtr)
	if err != nil {
		return err
	}

	if err := validate.InputFile(*inputPtr); err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}

	stat, err := os.Stat(*inputPtr)
	if err != nil {
		return err
	}

	samples, err := heightmap.Read(*inputPtr, depth)
	if err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}

	min, max := heightmap.Stats(samples)

	fmt.Fprintf(out, "File:       %s (%s)\n", *inputPtr, humanize.IBytes(uint64(stat.Size())))
	fmt.Fprintf(out, "Bit depth:  %s\n", depth)
	fmt.Fprintf(out, "Samples:    %s\n", humanize.Comma(int64(samples.Len())))
	fmt.Fprintf(out, "Min / Max:  %d / %d\n", min, max)
	fmt.Fprintf(out, "BLAKE3:     %s\n", report.Digest(samples))

	if !flagSet.Changed("alt") && !flagSet.Changed("depth") {
		return nil
	}

	params := remap.Params{Altitude: *altPtr, Depth: *depthPtr}
	if err := params.Validate(); err != nil {
		return err
	}

	floor := remap.FloorColor(params, depth)
	fmt.Fprintf(out, "\nRaise by %d below altitude %d:\n", params.Depth, params.Altitude)
	fmt.Fprintf(out, "Unity height:  %d\n", params.UnityHeight())
	fmt.Fprintf(out, "Floor color:   %d\n", floor)
	fmt.Fprintf(out, "New Min / Max: %d / %d\n", remap.Value(min, floor, depth.Max()), remap.Value(max, floor, depth.Max()))

	return nil
}
