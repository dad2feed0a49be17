package raise

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
	"github.com/gruppe-adler/heightmap-raiser/internal/remap"
	"github.com/gruppe-adler/heightmap-raiser/internal/report"
	"github.com/gruppe-adler/heightmap-raiser/internal/validate"
	"github.com/spf13/pflag"
)

var requiredFlags = []string{"fileIn", "fileOut", "bitmode", "alt", "depth"}

// Run is the program's entrypoint
func Run(flagSet *pflag.FlagSet, args []string) error {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.StringP("fileIn", "i", "", "The name of the unity heightmap")
	outputPtr := flagSet.StringP("fileOut", "o", "", "The name of the new generated heightmap")
	bitmodePtr := flagSet.StringP("bitmode", "b", "", "8bit or 16bit heightmap (8 or 16)")
	altPtr := flagSet.IntP("alt", "a", 0, "Height of the terrain")
	depthPtr := flagSet.IntP("depth", "d", 0, "The depth to add to the heightmap")
	metaPtr := flagSet.String("meta", "", "Write a JSON report of the run to this path")
	workersPtr := flagSet.Int("workers", runtime.GOMAXPROCS(0), "Number of goroutines used to remap samples")
	flagSet.Usage = func() { usage(flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		flagSet.Usage()
		return fmt.Errorf("%w: %v", validate.ErrUsage, err)
	}

	// make sure all mandatory flags are present
	for _, name := range requiredFlags {
		if !flagSet.Changed(name) {
			flagSet.Usage()
			return fmt.Errorf("%w: --%s is required", validate.ErrUsage, name)
		}
	}

	depth, err := heightmap.ParseBitDepth(*bitmodePtr)
	if err != nil {
		return err
	}

	params := remap.Params{Altitude: *altPtr, Depth: *depthPtr}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := validate.InputFile(*inputPtr); err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}
	if err := validate.OutputFile(*outputPtr); err != nil {
		return fmt.Errorf("saving new map: %w", err)
	}
	if *metaPtr != "" {
		if err := validate.OutputFile(*metaPtr); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	fmt.Printf("ℹ️  New height setting for Unity: %d\n", params.UnityHeight())

	// read heightmap
	timer = time.Now()
	fmt.Println("▶️  Reading heightmap")
	samples, err := heightmap.Read(*inputPtr, depth)
	if err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}
	fmt.Printf("✔️  Read %d samples (%s) in %s\n", samples.Len(), depth, time.Now().Sub(timer).String())

	var inputDigest string
	if *metaPtr != "" {
		inputDigest = report.Digest(samples)
	}

	// remap heights
	timer = time.Now()
	fmt.Println("▶️  Generating new map")
	samples, err = remap.Apply(samples, params, remap.WithWorkers(*workersPtr))
	if err != nil {
		return fmt.Errorf("generating new map: %w", err)
	}
	floor := remap.FloorColor(params, depth)
	fmt.Printf("✔️  Generated new map with floor color %d in %s\n", floor, time.Now().Sub(timer).String())

	// write heightmap
	timer = time.Now()
	fmt.Println("▶️  Saving the new map")
	if err := heightmap.Write(*outputPtr, samples); err != nil {
		return fmt.Errorf("saving new map: %w", err)
	}
	fmt.Println("✔️  Saved the new map in", time.Now().Sub(timer).String())

	// write report
	if *metaPtr != "" {
		timer = time.Now()
		fmt.Println("▶️  Writing report")
		err := report.Write(*metaPtr, report.Report{
			Input:        *inputPtr,
			Output:       *outputPtr,
			BitDepth:     int(depth),
			Altitude:     params.Altitude,
			Depth:        params.Depth,
			UnityHeight:  params.UnityHeight(),
			FloorColor:   floor,
			Samples:      samples.Len(),
			InputBlake3:  inputDigest,
			OutputBlake3: report.Digest(samples),
		})
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Println("✔️  Wrote report in", time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Done in %s, map is ready for import in Unity!\n", time.Now().Sub(start).String())

	return nil
}

func usage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "\n  Example usage:\n  %s -i terrain.raw -o new_terrain.raw -b 16 -a 350 -d 35\n\n", os.Args[0])
	fmt.Fprint(os.Stderr, flagSet.FlagUsages())
}
