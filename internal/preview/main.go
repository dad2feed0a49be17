package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
	"github.com/gruppe-adler/heightmap-raiser/internal/validate"
	"github.com/nfnt/resize"
	"github.com/spf13/pflag"
)

// Run is the program's entrypoint
func Run(flagSet *pflag.FlagSet, args []string) error {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.StringP("fileIn", "i", "", "Path to the heightmap")
	outputPtr := flagSet.StringP("fileOut", "o", "", "Path of the PNG to write")
	bitmodePtr := flagSet.StringP("bitmode", "b", "", "8bit or 16bit heightmap (8 or 16)")
	widthPtr := flagSet.IntP("width", "w", 0, "Number of samples per row")
	sizesPtr := flagSet.IntSlice("sizes", []int{128, 256, 512, 1024}, "Widths of the downscaled previews")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		flagSet.PrintDefaults()
		return fmt.Errorf("%w: %v", validate.ErrUsage, err)
	}

	// make sure all flags are present
	for _, name := range []string{"fileIn", "fileOut", "bitmode", "width"} {
		if !flagSet.Changed(name) {
			flagSet.PrintDefaults()
			return fmt.Errorf("%w: --%s is required", validate.ErrUsage, name)
		}
	}

	depth, err := heightmap.ParseBitDepth(*bitmodePtr)
	if err != nil {
		return err
	}
	if err := validate.InputFile(*inputPtr); err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}
	if err := validate.OutputFile(*outputPtr); err != nil {
		return err
	}

	timer = time.Now()
	fmt.Println("▶️  Loading heightmap")
	samples, err := heightmap.Read(*inputPtr, depth)
	if err != nil {
		return fmt.Errorf("reading heightmap: %w", err)
	}
	fmt.Println("✔️  Loaded heightmap in", time.Now().Sub(timer).String())

	previewImage, err := Image(samples, *widthPtr)
	if err != nil {
		return err
	}

	timer = time.Now()
	fmt.Println("▶️  Writing full size preview image")
	if err := saveImage(*outputPtr, previewImage); err != nil {
		return err
	}
	fmt.Println("✔️  Wrote full size preview image in", time.Now().Sub(timer).String())

	for _, size := range *sizesPtr {
		if size <= 0 || size >= previewImage.Bounds().Dx() {
			continue
		}

		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		img := resize.Resize(uint(size), 0, previewImage, resize.MitchellNetravali)
		if err := saveImage(SizedPath(*outputPtr, size), img); err != nil {
			return err
		}

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())

	return nil
}

// Image lays the samples out in rows of width samples. A trailing partial
// row is dropped.
func Image(samples heightmap.Samples, width int) (image.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width needs to be greater than 0", validate.ErrUsage)
	}

	height := samples.Len() / width
	if height == 0 {
		return nil, fmt.Errorf("heightmap has %d samples, less than one row of %d", samples.Len(), width)
	}

	rect := image.Rect(0, 0, width, height)

	switch s := samples.(type) {
	case heightmap.U8Samples:
		img := image.NewGray(rect)
		copy(img.Pix, s[:width*height])
		return img, nil
	case heightmap.U16Samples:
		img := image.NewGray16(rect)
		// Gray16 stores big-endian
		for i, v := range s[:width*height] {
			img.Pix[2*i] = uint8(v >> 8)
			img.Pix[2*i+1] = uint8(v)
		}
		return img, nil
	}

	return nil, fmt.Errorf("unsupported sample buffer %T", samples)
}

// SizedPath returns the path of the downscaled preview, preview.png -> preview_256.png
func SizedPath(outputPath string, size int) string {
	ext := filepath.Ext(outputPath)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(outputPath, ext), size, ext)
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(out, img)
	closeErr := out.Close()
	if err != nil {
		return err
	}

	return closeErr
}
