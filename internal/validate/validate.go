package validate

import (
	"errors"
	"fmt"
	"os"

	"github.com/gruppe-adler/heightmap-raiser/internal/utils"
)

// ErrUsage is returned by subcommands when flags are missing or malformed
var ErrUsage = errors.New("invalid arguments")

// InputFile validates that given path is an existing heightmap file.
// A missing file wraps fs.ErrNotExist.
func InputFile(inputPath string) error {
	if inputPath == "" {
		return fmt.Errorf("%w: no input file given", ErrUsage)
	}

	if utils.IsDirectory(inputPath) {
		return fmt.Errorf("%s is a directory", inputPath)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return err
	}

	if !utils.IsFile(inputPath) {
		return fmt.Errorf("%s is no regular file", inputPath)
	}

	return nil
}

// OutputFile validates that a file can be created at given path
func OutputFile(outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("%w: no output file given", ErrUsage)
	}

	if utils.IsDirectory(outputPath) {
		return fmt.Errorf("%s is a directory", outputPath)
	}

	dir := utils.ParentDirectory(outputPath)
	if !utils.IsDirectory(dir) {
		return fmt.Errorf("output directory %s does not exist", dir)
	}

	return nil
}
