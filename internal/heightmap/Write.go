package heightmap

import (
	"fmt"
	"io"
	"os"

	"github.com/gruppe-adler/heightmap-raiser/internal/compression"
)

// Write heightmap samples to given path, truncating an existing file
func Write(path string, samples Samples) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "write", Path: path, Kind: KindCreateFailure, Err: err}
	}

	err = writeAll(file, compression.FromPath(path), Encode(samples))
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return &IOError{Op: "write", Path: path, Kind: KindWriteFailure, Err: err}
	}

	return nil
}

func writeAll(file io.Writer, format compression.Format, data []byte) error {
	w, err := compression.NewWriter(format, file)
	if err != nil {
		return err
	}

	n, err := w.Write(data)
	if err == nil && n != len(data) {
		err = fmt.Errorf("%w: wrote %d of %d bytes", io.ErrShortWrite, n, len(data))
	}
	closeErr := w.Close()
	if err == nil {
		err = closeErr
	}

	return err
}
