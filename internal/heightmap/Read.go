package heightmap

import (
	"errors"
	"io"
	"os"

	"github.com/gruppe-adler/heightmap-raiser/internal/compression"
)

// Read heightmap from given path
func Read(path string, depth BitDepth) (Samples, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Kind: openKind(err), Err: err}
	}
	defer file.Close()

	data, err := readAll(file, compression.FromPath(path))
	if err != nil {
		kind := KindReadFailure
		if errors.Is(err, io.ErrUnexpectedEOF) {
			kind = KindUnexpectedEOF
		}
		return nil, &IOError{Op: "read", Path: path, Kind: kind, Err: err}
	}

	return Decode(data, depth), nil
}

func readAll(file *os.File, format compression.Format) ([]byte, error) {
	if format != compression.None {
		r, err := compression.NewReader(format, file)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return io.ReadAll(r)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	data := make([]byte, info.Size())
	_, err = io.ReadFull(file, data)
	if errors.Is(err, io.EOF) {
		// io.ReadFull only returns io.EOF when nothing was read
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}
