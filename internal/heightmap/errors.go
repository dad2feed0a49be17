package heightmap

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies an IOError
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindPermissionDenied
	KindOpenFailure
	KindUnexpectedEOF
	KindReadFailure
	KindCreateFailure
	KindWriteFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindOpenFailure:
		return "open failure"
	case KindUnexpectedEOF:
		return "unexpected end of file"
	case KindReadFailure:
		return "read failure"
	case KindCreateFailure:
		return "create failure"
	case KindWriteFailure:
		return "write failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IOError is returned by Read and Write.
type IOError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an IOError of kind k.
func IsKind(err error, k Kind) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && ioErr.Kind == k
}

func openKind(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindOpenFailure
	}
}
