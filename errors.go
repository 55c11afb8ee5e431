package bink

import (
	"errors"
	"fmt"

	"github.com/binkstream/bink/internal/bitio"
)

// IOError wraps a byte-source or bitstream exhaustion failure. It satisfies
// errors.Is/As against both *IOError and *bitio.IoError.
type IOError struct {
	Op  string
	err error
}

func (e *IOError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("bink: io error: %s: %v", e.Op, e.err)
	}
	return "bink: io error: " + e.Op
}

func (e *IOError) Unwrap() error { return e.err }

// Is reports whether target is also an *IOError or a *bitio.IoError, so
// callers can match either the public or internal bit-exhaustion type
// with a single errors.Is check.
func (e *IOError) Is(target error) bool {
	switch target.(type) {
	case *IOError, *bitio.IoError:
		return true
	default:
		return false
	}
}

func newIOError(op string, err error) *IOError {
	return &IOError{Op: op, err: err}
}

// DecodingError wraps a structural stream violation.
type DecodingError struct {
	Op  string
	err error
}

func (e *DecodingError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("bink: decoding error: %s: %v", e.Op, e.err)
	}
	return "bink: decoding error: " + e.Op
}

func (e *DecodingError) Unwrap() error { return e.err }

func newDecodingError(op string, err error) *DecodingError {
	return &DecodingError{Op: op, err: err}
}

// ErrNoMoreFrames is returned by (*Decoder).NextFrame once every indexed
// frame has been consumed.
var ErrNoMoreFrames = errors.New("bink: no more frames")
