package advanced

import "github.com/pkg/errors"

// Threading errors through every predicate evaluated during construction would
// clutter the insertion loop. Instead, we panic with a wrapped error, and the
// public API recovers to convert it back into an error.

var (
	ErrInsufficientInput    = errors.New("at least 3 points are required")
	ErrDuplicatePoint       = errors.New("duplicate point coordinates")
	ErrDegenerateGeometry   = errors.New("degenerate geometry")
	ErrCoincidentQueryPoint = errors.New("query point coincides with a vertex")
	ErrInvalidGrid          = errors.New("invalid grid parameters")
)

// Wraps errors raised with throw, so that we never swallow a panic that some
// other code raised with a plain error value.
type triangulateError struct {
	err error
}

func throw(err error) {
	panic(triangulateError{err})
}

// Panic with an error wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	throw(errors.Wrapf(cause, format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
