// ierrors package provides a thin facade over "github.com/cockroachdb/errors".
// Errors created or wrapped here carry a stacktrace and keep working with Is
// across any number of wrapping layers.
package ierrors

import (
	"github.com/cockroachdb/errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. The %w verb wraps its operand.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Wrap prepends an error with a message and wraps it into a new error.
// Wrap returns nil if err is nil.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf prepends an error with a message format specifier and arguments
// and wraps it into a new error.
// Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stacktrace at the point WithStack was called.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
