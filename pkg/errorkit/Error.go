// Package errorkit holds the error helpers shared by the primiter packages.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error, so sentinel errors can be declared as constants.
//
//	const ErrExhausted errorkit.Error = "iterators: no more element"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to the sentinel.
// The result matches both the sentinel and the cause with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &detailed{sentinel: err, cause: cause}
}

// F attaches a formatted detail message to the sentinel.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type detailed struct {
	sentinel Error
	cause    error
}

func (d *detailed) Error() string {
	return string(d.sentinel) + ": " + d.cause.Error()
}

func (d *detailed) Is(target error) bool {
	return target == d.sentinel
}

func (d *detailed) As(target any) bool {
	return errors.As(d.sentinel, target)
}

func (d *detailed) Unwrap() error {
	return d.cause
}
