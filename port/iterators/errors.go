package iterators

import "go.llib.dev/primiter/pkg/errorkit"

const (
	// ErrNilArgument is returned when a required argument, like an origin, a conversion function or an action, is nil.
	ErrNilArgument errorkit.Error = "iterators: nil argument"
	// ErrExhausted is returned by Next when the iterator has no more element.
	ErrExhausted errorkit.Error = "iterators: no more element"
	// ErrIllegalState is returned by Remove when Next was not called since the construction or since the last Remove.
	ErrIllegalState errorkit.Error = "iterators: remove without a preceding next"
	// ErrUnsupportedOperation is returned by Remove on iterators that can't remove elements.
	ErrUnsupportedOperation errorkit.Error = "iterators: unsupported operation"
)
