// Package ranges provides iterators over inclusive numeric ranges.
package ranges

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/primiter/port/iterators"
)

// Int returns an iterator over the [begin, end] range.
// The range is empty when begin is greater than end.
func Int[T constraints.Integer](begin, end T) iterators.Iterator[T] {
	return &intRange[T]{next: begin, end: end, done: end < begin}
}

// Char returns an iterator over the [begin, end] range of UTF-16 code units.
func Char(begin, end uint16) iterators.Iterator[uint16] {
	return Int(begin, end)
}

type intRange[T constraints.Integer] struct {
	iterators.Unremovable
	next T
	end  T
	// done is tracked separately, since end may be the max value of T.
	done bool
}

func (r *intRange[T]) HasNext() bool {
	return !r.done
}

func (r *intRange[T]) Next() (T, error) {
	if r.done {
		var zero T
		return zero, iterators.ErrExhausted
	}
	v := r.next
	if v == r.end {
		r.done = true
	} else {
		r.next++
	}
	return v, nil
}

func (r *intRange[T]) ForEachRemaining(action func(T) error) error {
	return iterators.ForEachRemaining[T](r, action)
}
