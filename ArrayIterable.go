package primiter

import (
	"slices"

	"go.llib.dev/primiter/port/iterators"
)

// NewArrayIterable returns an iterable over a copy of the values.
// A nil slice is an empty sequence.
func NewArrayIterable[T Primitive](values []T) *ArrayIterable[T] {
	return &ArrayIterable[T]{values: slices.Clone(values)}
}

// ArrayIterable makes ArrayIterator values over the same sequence.
// The sequence is never modified after construction,
// so iterators of the same ArrayIterable can be used from different goroutines.
type ArrayIterable[T Primitive] struct {
	values []T
}

// Iterator returns a new cursor positioned at the first element.
func (i *ArrayIterable[T]) Iterator() iterators.Iterator[T] {
	return &ArrayIterator[T]{values: i.values}
}

func (i *ArrayIterable[T]) ForEach(action func(T) error) error {
	return iterators.ForEach[T](i, action)
}

// Len returns the number of elements in the sequence.
func (i *ArrayIterable[T]) Len() int {
	return len(i.values)
}
