package primiter

import (
	"slices"

	"go.llib.dev/primiter/port/iterators"
)

// NewArrayIterator returns an iterator over a copy of the values.
// A nil slice is an empty sequence.
func NewArrayIterator[T Primitive](values []T) *ArrayIterator[T] {
	return &ArrayIterator[T]{values: slices.Clone(values)}
}

// ArrayIterator is a finite iterator over a fixed sequence of values.
// It doesn't support removal.
type ArrayIterator[T Primitive] struct {
	iterators.Unremovable
	values []T
	cursor int
}

func (i *ArrayIterator[T]) HasNext() bool {
	return i.cursor < len(i.values)
}

func (i *ArrayIterator[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, iterators.ErrExhausted
	}
	v := i.values[i.cursor]
	i.cursor++
	return v, nil
}

func (i *ArrayIterator[T]) ForEachRemaining(action func(T) error) error {
	return iterators.ForEachRemaining[T](i, action)
}
