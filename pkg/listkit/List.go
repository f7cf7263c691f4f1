// Package listkit implements a growable ordered collection,
// whose iterators can remove elements while iterating.
package listkit

import (
	"slices"

	"go.llib.dev/primiter/port/iterators"
)

// Of returns a List holding a copy of the values.
func Of[T any](values ...T) *List[T] {
	return &List[T]{values: slices.Clone(values)}
}

// List is an ordered collection of values.
// The zero value is an empty list ready to use.
type List[T any] struct {
	values []T
}

func (l *List[T]) Append(vs ...T) {
	l.values = append(l.values, vs...)
}

func (l *List[T]) Len() int {
	return len(l.values)
}

// ToSlice returns a copy of the current elements.
func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.values)
}

// Iterator returns a cursor that supports Remove.
// Modifying the List through anything but the returned iterator while it is in use
// leaves the iterator's position undefined.
func (l *List[T]) Iterator() iterators.Iterator[T] {
	return &listIterator[T]{list: l, last: -1}
}

func (l *List[T]) ForEach(action func(T) error) error {
	return iterators.ForEach[T](l, action)
}

type listIterator[T any] struct {
	list   *List[T]
	cursor int
	// last is the index of the element returned by the latest Next, or -1 when there is none.
	last int
}

func (i *listIterator[T]) HasNext() bool {
	return i.cursor < len(i.list.values)
}

func (i *listIterator[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, iterators.ErrExhausted
	}
	v := i.list.values[i.cursor]
	i.last = i.cursor
	i.cursor++
	return v, nil
}

func (i *listIterator[T]) Remove() error {
	if i.last < 0 {
		return iterators.ErrIllegalState
	}
	i.list.values = slices.Delete(i.list.values, i.last, i.last+1)
	i.cursor = i.last
	i.last = -1
	return nil
}

func (i *listIterator[T]) ForEachRemaining(action func(T) error) error {
	return iterators.ForEachRemaining[T](i, action)
}
