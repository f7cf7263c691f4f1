package iterators

// Slice returns a read-only Iterator over the elements of the slice.
// The slice is not copied.
func Slice[T any](slice []T) Iterator[T] {
	return &sliceIter[T]{Slice: slice}
}

type sliceIter[T any] struct {
	Unremovable
	Slice []T

	index int
}

func (i *sliceIter[T]) HasNext() bool {
	return i.index < len(i.Slice)
}

func (i *sliceIter[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v := i.Slice[i.index]
	i.index++
	return v, nil
}

func (i *sliceIter[T]) ForEachRemaining(action func(T) error) error {
	return ForEachRemaining[T](i, action)
}
