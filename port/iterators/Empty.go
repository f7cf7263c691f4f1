package iterators

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() Iterator[T] {
	return &emptyIter[T]{}
}

type emptyIter[T any] struct {
	Unremovable
}

func (i *emptyIter[T]) HasNext() bool {
	return false
}

func (i *emptyIter[T]) Next() (T, error) {
	var v T
	return v, ErrExhausted
}

func (i *emptyIter[T]) ForEachRemaining(action func(T) error) error {
	return ForEachRemaining[T](i, action)
}
