package iterators

// Collect drains the remaining elements of the iterator into a slice.
func Collect[T any](i Iterator[T]) ([]T, error) {
	vs := make([]T, 0)
	err := i.ForEachRemaining(func(v T) error {
		vs = append(vs, v)
		return nil
	})
	return vs, err
}
