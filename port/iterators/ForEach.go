package iterators

// ForEachRemaining is the default bulk traversal of a Cursor.
// Iterator implementations without a more specific strategy delegate their ForEachRemaining method to it.
//
// Errors from Next or from the action end the iteration and returned as is.
// The elements consumed up to that point stay consumed.
func ForEachRemaining[T any](c Cursor[T], action func(T) error) error {
	if action == nil {
		return ErrNilArgument.F("action is nil")
	}
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return err
		}
		if err := action(v); err != nil {
			return err
		}
	}
	return nil
}

// ForEach is the default Iterable.ForEach behaviour.
// It takes a fresh Iterator from the iterable, and calls ForEachRemaining on it.
// A nil action is rejected before the iterator is made.
func ForEach[T any](iterable interface{ Iterator() Iterator[T] }, action func(T) error) error {
	if action == nil {
		return ErrNilArgument.F("action is nil")
	}
	return iterable.Iterator().ForEachRemaining(action)
}
