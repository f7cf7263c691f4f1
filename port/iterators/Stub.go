package iterators

// Stub wraps an Iterator, and lets you replace the behaviour of its methods one by one.
// By default every method calls the wrapped iterator.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:             i,
		StubHasNext:          i.HasNext,
		StubNext:             i.Next,
		StubRemove:           i.Remove,
		StubForEachRemaining: i.ForEachRemaining,
	}
}

type StubIter[T any] struct {
	Iterator             Iterator[T]
	StubHasNext          func() bool
	StubNext             func() (T, error)
	StubRemove           func() error
	StubForEachRemaining func(action func(T) error) error
}

// wrapper

func (m *StubIter[T]) HasNext() bool {
	return m.StubHasNext()
}

func (m *StubIter[T]) Next() (T, error) {
	return m.StubNext()
}

func (m *StubIter[T]) Remove() error {
	return m.StubRemove()
}

func (m *StubIter[T]) ForEachRemaining(action func(T) error) error {
	return m.StubForEachRemaining(action)
}

// Resetting stubs

func (m *StubIter[T]) ResetHasNext() {
	m.StubHasNext = m.Iterator.HasNext
}

func (m *StubIter[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *StubIter[T]) ResetRemove() {
	m.StubRemove = m.Iterator.Remove
}

func (m *StubIter[T]) ResetForEachRemaining() {
	m.StubForEachRemaining = m.Iterator.ForEachRemaining
}
