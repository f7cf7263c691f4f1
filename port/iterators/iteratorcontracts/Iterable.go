package iteratorcontracts

import (
	"errors"
	"testing"

	"go.llib.dev/primiter/port/iterators"
	"go.llib.dev/testcase"
)

// Iterable is the behavioural contract of an iterators.Iterable implementation.
// The iterators it makes are verified with the Iterator contract as well.
type Iterable[T any] struct {
	// MakeSubject returns an iterable, and the elements its iterators expected to yield in order.
	MakeSubject func(tb testing.TB) (iterators.Iterable[T], []T)
	// Removable tells if the iterators of the subject support removal.
	Removable bool
}

type iterableSubject[T any] struct {
	Iterable iterators.Iterable[T]
	Expected []T
}

func (c Iterable[T]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterable", func(s *testcase.Spec) {
		sub := testcase.Let(s, func(t *testcase.T) iterableSubject[T] {
			itb, exp := c.MakeSubject(t)
			return iterableSubject[T]{Iterable: itb, Expected: exp}
		})

		s.Then("ForEach visits every element in order", func(t *testcase.T) {
			var vs []T
			t.Must.NoError(sub.Get(t).Iterable.ForEach(func(v T) error {
				vs = append(vs, v)
				return nil
			}))
			equalElements(t, sub.Get(t).Expected, vs)
		})

		s.Then("ForEach can be repeated", func(t *testcase.T) {
			for i := 0; i < 2; i++ {
				var n int
				t.Must.NoError(sub.Get(t).Iterable.ForEach(func(T) error {
					n++
					return nil
				}))
				t.Must.Equal(len(sub.Get(t).Expected), n)
			}
		})

		s.Then("ForEach rejects a nil action", func(t *testcase.T) {
			err := sub.Get(t).Iterable.ForEach(nil)
			t.Must.True(errors.Is(err, iterators.ErrNilArgument))
		})

		s.Then("iterators are independent from each other", func(t *testcase.T) {
			a := sub.Get(t).Iterable.Iterator()
			b := sub.Get(t).Iterable.Iterator()

			va, err := iterators.Collect(a)
			t.Must.NoError(err)
			t.Must.False(a.HasNext())

			vb, err := iterators.Collect(b)
			t.Must.NoError(err)
			equalElements(t, va, vb)
			equalElements(t, sub.Get(t).Expected, vb)
		})

		s.When("the iterable has elements", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				if len(sub.Get(t).Expected) == 0 {
					t.Skip("subject has no elements")
				}
			})

			s.Then("an action error stops ForEach and returned as is", func(t *testcase.T) {
				expErr := t.Random.Error()
				var calls int
				err := sub.Get(t).Iterable.ForEach(func(T) error {
					calls++
					return expErr
				})
				t.Must.ErrorIs(expErr, err)
				t.Must.Equal(1, calls)
			})
		})
	})

	Iterator[T]{
		MakeSubject: func(tb testing.TB) (iterators.Iterator[T], []T) {
			itb, exp := c.MakeSubject(tb)
			return itb.Iterator(), exp
		},
		Removable: c.Removable,
	}.Spec(s)
}

func (c Iterable[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterable[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
