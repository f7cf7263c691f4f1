package iteratorcontracts

import (
	"errors"
	"testing"

	"go.llib.dev/primiter/port/iterators"
	"go.llib.dev/testcase"
)

// Iterator is the behavioural contract of an iterators.Iterator implementation.
type Iterator[T any] struct {
	// MakeSubject returns a fresh iterator, and the elements it expected to yield in order.
	MakeSubject func(tb testing.TB) (iterators.Iterator[T], []T)
	// Removable tells if the subject supports removal of the last returned element.
	Removable bool
}

type subject[T any] struct {
	Iterator iterators.Iterator[T]
	Expected []T
}

func (c Iterator[T]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterator", func(s *testcase.Spec) {
		sub := testcase.Let(s, func(t *testcase.T) subject[T] {
			itr, exp := c.MakeSubject(t)
			return subject[T]{Iterator: itr, Expected: exp}
		})

		drain := func(t *testcase.T) []T {
			var vs []T
			itr := sub.Get(t).Iterator
			for itr.HasNext() {
				v, err := itr.Next()
				t.Must.NoError(err)
				vs = append(vs, v)
			}
			return vs
		}

		s.Then("Next yields the expected elements in order", func(t *testcase.T) {
			equalElements(t, sub.Get(t).Expected, drain(t))
		})

		s.Then("HasNext is idempotent", func(t *testcase.T) {
			itr := sub.Get(t).Iterator
			exp := itr.HasNext()
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.Equal(exp, itr.HasNext())
			}
			t.Must.Equal(0 < len(sub.Get(t).Expected), exp)
		})

		s.Then("an exhausted iterator reports ErrExhausted without moving", func(t *testcase.T) {
			drain(t)
			itr := sub.Get(t).Iterator
			for i, n := 0, t.Random.IntB(2, 5); i < n; i++ {
				t.Must.False(itr.HasNext())
				_, err := itr.Next()
				t.Must.ErrorIs(iterators.ErrExhausted, err)
			}
		})

		s.Then("ForEachRemaining visits every element in order", func(t *testcase.T) {
			vs, err := iterators.Collect(sub.Get(t).Iterator)
			t.Must.NoError(err)
			equalElements(t, sub.Get(t).Expected, vs)
			t.Must.False(sub.Get(t).Iterator.HasNext())
		})

		s.Then("ForEachRemaining rejects a nil action without consuming elements", func(t *testcase.T) {
			err := sub.Get(t).Iterator.ForEachRemaining(nil)
			t.Must.True(errors.Is(err, iterators.ErrNilArgument))
			t.Must.Equal(len(sub.Get(t).Expected), len(drain(t)))
		})

		s.When("the iterator has elements", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				if len(sub.Get(t).Expected) == 0 {
					t.Skip("subject has no elements")
				}
			})

			s.Then("ForEachRemaining continues from the cursor", func(t *testcase.T) {
				itr := sub.Get(t).Iterator
				first, err := itr.Next()
				t.Must.NoError(err)
				t.Must.Equal(sub.Get(t).Expected[0], first)

				rest, err := iterators.Collect(itr)
				t.Must.NoError(err)
				equalElements(t, sub.Get(t).Expected[1:], rest)
			})

			s.Then("an action error stops ForEachRemaining and returned as is", func(t *testcase.T) {
				expErr := t.Random.Error()
				var calls int
				err := sub.Get(t).Iterator.ForEachRemaining(func(T) error {
					calls++
					return expErr
				})
				t.Must.ErrorIs(expErr, err)
				t.Must.Equal(1, calls)

				equalElements(t, sub.Get(t).Expected[1:], drain(t))
			})
		})

		if c.Removable {
			s.Then("Remove without a preceding Next reports ErrIllegalState", func(t *testcase.T) {
				t.Must.ErrorIs(iterators.ErrIllegalState, sub.Get(t).Iterator.Remove())
			})

			s.Then("Remove can be called once per Next", func(t *testcase.T) {
				if len(sub.Get(t).Expected) == 0 {
					t.Skip("subject has no elements")
				}
				itr := sub.Get(t).Iterator
				_, err := itr.Next()
				t.Must.NoError(err)
				t.Must.NoError(itr.Remove())
				t.Must.ErrorIs(iterators.ErrIllegalState, itr.Remove())

				rest := drain(t)
				t.Must.Equal(len(sub.Get(t).Expected)-1, len(rest))
			})
		} else {
			s.Then("Remove reports ErrUnsupportedOperation regardless of the cursor position", func(t *testcase.T) {
				itr := sub.Get(t).Iterator
				t.Must.ErrorIs(iterators.ErrUnsupportedOperation, itr.Remove())
				for itr.HasNext() {
					_, err := itr.Next()
					t.Must.NoError(err)
					t.Must.ErrorIs(iterators.ErrUnsupportedOperation, itr.Remove())
				}
				t.Must.ErrorIs(iterators.ErrUnsupportedOperation, itr.Remove())
			})
		}
	})
}

// equalElements compares element by element, so a nil and an empty slice are considered equal.
func equalElements[T any](t *testcase.T, exp, got []T) {
	t.Helper()
	t.Must.Equal(len(exp), len(got), "element count")
	for i := range exp {
		t.Must.Equal(exp[i], got[i])
	}
}

func (c Iterator[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
