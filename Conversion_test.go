package primiter_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/primiter"
	"go.llib.dev/primiter/internal/doubles"
	"go.llib.dev/primiter/pkg/listkit"
	"go.llib.dev/primiter/port/iterators"
	"go.llib.dev/primiter/port/iterators/iteratorcontracts"
)

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func formatInt32(v int32) (string, error) {
	return strconv.FormatInt(int64(v), 10), nil
}

func TestFromIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int32 {
		var vs []int32
		for i, n := 0, t.Random.IntB(0, 7); i < n; i++ {
			vs = append(vs, int32(t.Random.IntB(-1000, 1000)))
		}
		return vs
	})
	list := testcase.Let(s, func(t *testcase.T) *listkit.List[string] {
		l := &listkit.List[string]{}
		for _, v := range values.Get(t) {
			l.Append(strconv.Itoa(int(v)))
		}
		return l
	})
	subject := testcase.Let(s, func(t *testcase.T) primiter.Int32Iterator {
		itr, err := primiter.FromIterator(list.Get(t).Iterator(), parseInt32)
		t.Must.NoError(err)
		return itr
	})

	s.Then("it yields the converted elements of the origin", func(t *testcase.T) {
		vs, err := iterators.Collect(subject.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(len(values.Get(t)), len(vs))
		for i := range vs {
			t.Must.Equal(values.Get(t)[i], vs[i])
		}
	})

	iteratorcontracts.Iterator[int32]{
		MakeSubject: func(tb testing.TB) (iterators.Iterator[int32], []int32) {
			t := tb.(*testcase.T)
			return subject.Get(t), values.Get(t)
		},
		Removable: true,
	}.Spec(s)
}

func TestFromIterator_removalReachesTheOrigin(t *testing.T) {
	list := listkit.Of("1", "2", "3")
	itr, err := primiter.Int32IteratorFromIterator(list.Iterator(), parseInt32)
	assert.NoError(t, err)

	v, err := itr.Next()
	assert.NoError(t, err)
	assert.Equal[int32](t, 1, v)
	v, err = itr.Next()
	assert.NoError(t, err)
	assert.Equal[int32](t, 2, v)

	assert.NoError(t, itr.Remove())
	assert.Equal(t, []string{"1", "3"}, list.ToSlice())

	rest, err := iterators.Collect(itr)
	assert.NoError(t, err)
	assert.Equal(t, []int32{3}, rest)
}

func TestToIterator(t *testing.T) {
	itr, err := primiter.IteratorFromInt32Iterator(primiter.Int32IteratorOf(7, -8, 9), formatInt32)
	assert.NoError(t, err)
	vs, err := iterators.Collect(itr)
	assert.NoError(t, err)
	assert.Equal(t, []string{"7", "-8", "9"}, vs)

	iteratorcontracts.Iterator[string]{
		MakeSubject: func(tb testing.TB) (iterators.Iterator[string], []string) {
			itr, err := primiter.ToIterator[int64](primiter.Int64IteratorOf(1, 2, 3), func(v int64) (string, error) {
				return strconv.FormatInt(v, 10), nil
			})
			assert.NoError(tb, err)
			return itr, []string{"1", "2", "3"}
		},
	}.Test(t)
}

func TestConversion_roundTrip(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	var src []string
	for i, n := 0, rnd.IntB(0, 42); i < n; i++ {
		src = append(src, strconv.Itoa(rnd.IntB(-1<<20, 1<<20)))
	}

	prim, err := primiter.FromIterator(iterators.Slice(src), parseInt32)
	assert.NoError(t, err)
	obj, err := primiter.ToIterator(prim, func(v int32) (string, error) {
		return "#" + strconv.Itoa(int(v)), nil
	})
	assert.NoError(t, err)

	got, err := iterators.Collect(obj)
	assert.NoError(t, err)
	assert.Equal(t, len(src), len(got))
	for i := range src {
		assert.Equal(t, "#"+src[i], got[i])
	}
}

func TestConversion_forwardingTransparency(t *testing.T) {
	s := testcase.NewSpec(t)

	ctrl := testcase.Let(s, func(t *testcase.T) *gomock.Controller {
		return gomock.NewController(t)
	})
	origin := testcase.Let(s, func(t *testcase.T) *doubles.MockIterator[string] {
		return doubles.NewMockIterator[string](ctrl.Get(t))
	})
	conversions := testcase.LetValue(s, 0)
	subject := testcase.Let(s, func(t *testcase.T) primiter.Int32Iterator {
		itr, err := primiter.Int32IteratorFromIterator[string](origin.Get(t), func(s string) (int32, error) {
			conversions.Set(t, conversions.Get(t)+1)
			return parseInt32(s)
		})
		t.Must.NoError(err)
		return itr
	})

	s.Test("HasNext forwards the origin answer", func(t *testcase.T) {
		exp := t.Random.Bool()
		origin.Get(t).EXPECT().HasNext().Return(exp).Times(1)
		t.Must.Equal(exp, subject.Get(t).HasNext())
	})

	s.Test("a panic in the origin HasNext unwinds through the adapter", func(t *testcase.T) {
		expErr := t.Random.Error()
		origin.Get(t).EXPECT().HasNext().DoAndReturn(func() bool { panic(expErr) }).Times(1)
		got := assert.Panic(t, func() { subject.Get(t).HasNext() })
		t.Must.Equal(any(expErr), got)
	})

	s.Test("a Next error of the origin is returned as is, without conversion", func(t *testcase.T) {
		expErr := t.Random.Error()
		origin.Get(t).EXPECT().Next().Return("", expErr).Times(1)
		_, err := subject.Get(t).Next()
		t.Must.ErrorIs(expErr, err)
		t.Must.Equal(0, conversions.Get(t))
	})

	s.Test("an exhausted origin is reported with its own error", func(t *testcase.T) {
		origin.Get(t).EXPECT().Next().Return("", iterators.ErrExhausted).Times(1)
		_, err := subject.Get(t).Next()
		t.Must.ErrorIs(iterators.ErrExhausted, err)
		t.Must.Equal(0, conversions.Get(t))
	})

	s.Test("Next converts the origin element exactly once", func(t *testcase.T) {
		origin.Get(t).EXPECT().Next().Return("42", nil).Times(1)
		v, err := subject.Get(t).Next()
		t.Must.NoError(err)
		t.Must.Equal(int32(42), v)
		t.Must.Equal(1, conversions.Get(t))
	})

	s.Test("a conversion error is returned as is", func(t *testcase.T) {
		origin.Get(t).EXPECT().Next().Return("forty-two", nil).Times(1)
		_, err := subject.Get(t).Next()
		var numErr *strconv.NumError
		t.Must.True(errors.As(err, &numErr))
	})

	s.Test("a Remove error of the origin is returned as is", func(t *testcase.T) {
		expErr := t.Random.Error()
		origin.Get(t).EXPECT().Remove().Return(expErr).Times(1)
		t.Must.ErrorIs(expErr, subject.Get(t).Remove())
	})

	s.Test("a ForEachRemaining error of the origin is returned as is", func(t *testcase.T) {
		expErr := t.Random.Error()
		origin.Get(t).EXPECT().ForEachRemaining(gomock.Any()).Return(expErr).Times(1)
		err := subject.Get(t).ForEachRemaining(func(int32) error { return nil })
		t.Must.ErrorIs(expErr, err)
		t.Must.Equal(0, conversions.Get(t))
	})

	s.Test("ForEachRemaining hands the converted elements to the action", func(t *testcase.T) {
		origin.Get(t).EXPECT().ForEachRemaining(gomock.Any()).
			DoAndReturn(func(action func(string) error) error {
				for _, v := range []string{"1", "2"} {
					if err := action(v); err != nil {
						return err
					}
				}
				return nil
			}).Times(1)

		var got []int32
		t.Must.NoError(subject.Get(t).ForEachRemaining(func(v int32) error {
			got = append(got, v)
			return nil
		}))
		t.Must.Equal([]int32{1, 2}, got)
		t.Must.Equal(2, conversions.Get(t))
	})

	s.Test("an action error passes through the origin ForEachRemaining", func(t *testcase.T) {
		expErr := t.Random.Error()
		origin.Get(t).EXPECT().ForEachRemaining(gomock.Any()).
			DoAndReturn(func(action func(string) error) error {
				return action("1")
			}).Times(1)

		err := subject.Get(t).ForEachRemaining(func(int32) error { return expErr })
		t.Must.ErrorIs(expErr, err)
	})

	s.Test("ForEachRemaining with a nil action doesn't reach the origin", func(t *testcase.T) {
		err := subject.Get(t).ForEachRemaining(nil)
		t.Must.True(errors.Is(err, iterators.ErrNilArgument))
	})
}

func TestConversion_nilArguments(t *testing.T) {
	_, err := primiter.FromIterator[string](nil, parseInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	_, err = primiter.FromIterator[string, int32](iterators.Slice([]string{"1"}), nil)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	_, err = primiter.ToIterator[int32](nil, formatInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	_, err = primiter.ToIterator[int32, string](primiter.Int32IteratorOf(), nil)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	_, err = primiter.FromIterable[string](nil, parseInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	_, err = primiter.ToIterable[int32, string](primiter.Int32IterableOf(1), nil)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))
}

func TestConversion_nilPointerOrigin(t *testing.T) {
	var list *listkit.List[string]

	_, err := primiter.FromIterable[string](list, parseInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	var mock *doubles.MockIterator[string]
	_, err = primiter.Int32IteratorFromIterator[string](mock, parseInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))

	var arr *primiter.ArrayIterable[int32]
	_, err = primiter.IterableFromInt32Iterable(arr, formatInt32)
	assert.True(t, errors.Is(err, iterators.ErrNilArgument))
}

func TestFromIterable(t *testing.T) {
	s := testcase.NewSpec(t)

	list := testcase.Let(s, func(t *testcase.T) *listkit.List[string] {
		l := listkit.Of[string]()
		for i, n := 0, t.Random.IntB(0, 5); i < n; i++ {
			l.Append(strconv.Itoa(i * 10))
		}
		return l
	})
	subject := testcase.Let(s, func(t *testcase.T) primiter.Int32Iterable {
		itb, err := primiter.Int32IterableFromIterable[string](list.Get(t), parseInt32)
		t.Must.NoError(err)
		return itb
	})

	s.Then("every Iterator call wraps a fresh origin iterator", func(t *testcase.T) {
		for i := 0; i < 2; i++ {
			vs, err := iterators.Collect(subject.Get(t).Iterator())
			t.Must.NoError(err)
			t.Must.Equal(list.Get(t).Len(), len(vs))
		}
	})

	iteratorcontracts.Iterable[int32]{
		MakeSubject: func(tb testing.TB) (iterators.Iterable[int32], []int32) {
			t := tb.(*testcase.T)
			var exp []int32
			for i := 0; i < list.Get(t).Len(); i++ {
				exp = append(exp, int32(i*10))
			}
			return subject.Get(t), exp
		},
		Removable: true,
	}.Spec(s)
}

func TestToIterable(t *testing.T) {
	iteratorcontracts.Iterable[string]{
		MakeSubject: func(tb testing.TB) (iterators.Iterable[string], []string) {
			itb, err := primiter.IterableFromChar16Iterable(primiter.Char16IterableOf('g', 'o'), func(v uint16) (string, error) {
				return string(rune(v)), nil
			})
			assert.NoError(tb, err)
			return itb, []string{"g", "o"}
		},
	}.Test(t)
}
