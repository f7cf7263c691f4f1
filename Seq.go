package primiter

import (
	"iter"

	"go.llib.dev/primiter/pkg/errorkit"
	"go.llib.dev/primiter/port/iterators"
)

// FromSeq bridges a native push iterator into an Iterator.
func FromSeq[T Primitive](seq iter.Seq[T]) (*SeqIterator[T], error) {
	if seq == nil {
		return nil, iterators.ErrNilArgument.F("seq is nil")
	}
	return FromSeqE[T](func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromSeqE bridges a native push iterator that yields values together with errors.
// An error yielded by the sequence is returned from the Next call that would return its value.
func FromSeqE[T Primitive](seq iter.Seq2[T, error]) (*SeqIterator[T], error) {
	if seq == nil {
		return nil, iterators.ErrNilArgument.F("seq is nil")
	}
	next, stop := iter.Pull2(seq)
	return &SeqIterator[T]{next: next, stop: stop}, nil
}

// SeqIterator pulls values from a native sequence.
//
// Go's pull function reports the presence of a value and the value itself in a single call,
// thus HasNext holds the pulled value until the following Next call.
// Removal is not supported, as native sequences have no removal.
//
// The pulling is stopped once the sequence is exhausted.
// Call Close when the iterator is abandoned before that.
type SeqIterator[T Primitive] struct {
	iterators.Unremovable
	next func() (T, error, bool)
	stop func()

	head    T
	headErr error
	peeked  bool
	done    bool
}

func (i *SeqIterator[T]) HasNext() bool {
	if i.peeked {
		return true
	}
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		_ = i.Close()
		return false
	}
	i.head, i.headErr, i.peeked = v, err, true
	return true
}

func (i *SeqIterator[T]) Next() (T, error) {
	var zero T
	if !i.HasNext() {
		return zero, iterators.ErrExhausted
	}
	v, err := i.head, i.headErr
	i.head, i.headErr, i.peeked = zero, nil, false
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (i *SeqIterator[T]) ForEachRemaining(action func(T) error) error {
	return iterators.ForEachRemaining[T](i, action)
}

// Close stops the pulling of the sequence.
// It is safe to call it multiple times.
func (i *SeqIterator[T]) Close() error {
	var zero T
	i.head, i.headErr, i.peeked = zero, nil, false
	i.done = true
	i.stop()
	return nil
}

const errBreak errorkit.Error = "break"

// ToSeq bridges an Iterator into a native push iterator.
//
// The sequence drives the origin's ForEachRemaining, and yields every element with a nil error.
// An error from the origin is yielded once, then the sequence ends.
// Since the origin is single-pass, the returned sequence can be ranged over once.
func ToSeq[T Primitive](origin iterators.Iterator[T]) (iter.Seq2[T, error], error) {
	if origin == nil {
		return nil, iterators.ErrNilArgument.F("origin is nil")
	}
	return func(yield func(T, error) bool) {
		err := origin.ForEachRemaining(func(v T) error {
			if !yield(v, nil) {
				return errBreak
			}
			return nil
		})
		if err != nil && err != errBreak {
			var zero T
			yield(zero, err)
		}
	}, nil
}
