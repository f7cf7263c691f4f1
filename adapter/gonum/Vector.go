// Package gonum bridges float64 iterators with gonum's mat.Vector.
package gonum

import (
	"gonum.org/v1/gonum/mat"

	"go.llib.dev/primiter"
	"go.llib.dev/primiter/pkg/errorkit"
	"go.llib.dev/primiter/port/iterators"
)

// ErrEmptyVector is returned by Collect for an empty iterator,
// since gonum has no zero length dense vector.
const ErrEmptyVector errorkit.Error = "gonum: empty vector"

// Vector returns a Float64Iterable over the elements of v.
// The vector is read on every Next, so later changes of v are visible to unfinished iterators.
func Vector(v mat.Vector) (*VectorIterable, error) {
	if v == nil {
		return nil, iterators.ErrNilArgument.F("vector is nil")
	}
	return &VectorIterable{vector: v}, nil
}

type VectorIterable struct {
	vector mat.Vector
}

var _ primiter.Float64Iterable = (*VectorIterable)(nil)

func (i *VectorIterable) Iterator() primiter.Float64Iterator {
	return &VectorIterator{vector: i.vector}
}

func (i *VectorIterable) ForEach(action func(float64) error) error {
	return iterators.ForEach[float64](i, action)
}

type VectorIterator struct {
	iterators.Unremovable
	vector mat.Vector
	index  int
}

func (i *VectorIterator) HasNext() bool {
	return i.index < i.vector.Len()
}

func (i *VectorIterator) Next() (float64, error) {
	if !i.HasNext() {
		return 0, iterators.ErrExhausted
	}
	v := i.vector.AtVec(i.index)
	i.index++
	return v, nil
}

func (i *VectorIterator) ForEachRemaining(action func(float64) error) error {
	return iterators.ForEachRemaining[float64](i, action)
}

// Collect drains itr into a new dense vector.
func Collect(itr primiter.Float64Iterator) (*mat.VecDense, error) {
	if itr == nil {
		return nil, iterators.ErrNilArgument.F("iterator is nil")
	}
	vs, err := iterators.Collect(itr)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, ErrEmptyVector
	}
	return mat.NewVecDense(len(vs), vs), nil
}
