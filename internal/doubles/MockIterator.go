// Package doubles holds gomock test doubles for the iterator ports.
package doubles

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"go.llib.dev/primiter/port/iterators"
)

// MockIterator is a mock of the iterators.Iterator interface.
type MockIterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIteratorMockRecorder[T]
}

// MockIteratorMockRecorder is the mock recorder for MockIterator.
type MockIteratorMockRecorder[T any] struct {
	mock *MockIterator[T]
}

var _ iterators.Iterator[int] = (*MockIterator[int])(nil)

// NewMockIterator creates a new mock instance.
func NewMockIterator[T any](ctrl *gomock.Controller) *MockIterator[T] {
	mock := &MockIterator[T]{ctrl: ctrl}
	mock.recorder = &MockIteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIterator[T]) EXPECT() *MockIteratorMockRecorder[T] {
	return m.recorder
}

// HasNext mocks base method.
func (m *MockIterator[T]) HasNext() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasNext")
	ret0, _ := ret[0].(bool)
	return ret0
}

// HasNext indicates an expected call of HasNext.
func (mr *MockIteratorMockRecorder[T]) HasNext() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasNext", reflect.TypeOf((*MockIterator[T])(nil).HasNext))
}

// Next mocks base method.
func (m *MockIterator[T]) Next() (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockIteratorMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIterator[T])(nil).Next))
}

// Remove mocks base method.
func (m *MockIterator[T]) Remove() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove")
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockIteratorMockRecorder[T]) Remove() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockIterator[T])(nil).Remove))
}

// ForEachRemaining mocks base method.
func (m *MockIterator[T]) ForEachRemaining(action func(T) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForEachRemaining", action)
	ret0, _ := ret[0].(error)
	return ret0
}

// ForEachRemaining indicates an expected call of ForEachRemaining.
func (mr *MockIteratorMockRecorder[T]) ForEachRemaining(action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForEachRemaining", reflect.TypeOf((*MockIterator[T])(nil).ForEachRemaining), action)
}
