package primiter

import (
	"reflect"

	"go.llib.dev/primiter/port/iterators"
)

// FromIterator adapts a generic origin iterator into a primitive iterator.
// Every element of the origin is converted with the conversion function exactly once.
// A nil origin, including a nil pointer behind the interface, is rejected with ErrNilArgument.
func FromIterator[O any, T Primitive](origin iterators.Iterator[O], conversion func(O) (T, error)) (iterators.Iterator[T], error) {
	if err := checkConversion(origin, conversion == nil); err != nil {
		return nil, err
	}
	return iterators.Map(origin, conversion), nil
}

// ToIterator adapts a primitive origin iterator into a generic iterator.
// Every element of the origin is converted with the conversion function exactly once.
// A nil origin, including a nil pointer behind the interface, is rejected with ErrNilArgument.
func ToIterator[T Primitive, O any](origin iterators.Iterator[T], conversion func(T) (O, error)) (iterators.Iterator[O], error) {
	if err := checkConversion(origin, conversion == nil); err != nil {
		return nil, err
	}
	return iterators.Map(origin, conversion), nil
}

// FromIterable adapts a generic origin iterable into a primitive iterable.
// Each Iterator call wraps a fresh iterator of the origin.
func FromIterable[O any, T Primitive](origin iterators.Iterable[O], conversion func(O) (T, error)) (iterators.Iterable[T], error) {
	if err := checkConversion(origin, conversion == nil); err != nil {
		return nil, err
	}
	return iterators.MapIterable(origin, conversion), nil
}

// ToIterable adapts a primitive origin iterable into a generic iterable.
// Each Iterator call wraps a fresh iterator of the origin.
func ToIterable[T Primitive, O any](origin iterators.Iterable[T], conversion func(T) (O, error)) (iterators.Iterable[O], error) {
	if err := checkConversion(origin, conversion == nil); err != nil {
		return nil, err
	}
	return iterators.MapIterable(origin, conversion), nil
}

func checkConversion(origin any, nilConversion bool) error {
	if isNil(origin) {
		return iterators.ErrNilArgument.F("origin is nil")
	}
	if nilConversion {
		return iterators.ErrNilArgument.F("conversion is nil")
	}
	return nil
}

// isNil also catches a nil pointer stored in a non-nil interface, like a nil *listkit.List given as an Iterable.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
