// Package iterators provide the iterator contract and its default behaviours.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly, iterators hide whether the data comes from an array, a storage bucket, or elsewhere.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
//
// An Iterator is a single-pass cursor.
// HasNext tells if Next can currently succeed, Next returns the element at the cursor and advances it.
// Removal of the last returned element is an optional capability,
// and bulk consumption is expressed with ForEachRemaining.
//
// An Iterable is a repeatable factory of independent Iterator values.
//
// # Error handling
//
// Errors returned from an origin iterator or from a caller supplied callback are returned as is.
// Iterators in this package and its dependents never wrap, translate or swallow them.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterators

// Cursor is the minimal stateful cursor contract.
type Cursor[T any] interface {
	// HasNext reports whether Next can currently succeed.
	// It must be free of side effects and repeatable.
	HasNext() bool
	// Next returns the element at the cursor and advances the cursor by one.
	// When there is no more element, it returns ErrExhausted and the cursor stays in place.
	Next() (T, error)
}

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
type Iterator[T any] interface {
	Cursor[T]
	// Remove removes from the underlying collection the last element returned by Next.
	// It is an optional operation, iterators without removal support return ErrUnsupportedOperation.
	// Calling Remove without a preceding Next, or twice after the same Next, yields ErrIllegalState.
	Remove() error
	// ForEachRemaining calls action with every remaining element until the iterator is exhausted.
	// The first error returned by the action stops the iteration and returned as is.
	ForEachRemaining(action func(T) error) error
}

// Iterable is a repeatable factory of Iterator values.
// Every Iterator call yields an independent Iterator that starts at the first element.
type Iterable[T any] interface {
	Iterator() Iterator[T]
	// ForEach performs the action on every element of a fresh Iterator.
	ForEach(action func(T) error) error
}
