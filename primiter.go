// Package primiter provides iterators specialised per primitive value type,
// and adapters that bridge them with generic iterators and with Go's native iter.Seq.
//
// # Family
//
// Every primitive type has a named Iterator and Iterable alias, and a set of named constructors:
//
//	| type    | Iterator        | Iterable        |
//	|---------|-----------------|-----------------|
//	| bool    | BoolIterator    | BoolIterable    |
//	| int8    | Int8Iterator    | Int8Iterable    |
//	| int16   | Int16Iterator   | Int16Iterable   |
//	| uint16  | Char16Iterator  | Char16Iterable  |
//	| int32   | Int32Iterator   | Int32Iterable   |
//	| int64   | Int64Iterator   | Int64Iterable   |
//	| float32 | Float32Iterator | Float32Iterable |
//	| float64 | Float64Iterator | Float64Iterable |
//
// The per type files are generated from a single template with cmd/primitergen,
// the generic implementations behind them live in this file set.
//
// # Adapters
//
// FromIterator converts a generic iterator into a primitive one with a conversion function,
// ToIterator does the opposite direction.
// Both forward every call to their origin as is,
// and the only extra work they do is the conversion of the element in Next and ForEachRemaining.
// Errors from the origin or from the conversion function are returned unchanged.
//
// FromSeq, FromSeqE and ToSeq bridge with Go's native iterator types.
package primiter

//go:generate go run ./cmd/primitergen -out .

// Primitive is the set of value types the iterator family is specialised for.
// uint16 stands for a UTF-16 code unit.
type Primitive interface {
	~bool | ~int8 | ~int16 | ~uint16 | ~int32 | ~int64 | ~float32 | ~float64
}
