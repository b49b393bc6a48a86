// Package value provides the in-memory model of JSON documents.
//
// # Overview
//
// A document is a tree of Values. Value is a closed set of variants:
//
//   - *Object: ordered string keyed entries, insertion order preserved
//   - *Array: ordered elements, addressable by index
//   - String: text held in memory
//   - *StreamString: text read from an Opener when it is written
//   - Number: a number which remembers its kind (Int, Long, Double, Decimal)
//   - Bool: true or false
//   - *Binary: a byte payload, written as a base64 string
//   - Null: the JSON null sentinel
//
// Null is distinct from an absent key. A nil Value passed to a mutator is
// stored as Null, and Equal treats nil and Null as equal.
//
// # Building Values
//
//	o := value.NewObject()
//	o.Put("name", value.String("jv"))
//	o.Put("sizes", value.NewArray(value.Int(1), value.Int(2)))
//	o.Put("ratio", value.Float(0.5))
//
// Objects may be created with an entry limit (NewObjectLimit). Adding a
// new key past the limit fails with a *CapacityError.
//
// # Reading Values
//
// Every Get accessor is strict: an absent key or index is an
// *AccessError wrapping ErrNotFound, and a value which cannot be coerced
// to the requested type wraps ErrTypeMismatch. Opt accessors take a
// default and never fail.
//
// Coercions are limited: strings "true" and "false" (any case) read as
// bools, numeric strings read as numbers, and numbers and bools read as
// their JSON text.
//
// # Immutable Views
//
// Freeze returns a deep read only copy. Mutators on the copy fail with
// ErrImmutable and changes to the original are not visible through it.
package value
