package value

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Array is an ordered, index addressable JSON array.
type Array struct {
	elems  []Value
	frozen bool
}

// NewArray returns an array holding vs. nil elements are stored as Null.
func NewArray(vs ...Value) *Array {
	a := &Array{elems: make([]Value, len(vs))}
	for i, v := range vs {
		a.elems[i] = orNull(v)
	}
	return a
}

func (*Array) Type() Type { return ArrayType }
func (*Array) isValue()   {}

// Frozen reports whether a rejects mutation.
func (a *Array) Frozen() bool { return a.frozen }

func (a *Array) lookup(i int) (Value, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Add appends v.
func (a *Array) Add(v Value) error {
	if a.frozen {
		return immutable("add")
	}
	a.elems = append(a.elems, orNull(v))
	return nil
}

// Put sets index i to v, padding with Null when i is past the end.
func (a *Array) Put(i int, v Value) error {
	if a.frozen {
		return immutable("put")
	}
	if i < 0 {
		return indexLoc(i).notFound("index")
	}
	for len(a.elems) <= i {
		a.elems = append(a.elems, Null)
	}
	a.elems[i] = orNull(v)
	return nil
}

// Remove deletes index i, shifting later elements down, and returns the
// removed value or nil when i is out of range.
func (a *Array) Remove(i int) (Value, error) {
	if a.frozen {
		return nil, immutable("remove")
	}
	v, ok := a.lookup(i)
	if !ok {
		return nil, nil
	}
	a.elems = slices.Delete(a.elems, i, i+1)
	return v, nil
}

// Reset removes every element.
func (a *Array) Reset() error {
	if a.frozen {
		return immutable("reset")
	}
	clear(a.elems)
	a.elems = a.elems[:0]
	return nil
}

func (a *Array) Len() int      { return len(a.elems) }
func (a *Array) IsEmpty() bool { return len(a.elems) == 0 }

// IsNull reports whether i is out of range or holds Null.
func (a *Array) IsNull(i int) bool {
	v, ok := a.lookup(i)
	return !ok || IsNull(v)
}

// All yields index, element pairs in order.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (a *Array) Values() iter.Seq[Value] {
	return slices.Values(a.elems)
}

// Clone returns a deep, mutable copy of a.
func (a *Array) Clone() *Array {
	c := &Array{elems: make([]Value, len(a.elems))}
	for i, v := range a.elems {
		c.elems[i] = Clone(v)
	}
	return c
}

func (a *Array) Get(i int) (Value, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "value", toValue)
}

func (a *Array) GetBool(i int) (bool, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "bool", toBool)
}

func (a *Array) GetInt(i int) (int, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "int", toInt)
}

func (a *Array) GetInt64(i int) (int64, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "int64", toInt64)
}

func (a *Array) GetFloat64(i int) (float64, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "float64", toFloat64)
}

func (a *Array) GetDecimal(i int) (decimal.Decimal, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "decimal", toDecimal)
}

func (a *Array) GetNumber(i int) (Number, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "number", toNumber)
}

func (a *Array) GetString(i int) (string, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "string", toString)
}

func (a *Array) GetObject(i int) (*Object, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "object", toObject)
}

func (a *Array) GetArray(i int) (*Array, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "array", toArray)
}

func (a *Array) GetBinary(i int) (*Binary, error) {
	v, ok := a.lookup(i)
	return get(indexLoc(i), v, ok, "binary", toBinary)
}

func (a *Array) Opt(i int, def Value) Value {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toValue)
}

func (a *Array) OptBool(i int, def bool) bool {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toBool)
}

func (a *Array) OptInt(i int, def int) int {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toInt)
}

func (a *Array) OptInt64(i int, def int64) int64 {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toInt64)
}

func (a *Array) OptFloat64(i int, def float64) float64 {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toFloat64)
}

func (a *Array) OptDecimal(i int, def decimal.Decimal) decimal.Decimal {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toDecimal)
}

func (a *Array) OptNumber(i int, def Number) Number {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toNumber)
}

func (a *Array) OptString(i int, def string) string {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toString)
}

func (a *Array) OptObject(i int, def *Object) *Object {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toObject)
}

func (a *Array) OptArray(i int, def *Array) *Array {
	v, ok := a.lookup(i)
	return opt(v, ok, def, toArray)
}
