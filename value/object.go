package value

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

type entry struct {
	key string
	val Value
}

// Object is an ordered JSON object. Keys keep their first insertion
// position; putting an existing key replaces its value in place.
type Object struct {
	entries []entry
	index   map[string]int
	limit   int
	frozen  bool
}

// NewObject returns an empty object with no entry limit.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// NewObjectLimit returns an empty object which refuses to hold more than
// max entries. max <= 0 means no limit.
func NewObjectLimit(max int) *Object {
	o := NewObject()
	if max > 0 {
		o.limit = max
	}
	return o
}

func (*Object) Type() Type { return ObjectType }
func (*Object) isValue()   {}

// Limit returns the entry limit, 0 if there is none.
func (o *Object) Limit() int { return o.limit }

// Frozen reports whether o rejects mutation.
func (o *Object) Frozen() bool { return o.frozen }

func (o *Object) lookup(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].val, true
}

// Put sets key to v. A nil v is stored as Null.
func (o *Object) Put(key string, v Value) error {
	if o.frozen {
		return immutable("put " + key)
	}
	v = orNull(v)
	if i, ok := o.index[key]; ok {
		o.entries[i].val = v
		return nil
	}
	if o.limit > 0 && len(o.entries) >= o.limit {
		return &CapacityError{Limit: o.limit, Key: key}
	}
	if o.index == nil {
		o.index = map[string]int{}
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry{key: key, val: v})
	return nil
}

// PutOnce is Put but fails with ErrDuplicateKey if key is present.
func (o *Object) PutOnce(key string, v Value) error {
	if _, ok := o.index[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	return o.Put(key, v)
}

// PutOpt is Put except that a nil v is skipped.
func (o *Object) PutOpt(key string, v Value) error {
	if v == nil {
		return nil
	}
	return o.Put(key, v)
}

// Accumulate puts v under key. If key is present its value is turned into
// an array (when it is not one already) and v is appended to it.
func (o *Object) Accumulate(key string, v Value) error {
	cur, ok := o.lookup(key)
	if !ok {
		if a, isArr := v.(*Array); isArr {
			return o.Put(key, NewArray(a))
		}
		return o.Put(key, v)
	}
	if o.frozen {
		return immutable("accumulate " + key)
	}
	if a, isArr := cur.(*Array); isArr {
		return a.Add(v)
	}
	return o.Put(key, NewArray(cur, v))
}

// Append adds v to the array under key, creating the array when key is
// absent. It fails with ErrTypeMismatch when key holds something else.
func (o *Object) Append(key string, v Value) error {
	cur, ok := o.lookup(key)
	if !ok {
		return o.Put(key, NewArray(v))
	}
	a, isArr := cur.(*Array)
	if !isArr {
		return keyLoc(key).mismatch("array", cur)
	}
	return a.Add(v)
}

// Increment adds one to the number under key, starting from 1 when key is
// absent.
func (o *Object) Increment(key string) error {
	cur, ok := o.lookup(key)
	if !ok {
		return o.Put(key, Int(1))
	}
	n, isNum := cur.(Number)
	if !isNum {
		return keyLoc(key).mismatch("number", cur)
	}
	return o.Put(key, n.add1())
}

// Remove deletes key and returns its previous value, or nil when it was
// absent.
func (o *Object) Remove(key string) (Value, error) {
	if o.frozen {
		return nil, immutable("remove " + key)
	}
	i, ok := o.index[key]
	if !ok {
		return nil, nil
	}
	v := o.entries[i].val
	o.entries = append(o.entries[:i], o.entries[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.entries); j++ {
		o.index[o.entries[j].key] = j
	}
	return v, nil
}

// Reset removes every entry.
func (o *Object) Reset() error {
	if o.frozen {
		return immutable("reset")
	}
	clear(o.entries)
	o.entries = o.entries[:0]
	clear(o.index)
	return nil
}

func (o *Object) Len() int      { return len(o.entries) }
func (o *Object) IsEmpty() bool { return len(o.entries) == 0 }

// Has reports whether key is present, even if it holds Null.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// HasAndNotNull reports whether key is present with a non null value.
func (o *Object) HasAndNotNull(key string) bool {
	v, ok := o.lookup(key)
	return ok && !IsNull(v)
}

// IsNull reports whether key is absent or holds Null.
func (o *Object) IsNull(key string) bool {
	v, ok := o.lookup(key)
	return !ok || IsNull(v)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	ks := make([]string, len(o.entries))
	for i := range o.entries {
		ks[i] = o.entries[i].key
	}
	return ks
}

// All yields the entries in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range o.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// At returns the i'th entry.
func (o *Object) At(i int) (string, Value) {
	e := o.entries[i]
	return e.key, e.val
}

// Clone returns a deep, mutable copy of o.
func (o *Object) Clone() *Object {
	c := &Object{
		entries: make([]entry, len(o.entries)),
		index:   make(map[string]int, len(o.entries)),
		limit:   o.limit,
	}
	for i, e := range o.entries {
		c.entries[i] = entry{key: e.key, val: Clone(e.val)}
		c.index[e.key] = i
	}
	return c
}

// Equal reports whether o and p hold equal values under the same keys.
// Key order is not significant.
func (o *Object) Equal(p *Object) bool { return Equal(o, p) }

func (o *Object) Get(key string) (Value, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "value", toValue)
}

func (o *Object) GetBool(key string) (bool, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "bool", toBool)
}

func (o *Object) GetInt(key string) (int, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "int", toInt)
}

func (o *Object) GetInt64(key string) (int64, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "int64", toInt64)
}

func (o *Object) GetFloat64(key string) (float64, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "float64", toFloat64)
}

func (o *Object) GetDecimal(key string) (decimal.Decimal, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "decimal", toDecimal)
}

func (o *Object) GetNumber(key string) (Number, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "number", toNumber)
}

func (o *Object) GetString(key string) (string, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "string", toString)
}

func (o *Object) GetObject(key string) (*Object, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "object", toObject)
}

func (o *Object) GetArray(key string) (*Array, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "array", toArray)
}

func (o *Object) GetBinary(key string) (*Binary, error) {
	v, ok := o.lookup(key)
	return get(keyLoc(key), v, ok, "binary", toBinary)
}

func (o *Object) Opt(key string, def Value) Value {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toValue)
}

func (o *Object) OptBool(key string, def bool) bool {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toBool)
}

func (o *Object) OptInt(key string, def int) int {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toInt)
}

func (o *Object) OptInt64(key string, def int64) int64 {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toInt64)
}

func (o *Object) OptFloat64(key string, def float64) float64 {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toFloat64)
}

func (o *Object) OptDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toDecimal)
}

func (o *Object) OptNumber(key string, def Number) Number {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toNumber)
}

func (o *Object) OptString(key string, def string) string {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toString)
}

func (o *Object) OptObject(key string, def *Object) *Object {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toObject)
}

func (o *Object) OptArray(key string, def *Array) *Array {
	v, ok := o.lookup(key)
	return opt(v, ok, def, toArray)
}
