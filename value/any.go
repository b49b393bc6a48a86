package value

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"
)

// FieldSource is implemented by Go types which describe themselves as a
// JSON object. Fields calls put once per field, in output order.
type FieldSource interface {
	Fields(put func(key string, v any) error) error
}

// ObjectFrom builds an object from the fields of src. Field values are
// converted with FromAny.
func ObjectFrom(src FieldSource) (*Object, error) {
	o := NewObject()
	err := src.Fields(func(key string, x any) error {
		v, err := FromAny(x)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		return o.Put(key, v)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// FromAny converts a Go value to a Value. It accepts nil, Values, bools,
// strings, Go integer and float types, json.Number, decimal.Decimal,
// []byte (as Binary), []any, []string, map[string]any, map[string]string
// and FieldSource. Map keys are sorted.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null, nil
	case Value:
		return orNull(t), nil
	case FieldSource:
		return ObjectFrom(t)
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Int64(int64(t)), nil
	case int16:
		return Int64(int64(t)), nil
	case int32:
		return Int64(int64(t)), nil
	case int64:
		return Int64(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return Int64(int64(t)), nil
	case uint16:
		return Int64(int64(t)), nil
	case uint32:
		return Int64(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		n, err := ParseNumber(string(t))
		if err != nil {
			return nil, err
		}
		return n, nil
	case decimal.Decimal:
		return Decimal(t), nil
	case []byte:
		return BinaryBytes(t), nil
	case []any:
		a := NewArray()
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			a.elems = append(a.elems, v)
		}
		return a, nil
	case []string:
		a := NewArray()
		for _, e := range t {
			a.elems = append(a.elems, String(e))
		}
		return a, nil
	case map[string]any:
		o := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if err := o.Put(k, v); err != nil {
				return nil, err
			}
		}
		return o, nil
	case map[string]string:
		o := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if err := o.Put(k, String(t[k])); err != nil {
				return nil, err
			}
		}
		return o, nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, x)
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Decimal(decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0))
	}
	return Int64(int64(u))
}

// ToAny converts v to plain Go values: nil, bool, int64, float64,
// decimal.Decimal, string, []byte, []any and map[string]any. Streamed
// leaves are read in full.
func ToAny(v Value) (any, error) {
	switch x := v.(type) {
	case nil, null:
		return nil, nil
	case Bool:
		return bool(x), nil
	case Number:
		switch x.Kind() {
		case IntKind, LongKind:
			i, _ := x.Int64()
			return i, nil
		case DoubleKind:
			return x.Float64(), nil
		default:
			d, _ := x.Decimal()
			return d, nil
		}
	case String:
		return string(x), nil
	case *StreamString:
		return x.Text()
	case *Binary:
		return x.Bytes()
	case *Array:
		res := make([]any, 0, x.Len())
		for _, e := range x.elems {
			a, err := ToAny(e)
			if err != nil {
				return nil, err
			}
			res = append(res, a)
		}
		return res, nil
	case *Object:
		res := make(map[string]any, x.Len())
		for _, e := range x.entries {
			a, err := ToAny(e.val)
			if err != nil {
				return nil, err
			}
			res[e.key] = a
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown value %T", ErrTypeMismatch, v)
}
