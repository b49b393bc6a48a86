package value

import (
	"encoding/base64"
	"strings"

	"github.com/shopspring/decimal"
)

// The to* functions implement the coercions shared by the typed
// accessors of Object and Array.

func toBool(v Value) (bool, bool) {
	switch x := v.(type) {
	case Bool:
		return bool(x), true
	case String, *StreamString:
		s, _ := Text(x)
		switch {
		case strings.EqualFold(s, "true"):
			return true, true
		case strings.EqualFold(s, "false"):
			return false, true
		}
	}
	return false, false
}

func toNumber(v Value) (Number, bool) {
	switch x := v.(type) {
	case Number:
		return x, true
	case String, *StreamString:
		s, ok := Text(x)
		if !ok {
			return Number{}, false
		}
		n, err := ParseNumber(strings.TrimSpace(s))
		if err != nil {
			return Number{}, false
		}
		return n, true
	}
	return Number{}, false
}

func toInt64(v Value) (int64, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	return n.Int64()
}

func toInt(v Value) (int, bool) {
	i, ok := toInt64(v)
	if !ok || int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

func toFloat64(v Value) (float64, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	return n.Float64(), true
}

func toDecimal(v Value) (decimal.Decimal, bool) {
	n, ok := toNumber(v)
	if !ok {
		return decimal.Zero, false
	}
	return n.Decimal()
}

func toString(v Value) (string, bool) {
	switch x := v.(type) {
	case String, *StreamString:
		return Text(x)
	case Number:
		return x.String(), true
	case Bool:
		return x.String(), true
	}
	return "", false
}

func toObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok
}

func toArray(v Value) (*Array, bool) {
	a, ok := v.(*Array)
	return a, ok
}

func toBinary(v Value) (*Binary, bool) {
	switch x := v.(type) {
	case *Binary:
		return x, true
	case String:
		d, err := base64.StdEncoding.DecodeString(string(x))
		if err != nil {
			return nil, false
		}
		return BinaryBytes(d), true
	}
	return nil, false
}

func toValue(v Value) (Value, bool) { return v, true }

func get[T any](l loc, v Value, found bool, want string, conv func(Value) (T, bool)) (T, error) {
	var zero T
	if !found {
		return zero, l.notFound(want)
	}
	t, ok := conv(v)
	if !ok {
		return zero, l.mismatch(want, v)
	}
	return t, nil
}

func opt[T any](v Value, found bool, def T, conv func(Value) (T, bool)) T {
	if !found {
		return def
	}
	t, ok := conv(v)
	if !ok {
		return def
	}
	return t
}

// ToString renders a scalar as an accessor would see it as a string.
// It is false for containers, binaries and Null.
func ToString(v Value) (string, bool) { return toString(v) }

// ToNumber applies the string to number coercion of the accessors.
func ToNumber(v Value) (Number, bool) { return toNumber(v) }

// ToBool applies the string to bool coercion of the accessors.
func ToBool(v Value) (bool, bool) { return toBool(v) }
