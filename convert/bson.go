package convert

import (
	"errors"
	"fmt"

	"github.com/jvkit/jv/value"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrBSON = errors.New("bson conversion")

// ToBSON encodes v, which must be an object, as a BSON document.
func ToBSON(v value.Value) ([]byte, error) {
	d, err := bsonDoc(v)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(d)
}

// ToExtJSON encodes v, which must be an object, as MongoDB Extended
// JSON in canonical or relaxed mode.
func ToExtJSON(v value.Value, canonical bool) ([]byte, error) {
	d, err := bsonDoc(v)
	if err != nil {
		return nil, err
	}
	return bson.MarshalExtJSON(d, canonical, false)
}

func bsonDoc(v value.Value) (bson.D, error) {
	o, ok := v.(*value.Object)
	if !ok {
		return nil, fmt.Errorf("%w: document root is %s, not an object", ErrBSON, v.Type())
	}
	b, err := toBSON(o)
	if err != nil {
		return nil, err
	}
	return b.(bson.D), nil
}

func toBSON(v value.Value) (any, error) {
	switch x := v.(type) {
	case *value.Object:
		d := make(bson.D, 0, x.Len())
		for k, e := range x.All() {
			b, err := toBSON(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", value.PathField(k), err)
			}
			d = append(d, bson.E{Key: k, Value: b})
		}
		return d, nil
	case *value.Array:
		a := make(bson.A, 0, x.Len())
		for i, e := range x.All() {
			b, err := toBSON(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a = append(a, b)
		}
		return a, nil
	case value.String:
		return string(x), nil
	case *value.StreamString:
		return x.Text()
	case *value.Binary:
		d, err := x.Bytes()
		if err != nil {
			return nil, err
		}
		return primitive.Binary{Subtype: 0x00, Data: d}, nil
	case value.Number:
		return bsonNumber(x)
	case value.Bool:
		return bool(x), nil
	default:
		return nil, nil
	}
}

func bsonNumber(n value.Number) (any, error) {
	switch n.Kind() {
	case value.IntKind:
		i, _ := n.Int64()
		return int32(i), nil
	case value.LongKind:
		i, _ := n.Int64()
		return i, nil
	case value.DoubleKind:
		return n.Float64(), nil
	}
	d, err := primitive.ParseDecimal128(n.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not fit a Decimal128: %w", ErrBSON, n, err)
	}
	return d, nil
}

// FromBSON decodes a BSON document. Object ids become their hex string,
// dates their milliseconds since the epoch.
func FromBSON(data []byte) (*value.Object, error) {
	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBSON, err)
	}
	v, err := fromBSON(d)
	if err != nil {
		return nil, err
	}
	return v.(*value.Object), nil
}

// FromExtJSON decodes a MongoDB Extended JSON document.
func FromExtJSON(data []byte, canonical bool) (*value.Object, error) {
	var d bson.D
	if err := bson.UnmarshalExtJSON(data, canonical, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBSON, err)
	}
	v, err := fromBSON(d)
	if err != nil {
		return nil, err
	}
	return v.(*value.Object), nil
}

func fromBSON(b any) (value.Value, error) {
	switch x := b.(type) {
	case primitive.D:
		o := value.NewObject()
		for _, e := range x {
			v, err := fromBSON(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", value.PathField(e.Key), err)
			}
			if err := o.Put(e.Key, v); err != nil {
				return nil, err
			}
		}
		return o, nil
	case primitive.A:
		a := value.NewArray()
		for i, e := range x {
			v, err := fromBSON(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a.Add(v)
		}
		return a, nil
	case primitive.Binary:
		return value.BinaryBytes(x.Data), nil
	case primitive.Decimal128:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return nil, fmt.Errorf("%w: decimal %s: %w", ErrBSON, x, err)
		}
		return value.Decimal(d), nil
	case primitive.ObjectID:
		return value.String(x.Hex()), nil
	case primitive.DateTime:
		return value.Int64(int64(x)), nil
	case primitive.Null, primitive.Undefined:
		return value.Null, nil
	case int32:
		return value.Int64(int64(x)), nil
	default:
		v, err := value.FromAny(b)
		if err != nil {
			return nil, fmt.Errorf("%w: unsupported %T", ErrBSON, b)
		}
		return v, nil
	}
}
