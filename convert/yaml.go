package convert

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jvkit/jv/value"
	"github.com/shopspring/decimal"
)

// ToYAML renders v as a YAML document.
func ToYAML(v value.Value) ([]byte, error) {
	y, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(y)
}

func toYAML(v value.Value) (any, error) {
	switch x := v.(type) {
	case *value.Object:
		ms := make(yaml.MapSlice, 0, x.Len())
		for k, e := range x.All() {
			ye, err := toYAML(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", value.PathField(k), err)
			}
			ms = append(ms, yaml.MapItem{Key: k, Value: ye})
		}
		return ms, nil
	case *value.Array:
		out := make([]any, 0, x.Len())
		for i, e := range x.All() {
			ye, err := toYAML(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, ye)
		}
		return out, nil
	case value.String:
		return string(x), nil
	case *value.StreamString:
		return x.Text()
	case *value.Binary:
		return x.Base64()
	case value.Number:
		return yamlNumber(x), nil
	case value.Bool:
		return bool(x), nil
	default:
		return nil, nil
	}
}

// yamlNumber keeps decimals which a float64 cannot hold exactly as their
// text.
func yamlNumber(n value.Number) any {
	switch n.Kind() {
	case value.IntKind, value.LongKind:
		i, _ := n.Int64()
		return i
	case value.DoubleKind:
		if !n.IsFinite() {
			return nil
		}
		return n.Float64()
	}
	d, _ := n.Decimal()
	if d.IsInteger() {
		if i, ok := n.Int64(); ok {
			return i
		}
	}
	f := n.Float64()
	if decimal.NewFromFloat(f).Equal(d) {
		return f
	}
	return n.String()
}

// FromYAML decodes a YAML document. Mapping keys which are not strings
// are formatted with fmt.
func FromYAML(data []byte) (value.Value, error) {
	var y any
	if err := yaml.UnmarshalWithOptions(data, &y, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(y)
}

func fromYAML(y any) (value.Value, error) {
	switch x := y.(type) {
	case yaml.MapSlice:
		o := value.NewObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			v, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", value.PathField(k), err)
			}
			if err := o.Put(k, v); err != nil {
				return nil, err
			}
		}
		return o, nil
	case []any:
		a := value.NewArray()
		for i, e := range x {
			v, err := fromYAML(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a.Add(v)
		}
		return a, nil
	default:
		return value.FromAny(y)
	}
}
