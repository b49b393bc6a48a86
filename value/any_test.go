package value

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

type point struct {
	X, Y int
	Tag  string
}

func (p point) Fields(put func(string, any) error) error {
	if err := put("x", p.X); err != nil {
		return err
	}
	if err := put("y", p.Y); err != nil {
		return err
	}
	if p.Tag == "" {
		return nil
	}
	return put("tag", p.Tag)
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"z":    nil,
		"a":    []any{1, "two", 3.5, true},
		"big":  uint64(1 << 63),
		"num":  json.Number("12.50"),
		"raw":  []byte("hi"),
		"pt":   point{X: 1, Y: 2},
		"tags": []string{"p", "q"},
	})
	if err != nil {
		t.Fatal(err)
	}
	o := v.(*Object)
	if diff := cmp.Diff([]string{"a", "big", "num", "pt", "raw", "tags", "z"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if n, _ := o.GetNumber("big"); n.Kind() != DecimalKind || n.String() != "9223372036854775808" {
		t.Errorf("big: %s %s", n.Kind(), n)
	}
	if n, _ := o.GetNumber("num"); n.Kind() != DecimalKind || n.String() != "12.5" {
		t.Errorf("num: %s", n)
	}
	pt, err := o.GetObject("pt")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, pt.Keys()); diff != "" {
		t.Errorf("field source keys (-want +got):\n%s", diff)
	}

	back, err := ToAny(o)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"z":    nil,
		"a":    []any{int64(1), "two", 3.5, true},
		"big":  decimal.RequireFromString("9223372036854775808"),
		"num":  decimal.RequireFromString("12.5"),
		"raw":  []byte("hi"),
		"pt":   map[string]any{"x": int64(1), "y": int64(2)},
		"tags": []any{"p", "q"},
	}
	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, back, opt); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(map[string]any{"ch": make(chan int)})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}
