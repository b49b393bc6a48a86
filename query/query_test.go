package query

import (
	"errors"
	"testing"

	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/value"
)

const doc = `{
	"items": [
		{"name": "a", "price": 5},
		{"name": "b", "price": 12.5},
		{"name": "c", "price": 30}
	],
	"owner": {"name": "x"}
}`

func TestEval(t *testing.T) {
	v, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src, want string
	}{
		{`doc.owner.name`, `"x"`},
		{`len(doc.items)`, `3`},
		{`map(filter(doc.items, .price > 10), .name)`, `["b","c"]`},
		{`sum(map(doc.items, .price))`, `47.5`},
		{`getpath("$.items[2].price") * 2`, `60`},
		{`listpath("$..name")`, `["a","b","c","x"]`},
		{`{"n": doc.items[0].name, "ok": true}`, `{"n":"a","ok":true}`},
		{`doc.missing == nil`, `true`},
	}
	for _, tt := range tests {
		got, err := Eval(tt.src, v)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		want, err := parse.ParseString("[" + tt.want + "]")
		if err != nil {
			t.Fatal(err)
		}
		w, _ := want.(*value.Array).Get(0)
		if !value.Equal(w, got) {
			t.Errorf("%s: got %s, want %s", tt.src, encode.MustString(got), tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	v, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{`doc.items[`, `getpath("$.nope")`, `1 / "a"`} {
		if _, err := Eval(src, v); !errors.Is(err, ErrQuery) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}
