package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathDoc() *Object {
	c := NewObject()
	c.Put("c", String("deep"))
	b := NewArray(Int(0), Int(1), c)
	a := NewObject()
	a.Put("b", b)
	a.Put("x.y", Int(7))
	root := NewObject()
	root.Put("a", a)
	root.Put("c", Int(5))
	return root
}

func TestLookup(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want Value
		err  error
	}{
		{"", doc, nil},
		{"$", doc, nil},
		{"a.b[2].c", String("deep"), nil},
		{"$.a.b[1]", Int(1), nil},
		{"a.'x.y'", Int(7), nil},
		{"a.b[3]", nil, ErrNotFound},
		{"a.nope", nil, ErrNotFound},
		{"c.d", nil, ErrTypeMismatch},
		{"a[0]", nil, ErrTypeMismatch},
		{"a.b[*]", nil, ErrPath},
		{"a.b[", nil, ErrPath},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Lookup(doc, tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(tt.want, got) {
				t.Errorf("wrong value at %s", tt.path)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	doc := pathDoc()
	got, err := Select(nil, doc, "$..c")
	if err != nil {
		t.Fatal(err)
	}
	var strs []string
	for _, v := range got {
		s, _ := ToString(v)
		strs = append(strs, s)
	}
	if diff := cmp.Diff([]string{"5", "deep"}, strs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = Select(nil, doc, "a.b[*]")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("wildcard selected %d values", len(got))
	}
}

func TestPathString(t *testing.T) {
	for _, in := range []string{"$", "$.a.b[2].c", "$..c", "$.a[*]", "$.'x.y'"} {
		p, err := ParsePath(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
	}
}
