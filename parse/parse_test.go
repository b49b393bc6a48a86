package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jvkit/jv/stream"
	"github.com/jvkit/jv/token"
	"github.com/jvkit/jv/value"
)

func TestParseOK(t *testing.T) {
	inner := value.NewObject()
	inner.Put("c", value.String("d"))
	want := value.NewObject()
	want.Put("a", value.Int(1))
	want.Put("b", value.NewArray(value.Int(1), value.Int(2), value.Int(3)))
	want.Put("n", value.Null)
	want.Put("x", inner)

	for _, in := range []string{
		`{"a":1,"b":[1,2,3],"n":null,"x":{"c":"d"}}`,
		"{a: 1; b: [1, 2, 3,]; n: NULL; x => {'c' = d},}",
		"\ufeff{ \"a\" : 0x1 , \"b\" : [01, 02, 03], \"n\": null, \"x\": {\"c\": \"d\"} }",
	} {
		v, err := ParseString(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if !value.Equal(want, v) {
			t.Errorf("%s: parsed to a different value", in)
		}
		if diff := cmp.Diff([]string{"a", "b", "n", "x"}, v.(*value.Object).Keys()); diff != "" {
			t.Errorf("%s: key order (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	a, err := Array(strings.NewReader(`[1, 2147483648, 9223372036854775808, 1.50, 2e3, -0x10, 017]`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		kind value.NumberKind
		str  string
	}{
		{value.IntKind, "1"},
		{value.LongKind, "2147483648"},
		{value.DecimalKind, "9223372036854775808"},
		{value.DecimalKind, "1.5"},
		{value.DecimalKind, "2000"},
		{value.IntKind, "-16"},
		{value.IntKind, "15"},
	}
	for i, tt := range tests {
		n, err := a.GetNumber(i)
		if err != nil {
			t.Fatal(err)
		}
		if n.Kind() != tt.kind || n.String() != tt.str {
			t.Errorf("%d: got %s %s, want %s %s", i, n.Kind(), n, tt.kind, tt.str)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"scalar", `"string"`},
		{"number", `12`},
		{"empty", ``},
		{"key in array", `[1, "k": 2]`},
		{"value for key", `{"a": 1, 2}`},
		{"unterminated", `{"a": [`},
		{"trailing", `[] []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			var se *token.SyntaxError
			if !errors.Is(err, ErrParse) || !errors.As(err, &se) {
				t.Fatalf("got %v, want a parse error", err)
			}
			if len(se.Snippet) > token.SnippetLen {
				t.Errorf("snippet %q is too long", se.Snippet)
			}
		})
	}
}

func TestParseSnippet(t *testing.T) {
	_, err := ParseString(`true, "and then a long tail of text"`)
	var se *token.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if want := `, "and then a long t`; se.Snippet != want {
		t.Errorf("snippet: got %q, want %q", se.Snippet, want)
	}
	if se.Pos.Offset != 0 || se.Pos.Line != 1 || se.Pos.Col != 1 {
		t.Errorf("pos: %s", se.Pos)
	}
}

func TestObjectAndArray(t *testing.T) {
	if _, err := Object(strings.NewReader(`[1]`)); !errors.Is(err, ErrParse) {
		t.Errorf("Object of array: %v", err)
	}
	if _, err := Array(strings.NewReader(`{}`)); !errors.Is(err, ErrParse) {
		t.Errorf("Array of object: %v", err)
	}
	o, err := Object(strings.NewReader(`{}`))
	if err != nil || !o.IsEmpty() {
		t.Errorf("empty object: %v", err)
	}
}

func TestMaxObjectEntries(t *testing.T) {
	v, err := ParseString(`{"a": {"x": 1, "y": 2}, "b": 2}`, MaxObjectEntries(2))
	if err != nil {
		t.Fatal(err)
	}
	if lim := v.(*value.Object).Limit(); lim != 2 {
		t.Errorf("limit %d", lim)
	}
	_, err = ParseString(`{"a": 1, "b": 2, "c": 3}`, MaxObjectEntries(2))
	var ce *value.CapacityError
	if !errors.As(err, &ce) || ce.Key != "c" {
		t.Errorf("got %v", err)
	}
	if errors.Is(err, ErrParse) {
		t.Error("capacity violation reported as a parse error")
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 600) + strings.Repeat("]", 600)
	if _, err := ParseString(deep); !errors.Is(err, stream.ErrDepth) {
		t.Errorf("default depth: %v", err)
	}
	if _, err := ParseString(deep, MaxDepth(0)); err != nil {
		t.Errorf("unbounded: %v", err)
	}
}

func TestDuplicateKeys(t *testing.T) {
	v, err := ParseString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	o := v.(*value.Object)
	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := o.OptInt("a", 0); got != 3 {
		t.Errorf("a = %d", got)
	}
	_, err = ParseString(`{"a": 1, "a": 3}`, RejectDuplicateKeys())
	if !errors.Is(err, value.ErrDuplicateKey) || !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestFromEvents(t *testing.T) {
	events := []stream.Event{
		{Type: stream.EventBeginArray},
		{Type: stream.EventNumber, Number: "1"},
		{Type: stream.EventBeginObject},
		{Type: stream.EventKey, Key: "k"},
		{Type: stream.EventString, String: "v"},
		{Type: stream.EventEndObject},
		{Type: stream.EventEndArray},
	}
	v, err := FromEvents(stream.NewSliceEventReader(events))
	if err != nil {
		t.Fatal(err)
	}
	o := value.NewObject()
	o.Put("k", value.String("v"))
	if !value.Equal(value.NewArray(value.Int(1), o), v) {
		t.Error("wrong value")
	}

	bad := []stream.Event{
		{Type: stream.EventBeginArray},
		{Type: stream.EventKey, Key: "k"},
	}
	_, err = FromEvents(stream.NewSliceEventReader(bad))
	if !errors.Is(err, ErrParse) || !errors.Is(err, stream.ErrStructure) {
		t.Errorf("key in array: %v", err)
	}
	_, err = FromEvents(stream.NewSliceEventReader(events[:3]))
	if !errors.Is(err, ErrParse) {
		t.Errorf("truncated: %v", err)
	}
}
