package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestObjectOrder(t *testing.T) {
	o := NewObject()
	for _, k := range []string{"z", "a", "m"} {
		if err := o.Put(k, String(k)); err != nil {
			t.Fatal(err)
		}
	}
	if err := o.Put("a", Int(1)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if _, err := o.Remove("z"); err != nil {
		t.Fatal(err)
	}
	if err := o.Put("z", Null); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "m", "z"}, o.Keys()); diff != "" {
		t.Errorf("keys after remove (-want +got):\n%s", diff)
	}
	if got := o.OptInt("a", 0); got != 1 {
		t.Errorf("a: got %d", got)
	}
	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		if k == "m" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "m"}, seen); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}
}

func TestObjectNull(t *testing.T) {
	o := NewObject()
	if err := o.Put("a", nil); err != nil {
		t.Fatal(err)
	}
	v, err := o.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != Null {
		t.Errorf("nil stored as %v", v)
	}
	if !o.Has("a") || o.HasAndNotNull("a") || !o.IsNull("a") {
		t.Error("null entry presence")
	}
	if o.Has("b") || !o.IsNull("b") {
		t.Error("absent entry presence")
	}
	if !Equal(v, nil) || !Equal(nil, Null) || Equal(Null, Bool(false)) {
		t.Error("null equality")
	}
	if err := o.PutOpt("c", nil); err != nil || o.Has("c") {
		t.Error("PutOpt stored nil")
	}
}

func TestObjectAccessors(t *testing.T) {
	o := NewObject()
	o.Put("b", String("TRUE"))
	o.Put("n", String(" 0x10 "))
	o.Put("f", Float(2.75))
	o.Put("s", Int(12))
	o.Put("t", Bool(true))
	o.Put("o", NewObject())
	o.Put("bin", String("aGk="))

	if b, err := o.GetBool("b"); err != nil || !b {
		t.Errorf("GetBool: %v %v", b, err)
	}
	if i, err := o.GetInt("n"); err != nil || i != 16 {
		t.Errorf("GetInt hex string: %v %v", i, err)
	}
	if i, err := o.GetInt64("f"); err != nil || i != 2 {
		t.Errorf("GetInt64 truncation: %v %v", i, err)
	}
	if s, err := o.GetString("s"); err != nil || s != "12" {
		t.Errorf("GetString number: %q %v", s, err)
	}
	if s, err := o.GetString("t"); err != nil || s != "true" {
		t.Errorf("GetString bool: %q %v", s, err)
	}
	if d, err := o.GetDecimal("f"); err != nil || !d.Equal(decimal.RequireFromString("2.75")) {
		t.Errorf("GetDecimal: %v %v", d, err)
	}
	if b, err := o.GetBinary("bin"); err != nil {
		t.Error(err)
	} else if d, _ := b.Bytes(); string(d) != "hi" {
		t.Errorf("GetBinary: %q", d)
	}

	_, err := o.GetBool("missing")
	var ae *AccessError
	if !errors.As(err, &ae) || !errors.Is(err, ErrNotFound) || ae.Key != "missing" {
		t.Errorf("missing key: %v", err)
	}
	_, err = o.GetArray("o")
	if !errors.As(err, &ae) || !errors.Is(err, ErrTypeMismatch) || ae.Got != ObjectType {
		t.Errorf("mismatch: %v", err)
	}
	if _, err := o.GetBool("s"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("number as bool: %v", err)
	}

	if got := o.OptBool("s", true); !got {
		t.Error("OptBool default")
	}
	if got := o.OptString("missing", "d"); got != "d" {
		t.Errorf("OptString default: %q", got)
	}
	if got := o.OptFloat64("f", 0); got != 2.75 {
		t.Errorf("OptFloat64: %v", got)
	}
	if got := o.OptArray("o", nil); got != nil {
		t.Error("OptArray of object")
	}
}

func TestObjectLimit(t *testing.T) {
	o := NewObjectLimit(2)
	if err := o.Put("a", Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := o.Put("b", Int(2)); err != nil {
		t.Fatal(err)
	}
	if err := o.Put("a", Int(3)); err != nil {
		t.Errorf("replacing at limit: %v", err)
	}
	err := o.Put("c", Int(4))
	var ce *CapacityError
	if !errors.As(err, &ce) || !errors.Is(err, ErrCapacity) || ce.Limit != 2 || ce.Key != "c" {
		t.Errorf("got %v", err)
	}
	if o.Len() != 2 {
		t.Errorf("len %d", o.Len())
	}
}

func TestObjectMutators(t *testing.T) {
	o := NewObject()
	if err := o.PutOnce("k", Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := o.PutOnce("k", Int(2)); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("PutOnce duplicate: %v", err)
	}
	o.Accumulate("acc", String("x"))
	o.Accumulate("acc", String("y"))
	o.Accumulate("acc", String("z"))
	o.Append("app", Int(1))
	o.Append("app", Int(2))
	if err := o.Append("k", Int(3)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Append to number: %v", err)
	}
	o.Increment("cnt")
	o.Increment("cnt")
	o.Increment("k")

	want := NewObject()
	want.Put("k", Int(2))
	want.Put("acc", NewArray(String("x"), String("y"), String("z")))
	want.Put("app", NewArray(Int(1), Int(2)))
	want.Put("cnt", Int(2))
	if !Equal(want, o) {
		t.Errorf("got %v", o.Keys())
	}

	v, err := o.Remove("acc")
	if err != nil || v.Type() != ArrayType {
		t.Errorf("Remove: %v %v", v, err)
	}
	if v, _ := o.Remove("acc"); v != nil {
		t.Error("second Remove returned a value")
	}
	if err := o.Reset(); err != nil || !o.IsEmpty() || o.Has("k") {
		t.Error("Reset")
	}
}

func TestZeroObject(t *testing.T) {
	var o Object
	if err := o.Put("a", Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := o.Put("b", String("x")); err != nil {
		t.Fatal(err)
	}
	if err := o.Put("a", Int(2)); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "b"}, o.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if n := o.OptInt("a", 0); n != 2 {
		t.Errorf("a: got %d", n)
	}
	if _, err := o.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if o.Has("a") || o.Len() != 1 {
		t.Error("Remove")
	}
}

func TestTypedNil(t *testing.T) {
	o := NewObject()
	for k, v := range map[string]Value{
		"obj": (*Object)(nil),
		"arr": (*Array)(nil),
		"str": (*StreamString)(nil),
		"bin": (*Binary)(nil),
	} {
		if err := o.Put(k, v); err != nil {
			t.Fatal(err)
		}
		if !o.IsNull(k) {
			t.Errorf("%s: not null", k)
		}
		if !IsNull(v) {
			t.Errorf("IsNull(%s)", k)
		}
	}
	if !Equal(o, o.Clone()) {
		t.Error("clone differs")
	}
	a := NewArray((*Array)(nil))
	if v, _ := a.Get(0); v != Null {
		t.Errorf("array element: %v", v)
	}
	v, err := FromAny((*Object)(nil))
	if err != nil || v != Null {
		t.Errorf("FromAny: %v %v", v, err)
	}
}

func TestArrayPadEmpty(t *testing.T) {
	a := NewArray()
	if err := a.Put(5, String("x")); err != nil {
		t.Fatal(err)
	}
	want := NewArray(Null, Null, Null, Null, Null, String("x"))
	if !Equal(want, a) {
		t.Errorf("len %d", a.Len())
	}
	for i := range 5 {
		if v, _ := a.Get(i); v != Null {
			t.Errorf("index %d: %v", i, v)
		}
	}
}

func TestArray(t *testing.T) {
	a := NewArray(Int(1), nil)
	if err := a.Put(4, String("x")); err != nil {
		t.Fatal(err)
	}
	want := NewArray(Int(1), Null, Null, Null, String("x"))
	if !Equal(want, a) {
		t.Errorf("padding: len %d", a.Len())
	}
	for i := 1; i < 4; i++ {
		if v, _ := a.Get(i); v != Null {
			t.Errorf("index %d: %v", i, v)
		}
	}
	if !a.IsNull(1) || !a.IsNull(10) || a.IsNull(0) {
		t.Error("IsNull")
	}
	if _, err := a.Get(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range: %v", err)
	}
	if _, err := a.Get(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("negative: %v", err)
	}
	if err := a.Put(-1, Int(0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("negative put: %v", err)
	}
	if v, err := a.Remove(0); err != nil || !Equal(v, Int(1)) {
		t.Errorf("Remove: %v %v", v, err)
	}
	if s, err := a.GetString(3); err != nil || s != "x" {
		t.Errorf("shift: %q %v", s, err)
	}
	var n int
	for range a.Values() {
		n++
	}
	if n != a.Len() {
		t.Errorf("Values yielded %d of %d", n, a.Len())
	}
	if got := a.OptInt(3, 7); got != 7 {
		t.Errorf("OptInt of string: %d", got)
	}
}

func TestClone(t *testing.T) {
	o := NewObject()
	o.Put("a", NewArray(Int(1)))
	c := o.Clone()
	inner, _ := c.GetArray("a")
	inner.Add(Int(2))
	if orig, _ := o.GetArray("a"); orig.Len() != 1 {
		t.Error("clone shares containers")
	}
}
