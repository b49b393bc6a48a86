package value

import (
	"errors"
	"testing"
)

func TestFreeze(t *testing.T) {
	o := NewObject()
	o.Put("a", Int(1))
	o.Put("list", NewArray(String("x")))

	f := FreezeObject(o)
	if !f.Frozen() || o.Frozen() {
		t.Fatal("frozen flags")
	}
	o.Put("a", Int(2))
	o.Put("b", Int(3))
	list, _ := o.GetArray("list")
	list.Add(String("y"))

	if got := f.OptInt("a", 0); got != 1 {
		t.Errorf("frozen a changed: %d", got)
	}
	if f.Has("b") {
		t.Error("frozen object saw a new key")
	}
	flist, _ := f.GetArray("list")
	if flist.Len() != 1 || !flist.Frozen() {
		t.Errorf("frozen list: len %d", flist.Len())
	}

	checks := map[string]error{
		"Put":        f.Put("a", Int(9)),
		"PutOnce":    f.PutOnce("z", Int(9)),
		"Accumulate": f.Accumulate("a", Int(9)),
		"Append":     f.Append("list", Int(9)),
		"Increment":  f.Increment("a"),
		"Reset":      f.Reset(),
		"Array.Add":  flist.Add(Null),
		"Array.Put":  flist.Put(3, Null),
	}
	_, checks["Remove"] = f.Remove("a")
	_, checks["Array.Remove"] = flist.Remove(0)
	for name, err := range checks {
		if !errors.Is(err, ErrImmutable) {
			t.Errorf("%s: got %v, want ErrImmutable", name, err)
		}
	}
	if f.Len() != 2 || flist.Len() != 1 {
		t.Error("frozen containers changed")
	}
	if Freeze(f) != Value(f) {
		t.Error("freezing a frozen object copied it")
	}
	if !Equal(f, FreezeObject(f.Clone())) {
		t.Error("clone of frozen object")
	}
	if f.Clone().Frozen() {
		t.Error("clone is frozen")
	}
}
