package value

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are structurally equal. A nil Value
// equals Null, numbers compare by value across kinds, and object key
// order is not significant.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	switch x := a.(type) {
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Equal(y)
	case String, *StreamString:
		if b.Type() != StringType {
			return false
		}
		s, ok := Text(x)
		if !ok {
			return false
		}
		t, ok := Text(b)
		return ok && s == t
	case *Binary:
		y, ok := b.(*Binary)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		p, err := x.Bytes()
		if err != nil {
			return false
		}
		q, err := y.Bytes()
		return err == nil && bytes.Equal(p, q)
	case *Array:
		y, ok := b.(*Array)
		if !ok {
			return false
		}
		return slices.EqualFunc(x.elems, y.elems, Equal)
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, e := range x.entries {
			w, ok := y.lookup(e.key)
			if !ok || !Equal(e.val, w) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a 64 bit hash of v consistent with Equal: equal values
// hash equal.
func Hash(v Value) uint64 {
	d := xxhash.New()
	hashInto(d, v)
	return d.Sum64()
}

func hashInto(d *xxhash.Digest, v Value) {
	var tag [1]byte
	if IsNull(v) {
		tag[0] = byte(NullType)
		d.Write(tag[:])
		return
	}
	tag[0] = byte(v.Type())
	d.Write(tag[:])
	switch x := v.(type) {
	case Bool:
		if x {
			d.WriteString("t")
		} else {
			d.WriteString("f")
		}
	case Number:
		d.WriteString(x.canonical())
	case String, *StreamString:
		s, _ := Text(x)
		d.WriteString(s)
	case *Binary:
		p, _ := x.Bytes()
		d.Write(p)
	case *Array:
		for _, e := range x.elems {
			hashInto(d, e)
		}
	case *Object:
		// entries are combined with a commutative sum so that key order
		// does not matter.
		var sum uint64
		for _, e := range x.entries {
			sub := xxhash.New()
			sub.WriteString(e.key)
			sub.Write([]byte{0})
			hashInto(sub, e.val)
			sum += sub.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sum)
		d.Write(b[:])
	}
}

// Clone returns a deep copy of v. Containers are mutable in the copy;
// leaves are shared.
func Clone(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case *Object:
		return x.Clone()
	case *Array:
		return x.Clone()
	}
	return v
}
