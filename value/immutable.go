package value

// Freeze returns a read only copy of v. Objects and arrays are rebuilt
// recursively into frozen containers whose mutators fail with
// ErrImmutable; leaves are shared. Later changes to v are not visible
// through the copy. A frozen container is returned as is.
func Freeze(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case *Object:
		if x.frozen {
			return x
		}
		c := &Object{
			entries: make([]entry, len(x.entries)),
			index:   make(map[string]int, len(x.entries)),
			limit:   x.limit,
			frozen:  true,
		}
		for i, e := range x.entries {
			c.entries[i] = entry{key: e.key, val: Freeze(e.val)}
			c.index[e.key] = i
		}
		return c
	case *Array:
		if x.frozen {
			return x
		}
		c := &Array{elems: make([]Value, len(x.elems)), frozen: true}
		for i, e := range x.elems {
			c.elems[i] = Freeze(e)
		}
		return c
	}
	return v
}

// FreezeObject is Freeze for an object.
func FreezeObject(o *Object) *Object { return Freeze(o).(*Object) }

// FreezeArray is Freeze for an array.
func FreezeArray(a *Array) *Array { return Freeze(a).(*Array) }
