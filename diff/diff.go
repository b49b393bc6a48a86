// Package diff compares value trees.
//
// Lines gives a readable line diff of the pretty encodings; Paths lists
// the changes structurally, one entry per differing path.
package diff

import (
	"strconv"
	"strings"

	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/value"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line diff of the pretty encodings of a and b, with
// removed lines prefixed by "-", added lines by "+" and common lines by a
// space. changed is false when the encodings are equal.
func Lines(a, b value.Value) (out string, changed bool, err error) {
	from, err := encode.String(a, encode.Indent(2))
	if err != nil {
		return "", false, err
	}
	to, err := encode.String(b, encode.Indent(2))
	if err != nil {
		return "", false, err
	}
	if from == to {
		return "", false, nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(ln)
		}
	}
	return sb.String(), true, nil
}

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "<unknown change>"
	}
}

// Change is a difference at one path. From is nil for additions and To
// for removals.
type Change struct {
	Path     string
	Kind     ChangeKind
	From, To value.Value
}

// Paths returns the changes turning a into b. Objects are compared by
// key regardless of order and arrays by index; any other difference,
// including a change of type, is reported at the path where it occurs.
func Paths(a, b value.Value) []Change {
	return paths(nil, "$", a, b)
}

func paths(dst []Change, at string, a, b value.Value) []Change {
	switch x := a.(type) {
	case *value.Object:
		y, ok := b.(*value.Object)
		if !ok {
			break
		}
		for k, av := range x.All() {
			p := at + "." + value.PathField(k)
			bv, err := y.Get(k)
			if err != nil {
				dst = append(dst, Change{Path: p, Kind: Removed, From: av})
				continue
			}
			dst = paths(dst, p, av, bv)
		}
		for k, bv := range y.All() {
			if !x.Has(k) {
				dst = append(dst, Change{Path: at + "." + value.PathField(k), Kind: Added, To: bv})
			}
		}
		return dst
	case *value.Array:
		y, ok := b.(*value.Array)
		if !ok {
			break
		}
		for i := range max(x.Len(), y.Len()) {
			p := at + "[" + strconv.Itoa(i) + "]"
			switch {
			case i >= y.Len():
				av, _ := x.Get(i)
				dst = append(dst, Change{Path: p, Kind: Removed, From: av})
			case i >= x.Len():
				bv, _ := y.Get(i)
				dst = append(dst, Change{Path: p, Kind: Added, To: bv})
			default:
				av, _ := x.Get(i)
				bv, _ := y.Get(i)
				dst = paths(dst, p, av, bv)
			}
		}
		return dst
	}
	if value.Equal(a, b) {
		return dst
	}
	return append(dst, Change{Path: at, Kind: Changed, From: a, To: b})
}
