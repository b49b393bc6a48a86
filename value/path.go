package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("bad path")

// Path is a parsed selector such as $.a.b[2].'c.d' or $..x[*]. Each
// step sets exactly one of its selector fields.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	var buf strings.Builder
	buf.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !x.afterSubtree(p) {
				buf.WriteByte('.')
			}
			buf.WriteString(PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(&buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func (p *Path) afterSubtree(root *Path) bool {
	for x := root; x != nil && x.Next != nil; x = x.Next {
		if x.Next == p {
			return x.Subtree
		}
	}
	return false
}

// PathField quotes a key when it cannot appear bare in a path.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ParsePath parses a path. The leading "$" is optional: "a.b[0]" and
// "$.a.b[0]" are the same path.
func ParsePath(p string) (*Path, error) {
	switch {
	case p == "" || p == "$":
		return nil, nil
	case p[0] == '$':
		p = p[1:]
	case p[0] != '.' && p[0] != '[':
		p = "." + p
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, step *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			step.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '[' {
				rest = "." + rest
			}
			if rest == "" {
				return errors.New("expected selector after '..'")
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		step.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return errors.New("expected '[' <index> ']'")
		}
		is := frag[1:i]
		if is == "*" {
			step.IndexAll = true
		} else {
			u, err := strconv.ParseUint(is, 10, 31)
			if err != nil {
				return fmt.Errorf("index %q: %w", is, err)
			}
			index := int(u)
			step.Index = &index
		}
		rest = frag[i+1:]
	default:
		return fmt.Errorf("expected '.' or '[' at %q", frag)
	}
	if rest == "" {
		return nil
	}
	step.Next = &Path{}
	return parseFrag(rest, step.Next)
}

func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", errors.New("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", errors.New("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", errors.New("unterminated quoted field")
}

// Lookup returns the value at path under v. Wildcards and recursive
// descent are not allowed; see Select for those.
func Lookup(v Value, path string) (Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := orNull(v)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll, x.Subtree:
			return nil, fmt.Errorf("%w: %s selects many values", ErrPath, path)
		case x.Index != nil:
			a, ok := res.(*Array)
			if !ok {
				return nil, indexLoc(*x.Index).mismatch("array", res)
			}
			res, err = a.Get(*x.Index)
		case x.Field != nil:
			o, ok := res.(*Object)
			if !ok {
				return nil, keyLoc(*x.Field).mismatch("object", res)
			}
			res, err = o.Get(*x.Field)
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Select appends every value matching path under v to dst. Missing keys
// and indices select nothing.
func Select(dst []Value, v Value, path string) ([]Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return selectPath(dst, orNull(v), p), nil
}

func selectPath(dst []Value, v Value, p *Path) []Value {
	if p == nil {
		return append(dst, v)
	}
	switch {
	case p.Subtree:
		dst = selectPath(dst, v, p.Next)
		for _, c := range children(v) {
			dst = selectPath(dst, c, p)
		}
	case p.IndexAll:
		for _, c := range children(v) {
			dst = selectPath(dst, c, p.Next)
		}
	case p.Index != nil:
		if a, ok := v.(*Array); ok {
			if c, ok := a.lookup(*p.Index); ok {
				dst = selectPath(dst, c, p.Next)
			}
		}
	case p.Field != nil:
		if o, ok := v.(*Object); ok {
			if c, ok := o.lookup(*p.Field); ok {
				dst = selectPath(dst, c, p.Next)
			}
		}
	}
	return dst
}

func children(v Value) []Value {
	switch x := v.(type) {
	case *Array:
		return x.elems
	case *Object:
		res := make([]Value, len(x.entries))
		for i, e := range x.entries {
			res[i] = e.val
		}
		return res
	}
	return nil
}
