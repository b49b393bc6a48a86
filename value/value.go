package value

import (
	"bytes"
	"encoding/base64"
	"io"
	"strconv"
)

// Value is a node of a JSON tree. The set of implementations is closed:
// *Object, *Array, String, *StreamString, Number, Bool, *Binary and Null.
type Value interface {
	Type() Type
	isValue()
}

type null struct{}

func (null) Type() Type     { return NullType }
func (null) isValue()       {}
func (null) String() string { return "null" }

// Null is the JSON null sentinel. It is distinct from an absent key.
var Null Value = null{}

// IsNull reports whether v is Null or no value at all. Typed nil
// containers and leaves count as no value.
func IsNull(v Value) bool {
	return orNull(v) == Null
}

func orNull(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case *Object:
		if x == nil {
			return Null
		}
	case *Array:
		if x == nil {
			return Null
		}
	case *StreamString:
		if x == nil {
			return Null
		}
	case *Binary:
		if x == nil {
			return Null
		}
	}
	return v
}

// Bool is a JSON boolean.
type Bool bool

func (Bool) Type() Type { return BoolType }
func (Bool) isValue()   {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String is a JSON string held in memory.
type String string

func (String) Type() Type { return StringType }
func (String) isValue()   {}

// Opener returns a fresh reader over some content on each call.
type Opener func() (io.ReadCloser, error)

// StreamString is a JSON string whose UTF-8 content is read from an
// Opener when needed. Writers copy it through incrementally.
type StreamString struct {
	open Opener
}

// StringFrom returns a string value backed by open.
func StringFrom(open Opener) *StreamString {
	return &StreamString{open: open}
}

func (*StreamString) Type() Type { return StringType }
func (*StreamString) isValue()   {}

// Open returns a new reader over the content.
func (s *StreamString) Open() (io.ReadCloser, error) {
	return s.open()
}

// Text reads the whole content.
func (s *StreamString) Text() (string, error) {
	d, err := readAll(s.open)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Binary is a binary payload. It serializes as a standard base64 string.
type Binary struct {
	open Opener
}

// BinaryBytes returns a Binary over d. d is not copied.
func BinaryBytes(d []byte) *Binary {
	return &Binary{open: func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(d)), nil
	}}
}

// BinaryFrom returns a Binary whose content is read from open.
func BinaryFrom(open Opener) *Binary {
	return &Binary{open: open}
}

func (*Binary) Type() Type { return BinaryType }
func (*Binary) isValue()   {}

// Open returns a new reader over the raw payload.
func (b *Binary) Open() (io.ReadCloser, error) {
	return b.open()
}

// Bytes reads the whole payload.
func (b *Binary) Bytes() ([]byte, error) {
	return readAll(b.open)
}

// Base64 returns the payload as it is serialized.
func (b *Binary) Base64() (string, error) {
	d, err := b.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(d), nil
}

func readAll(open Opener) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	d, err := io.ReadAll(rc)
	cerr := rc.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	return d, nil
}

// Text returns the content of a string typed value.
func Text(v Value) (string, bool) {
	switch x := v.(type) {
	case String:
		return string(x), true
	case *StreamString:
		s, err := x.Text()
		if err != nil {
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}
