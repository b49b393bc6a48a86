package encode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jvkit/jv/growbuf"
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/stream"
	"github.com/jvkit/jv/value"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent    int
	ascii     bool
	pool      *pool.Pool
	flushSize int

	leaf  value.Type
	Color func(value.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v to w. Output staged by the encoder is flushed before
// Encode returns, whether or not it fails.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	enc := stream.NewEncoder(w, es.streamOpts()...)
	err := encode(v, enc, es)
	cerr := enc.Close()
	if err != nil {
		return err
	}
	return cerr
}

// EncodeClose writes v to wc and closes it. A failure to close is only
// reported when encoding succeeded.
func EncodeClose(v value.Value, wc io.WriteCloser, opts ...EncodeOption) error {
	err := Encode(v, wc, opts...)
	cerr := wc.Close()
	if err != nil {
		return err
	}
	return cerr
}

// File writes v to the file at path, creating or truncating it.
func File(v value.Value, path string, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return EncodeClose(v, f, opts...)
}

// Bytes returns the encoding of v. The output is assembled in a growable
// buffer drawing from the pool given with WithPool.
func Bytes(v value.Value, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	buf := growbuf.New(es.pool, 0)
	defer buf.Release()
	if err := Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// String returns the encoding of v.
func String(v value.Value, opts ...EncodeOption) (string, error) {
	es := newState(opts)
	buf := growbuf.New(es.pool, 0)
	defer buf.Release()
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(v value.Value, enc *stream.Encoder, es *EncState) error {
	switch x := v.(type) {
	case nil:
		return enc.WriteNull()
	case *value.Object:
		return encodeObject(x, enc, es)
	case *value.Array:
		return encodeArray(x, enc, es)
	case value.String:
		es.leaf = value.StringType
		return enc.WriteString(string(x))
	case *value.StreamString:
		es.leaf = value.StringType
		return encodeStream(x.Open, enc.WriteStringFrom, enc, es)
	case *value.Binary:
		es.leaf = value.BinaryType
		return encodeStream(x.Open, enc.WriteBinaryFrom, enc, es)
	case value.Number:
		if !x.IsFinite() {
			return enc.WriteNull()
		}
		return enc.WriteNumber(x.String())
	case value.Bool:
		return enc.WriteBool(bool(x))
	default:
		if value.IsNull(v) {
			return enc.WriteNull()
		}
		return fmt.Errorf("%w: unsupported value %T", ErrEncoding, v)
	}
}

func encodeObject(o *value.Object, enc *stream.Encoder, es *EncState) error {
	if err := enc.BeginObject(); err != nil {
		return err
	}
	for k, v := range o.All() {
		if err := enc.WriteKey(k); err != nil {
			return err
		}
		if err := encode(v, enc, es); err != nil {
			return err
		}
	}
	return enc.EndObject()
}

func encodeArray(a *value.Array, enc *stream.Encoder, es *EncState) error {
	if err := enc.BeginArray(); err != nil {
		return err
	}
	for v := range a.Values() {
		if err := encode(v, enc, es); err != nil {
			return err
		}
	}
	return enc.EndArray()
}

// encodeStream copies a streaming leaf through write. Colored output
// reads the whole leaf so that it can be wrapped as one token.
func encodeStream(open value.Opener, write func(io.Reader) error, enc *stream.Encoder, es *EncState) error {
	rc, err := open()
	if err != nil {
		return fmt.Errorf("%w: opening %s at %s: %w", ErrEncoding, es.leaf, enc.CurrentPath(), err)
	}
	if es.Color != nil {
		err = writeColored(rc, enc, es)
	} else {
		err = write(rc)
	}
	cerr := rc.Close()
	if err != nil {
		return err
	}
	return cerr
}

func writeColored(r io.Reader, enc *stream.Encoder, es *EncState) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if es.leaf == value.BinaryType {
		s, _ := value.BinaryBytes(d).Base64()
		return enc.WriteString(s)
	}
	return enc.WriteString(string(d))
}
