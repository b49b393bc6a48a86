package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jvkit/jv/stream"
	"github.com/jvkit/jv/token"
	"github.com/jvkit/jv/value"
)

// Parse reads one document from r.
func Parse(r io.Reader, opts ...ParseOption) (value.Value, error) {
	o := newOpts(opts)
	dec := stream.NewDecoder(r, stream.WithMaxDepth(o.maxDepth))
	return newBuilder(dec, o).build(-1)
}

// ParseBytes parses d.
func ParseBytes(d []byte, opts ...ParseOption) (value.Value, error) {
	return Parse(bytes.NewReader(d), opts...)
}

// ParseString parses s.
func ParseString(s string, opts ...ParseOption) (value.Value, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Object reads a document from r which must be an object.
func Object(r io.Reader, opts ...ParseOption) (*value.Object, error) {
	o := newOpts(opts)
	dec := stream.NewDecoder(r, stream.WithMaxDepth(o.maxDepth))
	v, err := newBuilder(dec, o).build(stream.EventBeginObject)
	if err != nil {
		return nil, err
	}
	return v.(*value.Object), nil
}

// Array reads a document from r which must be an array.
func Array(r io.Reader, opts ...ParseOption) (*value.Array, error) {
	o := newOpts(opts)
	dec := stream.NewDecoder(r, stream.WithMaxDepth(o.maxDepth))
	v, err := newBuilder(dec, o).build(stream.EventBeginArray)
	if err != nil {
		return nil, err
	}
	return v.(*value.Array), nil
}

// FromEvents builds a value from events. The source must produce exactly
// one object or array and then io.EOF.
func FromEvents(src stream.EventReader, opts ...ParseOption) (value.Value, error) {
	return newBuilder(src, newOpts(opts)).build(-1)
}

type builder struct {
	src   stream.EventReader
	dec   *stream.Decoder
	state *stream.State
	opts  *parseOpts
}

func newBuilder(src stream.EventReader, o *parseOpts) *builder {
	b := &builder{src: src, opts: o, state: stream.NewState(o.maxDepth)}
	b.dec, _ = src.(*stream.Decoder)
	return b
}

func (b *builder) errorf(ev *stream.Event, cause error, format string, args ...any) error {
	var p token.Pos
	if ev != nil {
		p = ev.Pos
	}
	if b.dec != nil {
		return b.dec.Errorf(p, cause, format, args...)
	}
	return &token.SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: p, Err: cause}
}

func (b *builder) next() (*stream.Event, error) {
	ev, err := b.src.ReadEvent()
	if err == io.EOF {
		return nil, b.errorf(nil, io.ErrUnexpectedEOF, "unexpected end of events")
	}
	if err != nil {
		return nil, err
	}
	if err := b.state.ProcessEvent(ev); err != nil {
		return nil, b.errorf(ev, err, "%s", err.Error())
	}
	return ev, nil
}

// build reads the document. root restricts the top level event type
// unless it is negative.
func (b *builder) build(root stream.EventType) (value.Value, error) {
	ev, err := b.next()
	if err != nil {
		return nil, err
	}
	switch {
	case root >= 0 && ev.Type != root:
		want := "'{'"
		if root == stream.EventBeginArray {
			want = "'['"
		}
		return nil, b.errorf(ev, nil, "a document must begin with %s, found %s", want, ev.Type)
	case ev.Type != stream.EventBeginObject && ev.Type != stream.EventBeginArray:
		return nil, b.errorf(ev, nil, "a document must begin with '{' or '[', found %s", ev.Type)
	}
	v, err := b.value(ev)
	if err != nil {
		return nil, err
	}
	extra, err := b.src.ReadEvent()
	switch {
	case err == io.EOF:
		return v, nil
	case err != nil:
		return nil, err
	}
	return nil, b.errorf(extra, nil, "unexpected %s after end of document", extra.Type)
}

func (b *builder) value(ev *stream.Event) (value.Value, error) {
	switch ev.Type {
	case stream.EventBeginObject:
		return b.object()
	case stream.EventBeginArray:
		return b.array()
	case stream.EventString:
		return value.String(ev.String), nil
	case stream.EventNumber:
		n, err := value.ParseNumber(ev.Number)
		if err != nil {
			return nil, b.errorf(ev, err, "bad number %q", ev.Number)
		}
		return n, nil
	case stream.EventBool:
		return value.Bool(ev.Bool), nil
	case stream.EventNull:
		return value.Null, nil
	}
	return nil, b.errorf(ev, nil, "expected a value, found %s", ev.Type)
}

func (b *builder) object() (value.Value, error) {
	o := value.NewObjectLimit(b.opts.maxEntries)
	for {
		ev, err := b.next()
		if err != nil {
			return nil, err
		}
		if ev.Type == stream.EventEndObject {
			return o, nil
		}
		key := ev.Key
		keyEv := *ev
		ev, err = b.next()
		if err != nil {
			return nil, err
		}
		v, err := b.value(ev)
		if err != nil {
			return nil, err
		}
		if b.opts.noDupKeys && o.Has(key) {
			return nil, b.errorf(&keyEv, value.ErrDuplicateKey, "duplicate key %q", key)
		}
		if err := o.Put(key, v); err != nil {
			var ce *value.CapacityError
			if errors.As(err, &ce) {
				return nil, fmt.Errorf("%w at %s", err, keyEv.Pos)
			}
			return nil, err
		}
	}
}

func (b *builder) array() (value.Value, error) {
	a := value.NewArray()
	for {
		ev, err := b.next()
		if err != nil {
			return nil, err
		}
		if ev.Type == stream.EventEndArray {
			return a, nil
		}
		v, err := b.value(ev)
		if err != nil {
			return nil, err
		}
		if err := a.Add(v); err != nil {
			return nil, err
		}
	}
}
