package stream

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/jvkit/jv/growbuf"
	"github.com/jvkit/jv/token"
	"github.com/jvkit/jv/value"
)

const chunkSize = 3 * 1024

// Encoder writes events as strict JSON. Output is staged in a growable
// buffer and written through to the destination once it reaches the
// flush size, and on Flush and Close.
type Encoder struct {
	w      io.Writer
	buf    *growbuf.Buffer
	state  *State
	opts   *streamOpts
	esc    token.Escaper
	tmp    []byte
	chunk  []byte
	offset int64
	err    error
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...StreamOption) *Encoder {
	o := newOpts(opts)
	return &Encoder{
		w:     w,
		buf:   growbuf.New(o.pool, min(o.flushSize, growbuf.DefaultSize*4)),
		state: NewState(o.maxDepth),
		opts:  o,
		esc:   token.Escaper{ASCII: o.ascii},
	}
}

// Reset discards staged output and prepares e to write a new document
// to w.
func (e *Encoder) Reset(w io.Writer) {
	e.w = w
	e.buf.Reset()
	e.state.Reset()
	e.offset = 0
	e.err = nil
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int { return e.state.Depth() }

// CurrentPath returns the path of the last value written.
func (e *Encoder) CurrentPath() string { return e.state.CurrentPath() }

// Offset returns the number of bytes of output produced so far, staged
// or written.
func (e *Encoder) Offset() int64 { return e.offset }

// Done reports whether a complete top level value has been written.
func (e *Encoder) Done() bool { return e.state.Done() }

func (e *Encoder) write(p []byte) {
	e.buf.Write(p)
	e.offset += int64(len(p))
}

func (e *Encoder) writeString(s string) {
	e.buf.WriteString(s)
	e.offset += int64(len(s))
}

func (e *Encoder) writeByte(c byte) {
	e.buf.WriteByte(c)
	e.offset++
}

func (e *Encoder) newline(depth int) {
	if e.opts.indent == 0 {
		return
	}
	e.writeByte('\n')
	e.writeString(strings.Repeat(" ", depth*e.opts.indent))
}

// begin validates ev and writes what separates it from the previous
// entry.
func (e *Encoder) begin(ev *Event) error {
	if e.err != nil {
		return e.err
	}
	inArray, n, depth := e.state.IsInArray(), e.state.Len(), e.state.Depth()
	if err := e.state.ProcessEvent(ev); err != nil {
		return err
	}
	if inArray || ev.Type == EventKey {
		if n > 0 {
			e.writeByte(',')
		}
		e.newline(depth)
	}
	return nil
}

func (e *Encoder) maybeFlush() error {
	if e.buf.Len() < e.opts.flushSize {
		return nil
	}
	return e.Flush()
}

// BeginObject begins an object.
func (e *Encoder) BeginObject() error {
	if err := e.begin(&Event{Type: EventBeginObject}); err != nil {
		return err
	}
	e.emit(EventBeginObject, "{")
	return nil
}

// EndObject ends an object.
func (e *Encoder) EndObject() error {
	return e.end(EventEndObject, "}")
}

// BeginArray begins an array.
func (e *Encoder) BeginArray() error {
	if err := e.begin(&Event{Type: EventBeginArray}); err != nil {
		return err
	}
	e.emit(EventBeginArray, "[")
	return nil
}

// EndArray ends an array.
func (e *Encoder) EndArray() error {
	return e.end(EventEndArray, "]")
}

func (e *Encoder) end(t EventType, c string) error {
	if e.err != nil {
		return e.err
	}
	n, depth := e.state.Len(), e.state.Depth()
	if err := e.state.ProcessEvent(&Event{Type: t}); err != nil {
		return err
	}
	if n > 0 {
		e.newline(depth - 1)
	}
	e.emit(t, c)
	return e.maybeFlush()
}

// WriteKey writes an object key and its separator.
func (e *Encoder) WriteKey(key string) error {
	if err := e.begin(&Event{Type: EventKey, Key: key}); err != nil {
		return err
	}
	e.quote(EventKey, key)
	e.writeByte(':')
	if e.opts.indent > 0 {
		e.writeByte(' ')
	}
	return e.maybeFlush()
}

func (e *Encoder) quote(t EventType, s string) {
	e.tmp = token.AppendQuote(e.tmp[:0], s, e.opts.ascii)
	if e.opts.color == nil {
		e.write(e.tmp)
		return
	}
	e.writeString(e.opts.color(t, string(e.tmp)))
}

// emit writes the text of a token, colored when a color function is set.
func (e *Encoder) emit(t EventType, s string) {
	if e.opts.color != nil {
		s = e.opts.color(t, s)
	}
	e.writeString(s)
}

// WriteString writes a string value.
func (e *Encoder) WriteString(s string) error {
	if err := e.begin(&Event{Type: EventString}); err != nil {
		return err
	}
	e.quote(EventString, s)
	return e.maybeFlush()
}

// WriteNumber writes the numeric literal lit. Literals which are not
// strict JSON, such as hexadecimal ones, are rewritten in decimal.
func (e *Encoder) WriteNumber(lit string) error {
	if !token.IsStrictNumber([]byte(lit)) {
		n, err := value.ParseNumber(lit)
		if err != nil {
			return err
		}
		lit = n.String()
	}
	if err := e.begin(&Event{Type: EventNumber}); err != nil {
		return err
	}
	e.emit(EventNumber, lit)
	return e.maybeFlush()
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(b bool) error {
	if err := e.begin(&Event{Type: EventBool}); err != nil {
		return err
	}
	if b {
		e.emit(EventBool, "true")
	} else {
		e.emit(EventBool, "false")
	}
	return e.maybeFlush()
}

// WriteNull writes a null value.
func (e *Encoder) WriteNull() error {
	if err := e.begin(&Event{Type: EventNull}); err != nil {
		return err
	}
	e.emit(EventNull, "null")
	return e.maybeFlush()
}

func (e *Encoder) getChunk() []byte {
	if e.chunk == nil {
		e.chunk = make([]byte, chunkSize)
	}
	return e.chunk
}

// WriteStringFrom writes a string value whose UTF-8 content is read from
// r in chunks. The content is never colored.
func (e *Encoder) WriteStringFrom(r io.Reader) error {
	if err := e.begin(&Event{Type: EventString}); err != nil {
		return err
	}
	e.writeByte('"')
	e.esc.Reset()
	chunk := e.getChunk()
	carry := 0
	for {
		n, rerr := r.Read(chunk[carry:])
		n += carry
		final := rerr != nil
		var used int
		e.tmp, used = e.esc.Append(e.tmp[:0], chunk[:n], final)
		e.write(e.tmp)
		carry = copy(chunk, chunk[used:n])
		if err := e.maybeFlush(); err != nil {
			return err
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return e.fail(rerr)
		}
	}
	e.writeByte('"')
	return e.maybeFlush()
}

// WriteBinaryFrom writes the content of r as a base64 string value.
func (e *Encoder) WriteBinaryFrom(r io.Reader) error {
	if err := e.begin(&Event{Type: EventString}); err != nil {
		return err
	}
	e.writeByte('"')
	b64 := base64.NewEncoder(base64.StdEncoding, encoderWriter{e})
	if _, err := io.CopyBuffer(b64, readerOnly{r}, e.getChunk()); err != nil {
		return e.fail(err)
	}
	if err := b64.Close(); err != nil {
		return e.fail(err)
	}
	e.writeByte('"')
	return e.maybeFlush()
}

// encoderWriter stages raw output, flushing as it fills.
type encoderWriter struct{ e *Encoder }

func (w encoderWriter) Write(p []byte) (int, error) {
	w.e.write(p)
	if err := w.e.maybeFlush(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// readerOnly hides WriterTo so that io.CopyBuffer uses the given buffer.
type readerOnly struct{ io.Reader }

// WriteEvent writes ev. It makes Encoder an EventSink.
func (e *Encoder) WriteEvent(ev *Event) error {
	switch ev.Type {
	case EventBeginObject:
		return e.BeginObject()
	case EventEndObject:
		return e.EndObject()
	case EventBeginArray:
		return e.BeginArray()
	case EventEndArray:
		return e.EndArray()
	case EventKey:
		return e.WriteKey(ev.Key)
	case EventString:
		return e.WriteString(ev.String)
	case EventNumber:
		return e.WriteNumber(ev.Number)
	case EventBool:
		return e.WriteBool(ev.Bool)
	case EventNull:
		return e.WriteNull()
	}
	return structErr("unknown event type %d", ev.Type)
}

func (e *Encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return err
}

// Flush writes staged output to the destination.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if e.buf.Len() == 0 {
		return nil
	}
	_, err := e.buf.WriteTo(e.w)
	e.buf.Reset()
	if err != nil {
		return e.fail(err)
	}
	return nil
}

// Close flushes staged output and returns the staging buffer to its
// pool. It does not close the destination.
func (e *Encoder) Close() error {
	err := e.Flush()
	e.buf.Release()
	if err == nil && !e.state.Done() && e.offset > 0 {
		err = structErr("document is incomplete at %s", e.state.CurrentPath())
	}
	return err
}
