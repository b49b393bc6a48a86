package lazy

import (
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/token"
	"github.com/jvkit/jv/value"
)

// producer appends the serialization of one value to a chunk. produce
// writes until the value is complete or the chunk lacks room for the
// next unit, and is called again with a drained chunk to continue.
type producer interface {
	produce(buf *pool.Buffer) (done bool, err error)
	close() error
}

func (r *Reader) producerFor(v value.Value) producer {
	switch x := v.(type) {
	case *value.Object:
		return &nested{r: r, obj: x, openCh: '{', closeCh: '}'}
	case *value.Array:
		return &nested{r: r, arr: x, openCh: '[', closeCh: ']'}
	case value.String:
		return &text{s: string(x), esc: token.Escaper{ASCII: r.o.ascii}}
	case *value.StreamString:
		return &streamText{leaf: leaf{r: r, open: x.Open}, esc: token.Escaper{ASCII: r.o.ascii}}
	case *value.Binary:
		return &binary{leaf: leaf{r: r, open: x.Open}}
	case value.Number:
		if !x.IsFinite() {
			return &literal{s: "null"}
		}
		return &literal{s: x.String()}
	case value.Bool:
		return &literal{s: x.String()}
	default:
		return &literal{s: "null"}
	}
}

type step int

const (
	stepOpen step = iota
	stepNext
	stepKey
	stepColon
	stepValue
	stepClose
	stepDone
)

// nested walks the entries of a container. The value being written is
// drained through cur before the next entry is taken.
type nested struct {
	r       *Reader
	obj     *value.Object
	arr     *value.Array
	i       int
	step    step
	val     value.Value
	cur     producer
	openCh  byte
	closeCh byte
}

func (n *nested) open(buf *pool.Buffer) {
	if n.step == stepOpen && buf.AppendByte(n.openCh) {
		n.step = stepNext
	}
}

func (n *nested) len() int {
	if n.obj != nil {
		return n.obj.Len()
	}
	return n.arr.Len()
}

func (n *nested) produce(buf *pool.Buffer) (bool, error) {
	for {
		switch n.step {
		case stepOpen:
			if !buf.AppendByte(n.openCh) {
				return false, nil
			}
			n.step = stepNext
		case stepNext:
			if n.i == n.len() {
				n.step = stepClose
				continue
			}
			if n.i > 0 && !buf.AppendByte(',') {
				return false, nil
			}
			if n.obj != nil {
				k, v := n.obj.At(n.i)
				n.val = v
				n.cur = &text{s: k, esc: token.Escaper{ASCII: n.r.o.ascii}}
				n.step = stepKey
			} else {
				v, _ := n.arr.Get(n.i)
				n.cur = n.r.producerFor(v)
				n.step = stepValue
			}
			n.i++
		case stepKey:
			if done, err := n.cur.produce(buf); !done || err != nil {
				return false, err
			}
			n.step = stepColon
		case stepColon:
			if !buf.AppendByte(':') {
				return false, nil
			}
			n.cur = n.r.producerFor(n.val)
			n.val = nil
			n.step = stepValue
		case stepValue:
			if done, err := n.cur.produce(buf); !done || err != nil {
				return false, err
			}
			n.cur = nil
			n.step = stepNext
		case stepClose:
			if !buf.AppendByte(n.closeCh) {
				return false, nil
			}
			n.step = stepDone
		case stepDone:
			return true, nil
		}
	}
}

func (n *nested) close() error {
	if n.cur == nil {
		return nil
	}
	err := n.cur.close()
	n.cur = nil
	return err
}

type literal struct {
	s   string
	off int
}

func (l *literal) produce(buf *pool.Buffer) (bool, error) {
	l.off += buf.AppendString(l.s[l.off:])
	return l.off == len(l.s), nil
}

func (*literal) close() error { return nil }

// quoted writes the quotes around a string body.
type quoted struct {
	step int
}

func (q *quoted) produce(buf *pool.Buffer, body func(*pool.Buffer) (bool, error)) (bool, error) {
	if q.step == 0 {
		if !buf.AppendByte('"') {
			return false, nil
		}
		q.step = 1
	}
	if q.step == 1 {
		if done, err := body(buf); !done || err != nil {
			return false, err
		}
		q.step = 2
	}
	if q.step == 2 {
		if !buf.AppendByte('"') {
			return false, nil
		}
		q.step = 3
	}
	return true, nil
}

// appendRune escapes ru into buf, which must have room for
// token.MaxRuneEscape bytes.
func appendRune(buf *pool.Buffer, esc *token.Escaper, ru rune) {
	var tmp [token.MaxRuneEscape]byte
	buf.Append(esc.AppendRune(tmp[:0], ru))
}

type text struct {
	quoted
	s   string
	off int
	esc token.Escaper
}

func (t *text) produce(buf *pool.Buffer) (bool, error) {
	return t.quoted.produce(buf, t.body)
}

func (t *text) body(buf *pool.Buffer) (bool, error) {
	for t.off < len(t.s) {
		if buf.Avail() < token.MaxRuneEscape {
			return false, nil
		}
		ru, size := utf8.DecodeRuneInString(t.s[t.off:])
		appendRune(buf, &t.esc, ru)
		t.off += size
	}
	return true, nil
}

func (*text) close() error { return nil }

// leaf is the open reader of a streaming leaf.
type leaf struct {
	r    *Reader
	open value.Opener
	rc   io.ReadCloser
	eof  bool
}

func (l *leaf) start(what string) error {
	if l.rc != nil || l.eof {
		return nil
	}
	rc, err := l.open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", what, err)
	}
	l.rc = rc
	l.r.sc.reset()
	return nil
}

// read tops up the scratch input.
func (l *leaf) read() error {
	err := l.r.sc.fill(l.rc)
	if err == io.EOF {
		l.eof = true
		return nil
	}
	return err
}

func (l *leaf) close() error {
	if l.rc == nil {
		return nil
	}
	err := l.rc.Close()
	l.rc = nil
	return err
}

// finish closes the source once its content is consumed.
func (l *leaf) finish() (bool, error) {
	if err := l.close(); err != nil {
		return false, err
	}
	return true, nil
}

type streamText struct {
	quoted
	leaf
	esc token.Escaper
}

func (s *streamText) produce(buf *pool.Buffer) (bool, error) {
	return s.quoted.produce(buf, s.body)
}

func (s *streamText) body(buf *pool.Buffer) (bool, error) {
	if err := s.start("string"); err != nil {
		return false, err
	}
	sc := &s.r.sc
	for {
		in := sc.pending()
		if !s.eof && !utf8.FullRune(in) {
			if err := s.read(); err != nil {
				return false, err
			}
			continue
		}
		if len(in) == 0 {
			return s.finish()
		}
		if buf.Avail() < token.MaxRuneEscape {
			return false, nil
		}
		ru, size := utf8.DecodeRune(in)
		appendRune(buf, &s.esc, ru)
		sc.consume(size)
	}
}

type binary struct {
	quoted
	leaf
}

func (b *binary) produce(buf *pool.Buffer) (bool, error) {
	return b.quoted.produce(buf, b.body)
}

// body encodes whole 3 byte groups, leaving padding to the final group.
func (b *binary) body(buf *pool.Buffer) (bool, error) {
	if err := b.start("binary"); err != nil {
		return false, err
	}
	sc := &b.r.sc
	for {
		in := sc.pending()
		if !b.eof && len(in) < 3 {
			if err := b.read(); err != nil {
				return false, err
			}
			continue
		}
		if len(in) == 0 {
			return b.finish()
		}
		n := min(len(in), buf.Avail()/4*3)
		if n < len(in) || !b.eof {
			n -= n % 3
		}
		if n == 0 {
			return false, nil
		}
		m := base64.StdEncoding.EncodedLen(n)
		if cap(b.r.tmp) < m {
			b.r.tmp = make([]byte, m)
		}
		out := b.r.tmp[:m]
		base64.StdEncoding.Encode(out, in[:n])
		buf.Append(out)
		sc.consume(n)
	}
}

const scratchSize = 3 * 512

// scratch holds input read from the streaming leaf being written. Leaves
// are written one at a time, so a Reader needs only one.
type scratch struct {
	b          []byte
	start, end int
}

func (s *scratch) pending() []byte { return s.b[s.start:s.end] }

func (s *scratch) consume(n int) { s.start += n }

func (s *scratch) reset() { s.start, s.end = 0, 0 }

func (s *scratch) fill(r io.Reader) error {
	if s.b == nil {
		s.b = make([]byte, scratchSize)
	}
	if s.start > 0 {
		s.end = copy(s.b, s.b[s.start:s.end])
		s.start = 0
	}
	n, err := r.Read(s.b[s.end:])
	s.end += n
	return err
}
