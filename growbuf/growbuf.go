// Package growbuf provides a byte buffer which grows by trading pooled
// buffers for larger ones.
//
// A Buffer owns at most one pool.Buffer. When a write does not fit, a
// buffer of max(1.5 * capacity, required) bytes is taken from the pool (or
// allocated when the pool has none), the content is copied over and the old
// buffer is released back to the pool. Total copy work is therefore linear
// in the number of bytes written.
//
// A Buffer is not safe for concurrent use.
package growbuf

import (
	"io"
	"unicode/utf8"

	"github.com/jvkit/jv/pool"
)

// DefaultSize is the initial capacity used when none is given.
const DefaultSize = 256

// Buffer is a growable buffer backed by pool buffers.
type Buffer struct {
	p       *pool.Pool
	buf     *pool.Buffer
	initial int
	grows   int
}

// New returns a Buffer drawing from p, which may be nil. The first pooled
// buffer is taken lazily on the first write.
func New(p *pool.Pool, initial int) *Buffer {
	if initial <= 0 {
		initial = DefaultSize
	}
	return &Buffer{p: p, initial: initial}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	if b.buf == nil {
		return 0
	}
	return b.buf.Len()
}

// Cap returns the capacity of the current backing buffer.
func (b *Buffer) Cap() int {
	if b.buf == nil {
		return 0
	}
	return b.buf.Cap()
}

// Grows returns how many times the buffer has been reallocated.
func (b *Buffer) Grows() int { return b.grows }

// Bytes returns the written bytes. The slice is only valid until the next
// write, Reset or Release.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf.Bytes()
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Hash returns the hash of the written bytes.
func (b *Buffer) Hash() uint64 {
	b.ensure(0)
	return b.buf.Hash()
}

func (b *Buffer) ensure(n int) {
	if b.buf == nil {
		b.buf = b.p.Get(max(b.initial, n))
		return
	}
	if b.buf.Avail() >= n {
		return
	}
	need := b.buf.Len() + n
	size := max(b.buf.Cap()*3/2, need)
	nb := b.p.Get(size)
	nb.Append(b.buf.Bytes())
	b.p.Release(b.buf)
	b.buf = nb
	b.grows++
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.ensure(len(p))
	return b.buf.Append(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	b.ensure(len(s))
	return b.buf.AppendString(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.ensure(1)
	b.buf.AppendByte(c)
	return nil
}

func (b *Buffer) WriteRune(r rune) (int, error) {
	if r < utf8.RuneSelf {
		return 1, b.WriteByte(byte(r))
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return b.Write(tmp[:n])
}

// WriteTo writes the content to w. The content is kept.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.Len() == 0 {
		return 0, nil
	}
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Reset discards the content and keeps the backing buffer.
func (b *Buffer) Reset() {
	if b.buf != nil {
		b.buf.Reset()
	}
}

// Release returns the backing buffer to the pool. The Buffer may be reused
// afterwards; it will take a new backing buffer on the next write.
func (b *Buffer) Release() {
	if b.buf == nil {
		return
	}
	b.p.Release(b.buf)
	b.buf = nil
}
