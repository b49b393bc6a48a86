package lazy

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/jvkit/jv/debug"
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/value"
)

var ErrClosed = errors.New("lazy reader closed")

// Reader serializes a value as compact JSON while it is read.
type Reader struct {
	o        *options
	buf      *pool.Buffer
	off      int
	root     producer
	sc       scratch
	tmp      []byte
	done     bool
	closed   bool
	err      error
	produced int64
	fills    int
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.RuneReader = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// NewReader returns a Reader over v. The opening bracket of a container
// is written to the chunk right away; everything else is produced as the
// Reader is read.
func NewReader(v value.Value, opts ...Option) *Reader {
	o := newOptions(opts)
	r := &Reader{o: o, buf: o.pool.Get(o.chunkSize)}
	r.root = r.producerFor(v)
	if n, ok := r.root.(*nested); ok {
		n.open(r.buf)
	}
	return r
}

func (r *Reader) unread() []byte {
	if r.buf == nil {
		return nil
	}
	return r.buf.Bytes()[r.off:]
}

// more produces the next chunk of output, keeping unread bytes. It
// returns io.EOF once the document is complete and has been read, and
// the first production error after the bytes preceding it.
func (r *Reader) more() error {
	if r.closed {
		return ErrClosed
	}
	if r.err != nil {
		return r.err
	}
	if r.done {
		if len(r.unread()) == 0 {
			r.release()
		}
		return io.EOF
	}
	if r.off > 0 {
		b := r.buf.Bytes()
		n := copy(b, b[r.off:])
		r.buf.Truncate(n)
		r.off = 0
	}
	before := r.buf.Len()
	done, err := r.root.produce(r.buf)
	r.produced += int64(r.buf.Len() - before)
	r.fills++
	r.done = done
	if err != nil {
		r.err = err
		r.root.close()
		if debug.Lazy() {
			debug.Logger().Info("lazy reader failed", "offset", r.produced, "error", err)
		}
	}
	return nil
}

func (r *Reader) release() {
	if r.buf == nil {
		return
	}
	r.o.pool.Release(r.buf)
	r.buf = nil
	r.off = 0
	if debug.Lazy() {
		debug.Logger().Info("lazy reader released", "bytes", r.produced, "fills", r.fills)
	}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		rest := r.unread()
		if len(rest) == 0 {
			if err := r.more(); err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, err
			}
			continue
		}
		c := copy(p[n:], rest)
		r.off += c
		n += c
	}
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	for len(r.unread()) == 0 {
		if err := r.more(); err != nil {
			return 0, err
		}
	}
	c := r.buf.Bytes()[r.off]
	r.off++
	return c, nil
}

// ReadRune implements io.RuneReader. A rune split across chunks is
// completed from the next chunk.
func (r *Reader) ReadRune() (rune, int, error) {
	for !utf8.FullRune(r.unread()) {
		if err := r.more(); err != nil {
			if len(r.unread()) == 0 {
				return 0, 0, err
			}
			break
		}
	}
	ru, size := utf8.DecodeRune(r.unread())
	r.off += size
	return ru, size, nil
}

// WriteTo implements io.WriterTo, writing chunks to w as they are
// produced.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if rest := r.unread(); len(rest) > 0 {
			n, err := w.Write(rest)
			r.off += n
			total += int64(n)
			if err != nil {
				return total, err
			}
			continue
		}
		err := r.more()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Close stops serialization, closes any open streaming leaf and returns
// the chunk to its pool. Reads after Close fail with ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.root.close()
	r.release()
	return err
}
