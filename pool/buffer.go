package pool

import "github.com/cespare/xxhash/v2"

// Buffer is a fixed capacity byte buffer with a logical length.
type Buffer struct {
	b      []byte
	pos    int
	hash   uint64
	hashed bool
}

// NewBuffer allocates an unpooled buffer with the given capacity.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{b: make([]byte, size)}
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int { return len(b.b) }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.pos }

// Avail returns the number of bytes which can still be written.
func (b *Buffer) Avail() int { return len(b.b) - b.pos }

// Bytes returns the written portion. The slice aliases the buffer and is
// only valid until the next write or Reset.
func (b *Buffer) Bytes() []byte { return b.b[:b.pos] }

func (b *Buffer) String() string { return string(b.b[:b.pos]) }

// Append copies as much of p as fits and returns the number of bytes copied.
func (b *Buffer) Append(p []byte) int {
	n := copy(b.b[b.pos:], p)
	b.pos += n
	if n > 0 {
		b.hashed = false
	}
	return n
}

// AppendString is Append for strings.
func (b *Buffer) AppendString(s string) int {
	n := copy(b.b[b.pos:], s)
	b.pos += n
	if n > 0 {
		b.hashed = false
	}
	return n
}

// AppendByte appends c if there is room.
func (b *Buffer) AppendByte(c byte) bool {
	if b.pos == len(b.b) {
		return false
	}
	b.b[b.pos] = c
	b.pos++
	b.hashed = false
	return true
}

// Truncate discards all but the first n written bytes.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.pos {
		panic("pool: truncation out of range")
	}
	b.pos = n
	b.hashed = false
}

// Hash returns the xxhash of the written bytes. The result is cached until
// the next write.
func (b *Buffer) Hash() uint64 {
	if !b.hashed {
		b.hash = xxhash.Sum64(b.b[:b.pos])
		b.hashed = true
	}
	return b.hash
}

// Reset clears the logical length and the hash cache. The capacity is kept.
func (b *Buffer) Reset() {
	b.pos = 0
	b.hash = 0
	b.hashed = false
}
