package lazy

import "github.com/jvkit/jv/pool"

// DefaultChunkSize is the chunk capacity requested unless ChunkSize is
// given.
const DefaultChunkSize = 4096

// MinChunkSize is the smallest chunk a Reader works with.
const MinChunkSize = 64

type Option func(*options)

type options struct {
	ascii     bool
	pool      *pool.Pool
	chunkSize int
}

func newOptions(opts []Option) *options {
	o := &options{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ASCII escapes every code point above U+007F.
func ASCII() Option {
	return func(o *options) { o.ascii = true }
}

// WithPool takes the chunk from p, and returns it there when the Reader
// is exhausted or closed.
func WithPool(p *pool.Pool) Option {
	return func(o *options) { o.pool = p }
}

// ChunkSize sets the requested chunk capacity. Values below MinChunkSize
// are raised to it.
func ChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = max(n, MinChunkSize) }
}
