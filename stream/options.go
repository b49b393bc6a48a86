package stream

import "github.com/jvkit/jv/pool"

// DefaultMaxDepth bounds container nesting unless WithMaxDepth is given.
const DefaultMaxDepth = 512

// DefaultFlushSize is the staged output size at which an Encoder writes
// through to its destination.
const DefaultFlushSize = 4096

// StreamOption configures Encoder/Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	indent    int
	ascii     bool
	pool      *pool.Pool
	maxDepth  int
	flushSize int
	color     func(EventType, string) string
}

func newOpts(opts []StreamOption) *streamOpts {
	o := &streamOpts{maxDepth: DefaultMaxDepth, flushSize: DefaultFlushSize}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithIndent makes the Encoder write one entry per line, indented by n
// spaces per level. n <= 0 writes compact output.
func WithIndent(n int) StreamOption {
	return func(o *streamOpts) {
		o.indent = max(n, 0)
	}
}

// WithASCII makes the Encoder escape every code point above U+007F.
func WithASCII() StreamOption {
	return func(o *streamOpts) {
		o.ascii = true
	}
}

// WithPool makes the Encoder stage output in buffers from p.
func WithPool(p *pool.Pool) StreamOption {
	return func(o *streamOpts) {
		o.pool = p
	}
}

// WithMaxDepth bounds container nesting. n <= 0 removes the bound.
func WithMaxDepth(n int) StreamOption {
	return func(o *streamOpts) {
		o.maxDepth = n
	}
}

// WithFlushSize sets the staged output size at which the Encoder writes
// through to its destination.
func WithFlushSize(n int) StreamOption {
	return func(o *streamOpts) {
		if n > 0 {
			o.flushSize = n
		}
	}
}

// WithColor makes the Encoder pass the text of each token through color,
// which typically wraps it in terminal escape sequences.
func WithColor(color func(EventType, string) string) StreamOption {
	return func(o *streamOpts) {
		o.color = color
	}
}
