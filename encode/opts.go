package encode

import (
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/stream"
)

type EncodeOption func(*EncState)

// Indent selects pretty output, indenting n spaces per level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// ASCII escapes every code point above U+007F.
func ASCII() EncodeOption {
	return func(es *EncState) { es.ascii = true }
}

// WithPool stages output in buffers taken from p.
func WithPool(p *pool.Pool) EncodeOption {
	return func(es *EncState) { es.pool = p }
}

func FlushSize(n int) EncodeOption {
	return func(es *EncState) { es.flushSize = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func (es *EncState) streamOpts() []stream.StreamOption {
	opts := []stream.StreamOption{
		stream.WithIndent(es.indent),
		stream.WithPool(es.pool),
		stream.WithMaxDepth(0),
	}
	if es.ascii {
		opts = append(opts, stream.WithASCII())
	}
	if es.flushSize > 0 {
		opts = append(opts, stream.WithFlushSize(es.flushSize))
	}
	if es.Color != nil {
		opts = append(opts, stream.WithColor(es.eventColor))
	}
	return opts
}
