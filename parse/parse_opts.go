package parse

import "github.com/jvkit/jv/stream"

type parseOpts struct {
	maxEntries int
	maxDepth   int
	noDupKeys  bool
}

// ParseOption configures parsing.
type ParseOption func(*parseOpts)

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: stream.DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}

// MaxObjectEntries creates every parsed object with an entry limit of n.
// An object with more entries fails the parse with a *value.CapacityError.
func MaxObjectEntries(n int) ParseOption {
	return func(o *parseOpts) { o.maxEntries = n }
}

// MaxDepth bounds container nesting; n <= 0 removes the bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// RejectDuplicateKeys makes a repeated key within one object a parse
// error. By default the last value wins and the key keeps its first
// position.
func RejectDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.noDupKeys = true }
}
