package parse

import (
	"github.com/jvkit/jv/token"
)

// ErrParse matches every error caused by malformed input. Such errors
// are *token.SyntaxError values carrying the position and a snippet of
// the remaining input.
var ErrParse = token.ErrSyntax
