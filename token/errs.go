package token

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUTF8      = errors.New("bad utf8")
)

// SnippetLen bounds the input excerpt carried by a SyntaxError.
const SnippetLen = 20

// SyntaxError describes malformed input. Snippet holds up to SnippetLen
// bytes of the input remaining at Pos.
type SyntaxError struct {
	Msg     string
	Pos     Pos
	Snippet string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at %s near %s", ErrSyntax, e.Msg, e.Pos, strconv.Quote(e.Snippet))
}

// Unwrap returns ErrSyntax and the more specific cause, if any.
func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}
