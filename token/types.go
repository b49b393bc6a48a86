package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TLiteral
	TNumber
	TTrue
	TFalse
	TNull
	TEOF
)

func (t TokenType) String() string {
	switch t {
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TComma:
		return "separator"
	case TColon:
		return "key separator"
	case TString:
		return "string"
	case TLiteral:
		return "unquoted string"
	case TNumber:
		return "number"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNull:
		return "null"
	case TEOF:
		return "end of input"
	default:
		return "<unknown token>"
	}
}

// Token is a lexical token. For TString and TLiteral Bytes holds the
// decoded text; for other types it holds the source text.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

// IsString reports whether t may be used as an object key or a string
// value.
func (t *Token) IsString() bool {
	return t.Type == TString || t.Type == TLiteral
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Type, t.Bytes, t.Pos)
}
