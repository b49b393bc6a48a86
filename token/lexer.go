package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jvkit/jv/debug"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// wordStop lists the runes which end an unquoted word besides white space.
const wordStop = ",:]}/\\\"[{;=#"

// Lexer splits permissive JSON text into tokens.
type Lexer struct {
	r      *bufio.Reader
	pos    Pos
	prev   Pos
	buf    []byte
	peeked *Token
	err    error
}

// NewLexer returns a lexer reading from r. A leading byte order mark is
// dropped; UTF-16 input with a byte order mark is transcoded to UTF-8.
func NewLexer(r io.Reader) *Lexer {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &Lexer{
		r:   bufio.NewReader(transform.NewReader(r, dec)),
		pos: Pos{Line: 1, Col: 1},
	}
}

// Pos returns the position of the next unread rune.
func (l *Lexer) Pos() Pos { return l.pos }

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil {
		t, err := l.lex()
		if err != nil {
			return Token{}, err
		}
		l.peeked = &t
	}
	return *l.peeked, nil
}

// Next returns the next token. At the end of input it returns a TEOF
// token. Errors are sticky.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.lex()
}

// Errorf returns a *SyntaxError at p carrying a snippet of the input
// which remains unread.
func (l *Lexer) Errorf(p Pos, cause error, format string, args ...any) *SyntaxError {
	snip, _ := l.r.Peek(SnippetLen)
	return &SyntaxError{
		Msg:     fmt.Sprintf(format, args...),
		Pos:     p,
		Snippet: string(snip),
		Err:     cause,
	}
}

func (l *Lexer) fail(err error) (Token, error) {
	l.err = err
	return Token{}, err
}

func (l *Lexer) read() (rune, error) {
	r, sz, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	l.prev = l.pos
	l.pos.advance(r, sz)
	return r, nil
}

// unread steps back over the rune returned by the last read.
func (l *Lexer) unread() {
	if err := l.r.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos = l.prev
}

func (l *Lexer) lex() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	t, err := l.lexOne()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{Type: TEOF, Pos: l.pos}, nil
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			err = l.Errorf(l.pos, err, "read error")
		}
		return l.fail(err)
	}
	if debug.Parse() {
		debug.Logf("token %s", &t)
	}
	return t, nil
}

func (l *Lexer) lexOne() (Token, error) {
	var (
		r   rune
		err error
	)
	for {
		r, err = l.read()
		if err != nil {
			return Token{}, err
		}
		if r > ' ' {
			break
		}
	}
	start := l.prev
	tok := Token{Pos: start}
	switch r {
	case '{':
		tok.Type = TLCurl
	case '}':
		tok.Type = TRCurl
	case '[':
		tok.Type = TLSquare
	case ']':
		tok.Type = TRSquare
	case ',', ';':
		tok.Type = TComma
	case ':':
		tok.Type = TColon
	case '=':
		tok.Type = TColon
		next, err := l.read()
		switch {
		case err == nil && next == '>':
			tok.Bytes = []byte("=>")
			return tok, nil
		case err == nil:
			l.unread()
		case !errors.Is(err, io.EOF):
			return Token{}, err
		}
	case '"', '\'':
		s, err := l.quoted(r, start)
		if err != nil {
			return Token{}, err
		}
		tok.Type = TString
		tok.Bytes = s
		return tok, nil
	default:
		if strings.ContainsRune(wordStop, r) {
			return Token{}, l.Errorf(start, nil, "unexpected %q", r)
		}
		l.unread()
		w, err := l.word()
		if err != nil {
			return Token{}, err
		}
		tok.Type = classify(w)
		tok.Bytes = w
		return tok, nil
	}
	tok.Bytes = []byte(string(r))
	return tok, nil
}

func (l *Lexer) word() ([]byte, error) {
	l.buf = l.buf[:0]
	for {
		r, err := l.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if r <= ' ' || strings.ContainsRune(wordStop, r) {
			l.unread()
			break
		}
		l.buf = utf8.AppendRune(l.buf, r)
	}
	return append([]byte(nil), l.buf...), nil
}

func classify(w []byte) TokenType {
	switch s := string(w); {
	case strings.EqualFold(s, "true"):
		return TTrue
	case strings.EqualFold(s, "false"):
		return TFalse
	case strings.EqualFold(s, "null"):
		return TNull
	case IsNumber(w):
		return TNumber
	}
	return TLiteral
}

func (l *Lexer) quoted(q rune, start Pos) ([]byte, error) {
	l.buf = l.buf[:0]
	for {
		at := l.pos
		r, err := l.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, l.Errorf(start, ErrUnterminated, "unterminated string")
			}
			return nil, err
		}
		switch r {
		case q:
			return append([]byte(nil), l.buf...), nil
		case '\n', '\r':
			return nil, l.Errorf(start, ErrUnterminated, "unterminated string")
		case '\\':
			if err := l.escape(at); err != nil {
				return nil, err
			}
		default:
			l.buf = utf8.AppendRune(l.buf, r)
		}
	}
}

func (l *Lexer) escape(at Pos) error {
	r, err := l.read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return l.Errorf(at, ErrUnterminated, "unterminated escape")
		}
		return err
	}
	switch r {
	case 'b':
		l.buf = append(l.buf, '\b')
	case 't':
		l.buf = append(l.buf, '\t')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 'f':
		l.buf = append(l.buf, '\f')
	case 'r':
		l.buf = append(l.buf, '\r')
	case '"', '\'', '\\', '/':
		l.buf = append(l.buf, byte(r))
	case 'u':
		u, err := l.hex4(at)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(u) && u < 0xDC00 {
			if lo, ok := l.lowSurrogate(); ok {
				u = utf16.DecodeRune(u, lo)
			}
		}
		l.buf = utf8.AppendRune(l.buf, u)
	default:
		return l.Errorf(at, ErrBadEscape, "illegal escape \\%c", r)
	}
	return nil
}

func (l *Lexer) hex4(at Pos) (rune, error) {
	var u rune
	for range 4 {
		r, err := l.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, l.Errorf(at, ErrUnterminated, "unterminated escape")
			}
			return 0, err
		}
		d, ok := hexVal(r)
		if !ok {
			return 0, l.Errorf(at, ErrBadEscape, "illegal \\u escape")
		}
		u = u<<4 | d
	}
	return u, nil
}

// lowSurrogate consumes a following \uDC00-\uDFFF escape if there is one.
func (l *Lexer) lowSurrogate() (rune, bool) {
	p, err := l.r.Peek(6)
	if err != nil || p[0] != '\\' || p[1] != 'u' {
		return 0, false
	}
	var u rune
	for _, c := range p[2:] {
		d, ok := hexVal(rune(c))
		if !ok {
			return 0, false
		}
		u = u<<4 | d
	}
	if u < 0xDC00 || u > 0xDFFF {
		return 0, false
	}
	for range 6 {
		l.read()
	}
	return u, true
}

func hexVal(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	}
	return 0, false
}
