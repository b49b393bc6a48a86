package stream

import (
	"io"

	"github.com/jvkit/jv/debug"
	"github.com/jvkit/jv/token"
)

type expect int

const (
	expectRoot expect = iota
	expectKeyOrEnd
	expectColon
	expectValue
	expectValueOrEnd
	expectSepOrEnd
	expectEOF
)

// Decoder provides structural event-based decoding of permissive JSON.
type Decoder struct {
	lex   *token.Lexer
	state *State
	opts  *streamOpts
	exp   expect
	err   error
}

// NewDecoder creates a new Decoder reading from r. Only WithMaxDepth
// applies to decoding.
func NewDecoder(r io.Reader, opts ...StreamOption) *Decoder {
	o := newOpts(opts)
	return &Decoder{
		lex:   token.NewLexer(r),
		state: NewState(o.maxDepth),
		opts:  o,
	}
}

// Reset resets the decoder to read from a new reader.
func (d *Decoder) Reset(r io.Reader) {
	d.lex = token.NewLexer(r)
	d.state.Reset()
	d.exp = expectRoot
	d.err = nil
}

// ReadEvent reads the next structural event. Separators are consumed
// silently. After the top level value it returns io.EOF, or a
// *token.SyntaxError if anything but white space follows.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.err != nil {
		return nil, d.err
	}
	ev, err := d.readEvent()
	if err != nil {
		if err != io.EOF {
			d.err = err
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("event %s at %s", ev.text(), d.state.CurrentPath())
	}
	return ev, nil
}

func (d *Decoder) readEvent() (*Event, error) {
	for {
		tok, err := d.lex.Next()
		if err != nil {
			return nil, err
		}
		switch d.exp {
		case expectRoot:
			switch tok.Type {
			case token.TLCurl, token.TLSquare:
				return d.value(&tok)
			}
			return nil, d.errorf(&tok, "a document must begin with '{' or '[', found %s", tok.Type)

		case expectEOF:
			if tok.Type == token.TEOF {
				return nil, io.EOF
			}
			return nil, d.errorf(&tok, "unexpected %s after end of document", tok.Type)

		case expectKeyOrEnd:
			switch tok.Type {
			case token.TRCurl:
				return d.end(&tok, EventEndObject)
			case token.TString, token.TLiteral, token.TNumber, token.TTrue, token.TFalse, token.TNull:
				ev := &Event{Type: EventKey, Key: string(tok.Bytes), Pos: tok.Pos}
				if err := d.process(&tok, ev); err != nil {
					return nil, err
				}
				d.exp = expectColon
				return ev, nil
			case token.TEOF:
				return nil, d.errorf(&tok, "unterminated object")
			}
			return nil, d.errorf(&tok, "expected a key, found %s", tok.Type)

		case expectColon:
			if tok.Type != token.TColon {
				return nil, d.errorf(&tok, "expected ':' after key, found %s", tok.Type)
			}
			d.exp = expectValue

		case expectValue, expectValueOrEnd:
			switch tok.Type {
			case token.TRSquare:
				if d.exp == expectValueOrEnd {
					return d.end(&tok, EventEndArray)
				}
			case token.TEOF:
				return nil, d.errorf(&tok, "unexpected end of input")
			case token.TComma, token.TColon, token.TRCurl:
			default:
				return d.value(&tok)
			}
			return nil, d.errorf(&tok, "expected a value, found %s", tok.Type)

		case expectSepOrEnd:
			switch tok.Type {
			case token.TComma:
				if d.state.IsInObject() {
					d.exp = expectKeyOrEnd
				} else {
					d.exp = expectValueOrEnd
				}
				continue
			case token.TRCurl:
				if d.state.IsInObject() {
					return d.end(&tok, EventEndObject)
				}
			case token.TRSquare:
				if d.state.IsInArray() {
					return d.end(&tok, EventEndArray)
				}
			case token.TEOF:
				return nil, d.errorf(&tok, "unexpected end of input")
			}
			if d.state.IsInObject() {
				return nil, d.errorf(&tok, "expected ',' or '}', found %s", tok.Type)
			}
			return nil, d.errorf(&tok, "expected ',' or ']', found %s", tok.Type)
		}
	}
}

func (d *Decoder) value(tok *token.Token) (*Event, error) {
	ev := &Event{Pos: tok.Pos}
	next := expectSepOrEnd
	switch tok.Type {
	case token.TLCurl:
		ev.Type = EventBeginObject
		next = expectKeyOrEnd
	case token.TLSquare:
		ev.Type = EventBeginArray
		next = expectValueOrEnd
	case token.TString, token.TLiteral:
		if d.state.IsInArray() {
			peek, err := d.lex.Peek()
			if err != nil {
				return nil, err
			}
			if peek.Type == token.TColon {
				return nil, d.errorf(tok, "key %q inside an array", tok.Bytes)
			}
		}
		ev.Type = EventString
		ev.String = string(tok.Bytes)
	case token.TNumber:
		ev.Type = EventNumber
		ev.Number = string(tok.Bytes)
	case token.TTrue, token.TFalse:
		ev.Type = EventBool
		ev.Bool = tok.Type == token.TTrue
	case token.TNull:
		ev.Type = EventNull
	}
	if err := d.process(tok, ev); err != nil {
		return nil, err
	}
	d.exp = next
	return ev, nil
}

func (d *Decoder) end(tok *token.Token, t EventType) (*Event, error) {
	ev := &Event{Type: t, Pos: tok.Pos}
	if err := d.process(tok, ev); err != nil {
		return nil, err
	}
	if d.state.Done() {
		d.exp = expectEOF
	} else {
		d.exp = expectSepOrEnd
	}
	return ev, nil
}

func (d *Decoder) process(tok *token.Token, ev *Event) error {
	if err := d.state.ProcessEvent(ev); err != nil {
		return d.lex.Errorf(tok.Pos, err, "%s", err.Error())
	}
	return nil
}

func (d *Decoder) errorf(tok *token.Token, format string, args ...any) error {
	return d.lex.Errorf(tok.Pos, nil, format, args...)
}

// Depth returns the current nesting depth (0 = top level).
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// CurrentPath returns the path of the last event read.
func (d *Decoder) CurrentPath() string {
	return d.state.CurrentPath()
}

// IsInObject returns true if currently inside an object.
func (d *Decoder) IsInObject() bool {
	return d.state.IsInObject()
}

// IsInArray returns true if currently inside an array.
func (d *Decoder) IsInArray() bool {
	return d.state.IsInArray()
}

// Pos returns the input position after the last token read.
func (d *Decoder) Pos() token.Pos {
	return d.lex.Pos()
}

// Errorf returns a *token.SyntaxError at p with a snippet of the input
// which remains unread.
func (d *Decoder) Errorf(p token.Pos, cause error, format string, args ...any) *token.SyntaxError {
	return d.lex.Errorf(p, cause, format, args...)
}
