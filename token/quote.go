package token

import "unicode/utf8"

// MaxRuneEscape is the longest escaped form of one rune: a surrogate
// pair written as two \uXXXX escapes.
const MaxRuneEscape = 12

const hexDigitsLower = "0123456789abcdef"

// escapeTable maps ASCII to its escape: 0 is literal, 'u' is \u00XX and
// anything else is the character following a backslash.
var escapeTable = func() [utf8.RuneSelf]byte {
	var t [utf8.RuneSelf]byte
	for c := 0; c < 0x20; c++ {
		t[c] = 'u'
	}
	t['\b'] = 'b'
	t['\t'] = 't'
	t['\n'] = 'n'
	t['\f'] = 'f'
	t['\r'] = 'r'
	t['"'] = '"'
	t['\\'] = '\\'
	return t
}()

// Escaper writes string content as strict JSON. It carries the previous
// rune across calls so that content may be fed in chunks.
type Escaper struct {
	// ASCII restricts output to ASCII, escaping everything above U+007F.
	ASCII bool
	prev  rune
}

// Reset prepares e for a new string.
func (e *Escaper) Reset() { e.prev = 0 }

// AppendRune appends the escaped form of r, at most MaxRuneEscape bytes.
func (e *Escaper) AppendRune(dst []byte, r rune) []byte {
	prev := e.prev
	e.prev = r
	if r < utf8.RuneSelf {
		switch esc := escapeTable[r]; esc {
		case 0:
			if r == '/' && prev == '<' {
				return append(dst, '\\', '/')
			}
			return append(dst, byte(r))
		case 'u':
			return appendU(dst, r)
		default:
			return append(dst, '\\', esc)
		}
	}
	if r == '\u2028' || r == '\u2029' {
		return appendU(dst, r)
	}
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	if !e.ASCII {
		return utf8.AppendRune(dst, r)
	}
	if r > 0xFFFF {
		r -= 0x10000
		dst = appendU(dst, 0xD800+(r>>10))
		return appendU(dst, 0xDC00+(r&0x3FF))
	}
	return appendU(dst, r)
}

// Append appends the escaped form of the complete UTF-8 sequences in p
// and returns the number of bytes consumed. An incomplete sequence at the
// end of p is left for the next call unless final is set, in which case
// it is written as U+FFFD.
func (e *Escaper) Append(dst, p []byte, final bool) ([]byte, int) {
	i := 0
	for i < len(p) {
		c := p[i]
		if c < utf8.RuneSelf {
			dst = e.AppendRune(dst, rune(c))
			i++
			continue
		}
		if !final && !utf8.FullRune(p[i:]) {
			break
		}
		r, sz := utf8.DecodeRune(p[i:])
		dst = e.AppendRune(dst, r)
		i += sz
	}
	return dst, i
}

// AppendString appends the escaped form of s.
func (e *Escaper) AppendString(dst []byte, s string) []byte {
	for _, r := range s {
		dst = e.AppendRune(dst, r)
	}
	return dst
}

func appendU(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigitsLower[r>>12&0xF],
		hexDigitsLower[r>>8&0xF],
		hexDigitsLower[r>>4&0xF],
		hexDigitsLower[r&0xF])
}

// AppendQuote appends s as a quoted JSON string.
func AppendQuote(dst []byte, s string, ascii bool) []byte {
	e := Escaper{ASCII: ascii}
	dst = append(dst, '"')
	dst = e.AppendString(dst, s)
	return append(dst, '"')
}

// Quote returns s as a quoted JSON string.
func Quote(s string, ascii bool) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s, ascii))
}
