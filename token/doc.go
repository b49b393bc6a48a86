// Package token provides tokenization of permissive JSON text and the
// escaping tables used to write strict JSON.
//
// A [Lexer] reads from an io.Reader and produces [Token]s carrying their
// [Pos]. Beyond strict JSON it accepts:
//
//   - unquoted and single quoted keys and strings
//   - ';' as an element separator
//   - '=' and '=>' as key separators
//   - hexadecimal (0x) and octal (leading 0) integers
//   - true, false and null in any case
//
// Input may start with a byte order mark. UTF-16 input with a byte order
// mark is transcoded to UTF-8.
//
// [Escaper] and [AppendQuote] write strings as strict JSON, optionally
// restricted to ASCII.
package token
