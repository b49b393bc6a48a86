package token

// IsNumber reports whether d is a complete numeric literal: an optional
// sign followed by a 0x hexadecimal integer or by digits with an
// optional fraction and exponent.
func IsNumber(d []byte) bool {
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		d = d[1:]
	}
	if len(d) > 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X') {
		return hexDigits(d[2:]) == len(d)-2
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits+f+e == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if _, ok := hexVal(rune(d[i])); !ok {
			break
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract measures a '.' followed by one or more digits.
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// IsStrictNumber reports whether d is a number as RFC 8259 defines it.
func IsStrictNumber(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 || (digits > 1 && d[0] == '0') {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits+f+e == len(d)
}
