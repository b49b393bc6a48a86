package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberKind is the stored representation of a Number.
type NumberKind int

const (
	IntKind NumberKind = iota
	LongKind
	DoubleKind
	DecimalKind
)

func (k NumberKind) String() string {
	switch k {
	case IntKind:
		return "int"
	case LongKind:
		return "long"
	case DoubleKind:
		return "double"
	case DecimalKind:
		return "decimal"
	default:
		return "<unknown number kind>"
	}
}

var ErrNumber = errors.New("invalid number")

// Number is a JSON number which remembers how it was produced: a 32 bit
// or 64 bit integer, a float64 given through the API, or an arbitrary
// precision decimal.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
	d    decimal.Decimal
}

func (Number) Type() Type { return NumberType }
func (Number) isValue()   {}

// Int returns the most compact integer Number holding v.
func Int(v int) Number {
	return Int64(int64(v))
}

// Int64 returns the most compact integer Number holding v.
func Int64(v int64) Number {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Number{kind: IntKind, i: v}
	}
	return Number{kind: LongKind, i: v}
}

// Float returns a Number holding f. Infinite and NaN values are allowed
// and serialize as null.
func Float(f float64) Number {
	return Number{kind: DoubleKind, f: f}
}

// Decimal returns a Number holding d.
func Decimal(d decimal.Decimal) Number {
	return Number{kind: DecimalKind, d: d}
}

// ParseNumber decodes a numeric literal. Integers become the smallest of
// int, long or decimal which holds them exactly; literals with a fraction
// or an exponent become decimals. A 0x prefix selects hexadecimal and a
// leading 0 followed only by octal digits selects octal.
func ParseNumber(s string) (Number, error) {
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" {
		return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	base := 0
	switch {
	case len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X'):
		base = 16
		body = body[2:]
	case allDigits(body, 10):
		base = 10
		if len(body) > 1 && body[0] == '0' && allDigits(body, 8) {
			base = 8
			body = body[1:]
		}
	}
	if base == 0 {
		if strings.ContainsAny(body, "xXiInN") || body[0] == 'e' || body[0] == 'E' {
			return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
		}
		d, err := decimal.NewFromString(body)
		if err != nil {
			return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
		}
		if neg {
			d = d.Neg()
		}
		return Decimal(d), nil
	}
	if base == 16 && !allDigits(body, 16) {
		return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	if u, err := strconv.ParseUint(body, base, 64); err == nil {
		switch {
		case !neg && u <= math.MaxInt64:
			return Int64(int64(u)), nil
		case neg && u <= 1<<63:
			return Int64(int64(-u)), nil
		}
	}
	bi, ok := new(big.Int).SetString(body, base)
	if !ok {
		return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	if neg {
		bi.Neg(bi)
	}
	return Decimal(decimal.NewFromBigInt(bi, 0)), nil
}

func allDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '7':
		case c == '8' || c == '9':
			if base < 10 {
				return false
			}
		case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
			if base < 16 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (n Number) Kind() NumberKind { return n.kind }

func (n Number) isIntegral() bool {
	return n.kind == IntKind || n.kind == LongKind
}

// IsFinite is false for infinite or NaN doubles.
func (n Number) IsFinite() bool {
	if n.kind != DoubleKind {
		return true
	}
	return !math.IsInf(n.f, 0) && !math.IsNaN(n.f)
}

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool {
	switch n.kind {
	case IntKind, LongKind:
		return true
	case DoubleKind:
		return n.IsFinite() && n.f == math.Trunc(n.f)
	default:
		return n.d.IsInteger()
	}
}

// Int64 truncates n toward zero. ok is false when n is not finite or does
// not fit.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case IntKind, LongKind:
		return n.i, true
	case DoubleKind:
		if !n.IsFinite() || n.f >= math.MaxInt64 || n.f < math.MinInt64 {
			return 0, false
		}
		return int64(n.f), true
	default:
		bi := n.d.Truncate(0).BigInt()
		if !bi.IsInt64() {
			return 0, false
		}
		return bi.Int64(), true
	}
}

// Float64 returns the closest float64 to n.
func (n Number) Float64() float64 {
	switch n.kind {
	case IntKind, LongKind:
		return float64(n.i)
	case DoubleKind:
		return n.f
	default:
		return n.d.InexactFloat64()
	}
}

// Decimal returns n as a decimal. ok is false for non finite doubles.
func (n Number) Decimal() (decimal.Decimal, bool) {
	switch n.kind {
	case IntKind, LongKind:
		return decimal.NewFromInt(n.i), true
	case DoubleKind:
		if !n.IsFinite() {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n.f), true
	default:
		return n.d, true
	}
}

// String renders n as JSON text. Trailing fractional zeros and a dangling
// decimal point are dropped; non finite values render as null.
func (n Number) String() string {
	switch n.kind {
	case IntKind, LongKind:
		return strconv.FormatInt(n.i, 10)
	case DoubleKind:
		if !n.IsFinite() {
			return "null"
		}
		abs := math.Abs(n.f)
		if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			return strconv.FormatFloat(n.f, 'e', -1, 64)
		}
		return trimZeros(strconv.FormatFloat(n.f, 'f', -1, 64))
	default:
		return trimZeros(n.d.String())
	}
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") || strings.ContainsAny(s, "eE") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Equal compares numeric values regardless of kind.
func (n Number) Equal(m Number) bool {
	if n.isIntegral() && m.isIntegral() {
		return n.i == m.i
	}
	if n.kind == DoubleKind && m.kind == DoubleKind {
		return n.f == m.f
	}
	a, ok := n.Decimal()
	if !ok {
		return false
	}
	b, ok := m.Decimal()
	if !ok {
		return false
	}
	return a.Equal(b)
}

// canonical is a kind independent rendering used for hashing.
func (n Number) canonical() string {
	if n.isIntegral() {
		return strconv.FormatInt(n.i, 10)
	}
	d, ok := n.Decimal()
	if !ok {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return d.String()
}

func (n Number) add1() Number {
	switch n.kind {
	case IntKind, LongKind:
		if n.i == math.MaxInt64 {
			return Decimal(decimal.NewFromInt(n.i).Add(decimal.NewFromInt(1)))
		}
		return Int64(n.i + 1)
	case DoubleKind:
		return Float(n.f + 1)
	default:
		return Decimal(n.d.Add(decimal.NewFromInt(1)))
	}
}
