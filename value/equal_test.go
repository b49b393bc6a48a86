package value

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func streamed(s string) *StreamString {
	return StringFrom(func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	})
}

func TestEqualAndHash(t *testing.T) {
	ab := NewObject()
	ab.Put("a", Int(1))
	ab.Put("b", NewArray(Bool(true), Null))
	ba := NewObject()
	ba.Put("b", NewArray(Bool(true), nil))
	ba.Put("a", Float(1))

	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"null nil", Null, nil, true},
		{"int double", Int(3), Float(3), true},
		{"long decimal", Int64(1 << 40), Decimal(decimal.NewFromInt(1 << 40)), true},
		{"string stream", String("hé"), streamed("hé"), true},
		{"string differs", String("a"), String("b"), false},
		{"binary", BinaryBytes([]byte{1, 2}), BinaryBytes([]byte{1, 2}), true},
		{"binary string", BinaryBytes([]byte("a")), String("a"), false},
		{"object order", ab, ba, true},
		{"array order", NewArray(Int(1), Int(2)), NewArray(Int(2), Int(1)), false},
		{"type", Bool(false), Int(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Fatalf("Equal: got %v", got)
			}
			if got := Equal(tt.b, tt.a); got != tt.equal {
				t.Fatalf("Equal reversed: got %v", got)
			}
			if tt.equal && Hash(tt.a) != Hash(tt.b) {
				t.Errorf("equal values hash differently")
			}
		})
	}
}
