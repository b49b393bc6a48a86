package encode

import "github.com/jvkit/jv/value"

func MustString(v value.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
