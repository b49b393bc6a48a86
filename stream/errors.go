package stream

import "errors"

var (
	// ErrStructure is returned when events arrive out of order, such as
	// a key inside an array or an end without a begin.
	ErrStructure = errors.New("bad event structure")
	// ErrDepth is returned when nesting passes the configured maximum.
	ErrDepth = errors.New("nesting too deep")
)
