package value

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrImmutable    = errors.New("immutable value")
	ErrCapacity     = errors.New("capacity exceeded")
	ErrDuplicateKey = errors.New("duplicate key")
)

// AccessError is returned by the strict accessors. It wraps ErrNotFound
// or ErrTypeMismatch.
type AccessError struct {
	Key   string
	Index int // -1 for object access
	Want  string
	Got   Type
	Err   error
}

func (e *AccessError) location() string {
	if e.Index < 0 {
		return "key " + strconv.Quote(e.Key)
	}
	return "index " + strconv.Itoa(e.Index)
}

func (e *AccessError) Error() string {
	if errors.Is(e.Err, ErrTypeMismatch) {
		return fmt.Sprintf("%s: %s: want %s, got %s", e.location(), e.Err, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %s", e.location(), e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// CapacityError is returned when an object with an entry limit would grow
// past it. It wraps ErrCapacity.
type CapacityError struct {
	Limit int
	Key   string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: object is limited to %d entries, cannot add %q", ErrCapacity, e.Limit, e.Key)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

type loc struct {
	key   string
	index int
}

func keyLoc(k string) loc { return loc{key: k, index: -1} }
func indexLoc(i int) loc  { return loc{index: i} }

func (l loc) notFound(want string) error {
	return &AccessError{Key: l.key, Index: l.index, Want: want, Err: ErrNotFound}
}

func (l loc) mismatch(want string, v Value) error {
	return &AccessError{Key: l.key, Index: l.index, Want: want, Got: v.Type(), Err: ErrTypeMismatch}
}

func immutable(op string) error {
	return fmt.Errorf("%w: %s", ErrImmutable, op)
}
