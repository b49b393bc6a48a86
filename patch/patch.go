// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to value trees.
//
// Documents are exchanged with the patch engine as strict JSON, so object
// keys of patched results come back in sorted order.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/value"
)

var ErrPatch = errors.New("patch error")

// Apply applies the operations in ops, an array of RFC 6902 operation
// objects, to doc. doc is not modified.
func Apply(doc, ops value.Value) (value.Value, error) {
	d, err := encode.Bytes(ops)
	if err != nil {
		return nil, err
	}
	return ApplyJSON(doc, d)
}

// ApplyJSON is Apply with the operations given as JSON text.
func ApplyJSON(doc value.Value, ops []byte) (value.Value, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding operations: %w", ErrPatch, err)
	}
	d, err := encode.Bytes(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.ParseBytes(out)
}

// Merge applies the merge patch mp to doc.
func Merge(doc, mp value.Value) (value.Value, error) {
	d, err := encode.Bytes(doc)
	if err != nil {
		return nil, err
	}
	m, err := encode.Bytes(mp)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.ParseBytes(out)
}

// CreateMerge returns the merge patch which turns from into to. Both
// must be objects.
func CreateMerge(from, to value.Value) (value.Value, error) {
	if from.Type() != value.ObjectType || to.Type() != value.ObjectType {
		return nil, fmt.Errorf("%w: merge patches are computed between objects, got %s and %s", ErrPatch, from.Type(), to.Type())
	}
	a, err := encode.Bytes(from)
	if err != nil {
		return nil, err
	}
	b, err := encode.Bytes(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.ParseBytes(out)
}
