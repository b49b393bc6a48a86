// Package parse builds value trees from permissive JSON text or from a
// stream of events.
//
// The top level value must be an object or an array. Numbers become the
// most compact of int, long and decimal which holds them exactly;
// literals with a fraction or an exponent become decimals.
//
// Malformed input yields a *token.SyntaxError, which matches ErrParse.
// Objects exceeding MaxObjectEntries yield a *value.CapacityError.
package parse
