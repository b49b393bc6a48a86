// Package convert translates value trees to and from YAML and BSON.
//
// Object key order is kept in both directions. Binary leaves become
// base64 strings in YAML and generic binary in BSON; decimals become
// Decimal128 in BSON.
package convert
