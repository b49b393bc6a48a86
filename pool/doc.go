// Package pool provides a tiered registry of reusable fixed capacity byte
// buffers.
//
// # Tiers
//
// A Pool has three tiers, Small, Medium and Large. Each tier has a buffer
// size and a number of slots. The slots of a tier are filled with fresh
// buffers the first time the tier is used, and a tier never holds more
// buffers than it has slots.
//
// # Acquire and Release
//
// Acquire selects the smallest tier whose buffers can hold the requested
// size. If that tier is empty the larger tiers are tried in order. When
// every candidate tier is empty Acquire records a miss and returns nil; Get
// instead falls back to allocating an unpooled buffer of the requested
// size.
//
// Release resets a buffer and offers it to the tier whose size equals the
// buffer's capacity. Buffers which match no tier, or whose tier is full,
// are dropped. Neither Acquire nor Release ever blocks.
//
// # Ownership
//
// A Pool is safe for concurrent use. A Buffer has exactly one owner at a
// time: once released it must not be used again by the releasing code.
//
// A nil *Pool is valid: it never pools and Get always allocates.
package pool
