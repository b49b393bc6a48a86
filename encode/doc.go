// Package encode writes value trees as strict JSON text.
//
// # Usage
//
//	o := value.NewObject()
//	o.Put("name", value.String("alice"))
//	o.Put("age", value.Int(30))
//	s, err := encode.String(o)
//
//	// Pretty, ASCII only output to a file
//	err = encode.File(o, "out.json", encode.Indent(2), encode.ASCII())
//
// Streaming leaves (value.StreamString and value.Binary) are copied to the
// destination in chunks and never held in memory as a whole.
//
// # Related Packages
//
//   - github.com/jvkit/jv/value - the tree
//   - github.com/jvkit/jv/stream - the event level encoder used here
//   - github.com/jvkit/jv/lazy - pull based serialization
package encode
