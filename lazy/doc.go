// Package lazy serializes value trees on demand.
//
// A Reader produces the same bytes as compact encode output, but only as
// they are read: it holds one chunk of output at a time, taken from a
// pool when one is given. Containers are walked element by element, and a
// nested container is drained before its parent resumes. Streaming leaves
// (value.StreamString and value.Binary) are opened when reached and
// copied through in pieces, so documents of any size can be served with
// bounded memory.
//
//	r := lazy.NewReader(doc, lazy.WithPool(p))
//	defer r.Close()
//	_, err := io.Copy(w, r)
//
// The tree must not be mutated while a Reader over it is in use.
package lazy
