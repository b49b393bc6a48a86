// Package stream provides event based reading and writing of JSON.
//
// # Events
//
// A document is a sequence of [Event]s: BeginObject, Key, BeginArray,
// String, Number, Bool, Null, EndArray and EndObject. Separators are not
// events.
//
// # Decoding
//
// [Decoder] reads permissive JSON text (see package token) and produces
// events, checking that separators and keys are where they belong:
//
//	dec := stream.NewDecoder(r)
//	for {
//		ev, err := dec.ReadEvent()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		// use ev
//	}
//
// The top level value must be an object or an array.
//
// # Encoding
//
// [Encoder] writes strict JSON, compact or indented, optionally ASCII
// only. Output is staged in a growable buffer drawn from a pool and
// flushed to the destination when it passes a threshold.
//
//	enc := stream.NewEncoder(w, stream.WithIndent(2))
//	enc.BeginObject()
//	enc.WriteKey("a")
//	enc.WriteNumber("1")
//	enc.EndObject()
//	err := enc.Close()
//
// String and binary content can be copied from readers without holding
// it all in memory (WriteStringFrom, WriteBinaryFrom).
package stream
