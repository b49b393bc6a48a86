package stream

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/token"
)

func writeDoc(e *Encoder) error {
	steps := []func() error{
		e.BeginObject,
		func() error { return e.WriteKey("a") },
		func() error { return e.WriteNumber("1") },
		func() error { return e.WriteKey("b") },
		e.BeginArray,
		func() error { return e.WriteNumber("1") },
		func() error { return e.WriteBool(false) },
		e.EndArray,
		func() error { return e.WriteKey("c") },
		e.BeginObject,
		e.EndObject,
		func() error { return e.WriteKey("d") },
		e.WriteNull,
		e.EndObject,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func TestEncoderCompact(t *testing.T) {
	var out bytes.Buffer
	enc := NewEncoder(&out)
	if err := writeDoc(enc); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[1,false],"c":{},"d":null}`
	if out.String() != want {
		t.Errorf("got %s, want %s", out.String(), want)
	}
	if enc.Offset() != int64(len(want)) {
		t.Errorf("offset %d, want %d", enc.Offset(), len(want))
	}
}

func TestEncoderIndent(t *testing.T) {
	var out bytes.Buffer
	enc := NewEncoder(&out, WithIndent(2))
	if err := writeDoc(enc); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": 1,
  "b": [
    1,
    false
  ],
  "c": {},
  "d": null
}`
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}
}

func TestEncoderASCII(t *testing.T) {
	var out bytes.Buffer
	enc := NewEncoder(&out, WithASCII())
	enc.BeginArray()
	enc.WriteString("\U0001F600\x01é")
	enc.EndArray()
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	want := `["\ud83d\ude00\u0001\u00e9"]`
	if out.String() != want {
		t.Errorf("got %s, want %s", out.String(), want)
	}
}

// chunkReader returns at most n bytes per Read.
type chunkReader struct {
	r *strings.Reader
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

func TestEncoderStreams(t *testing.T) {
	p, err := pool.New(pool.Config{
		Small:  pool.TierConfig{Size: 16, Slots: 2},
		Medium: pool.TierConfig{Size: 64, Slots: 2},
		Large:  pool.TierConfig{Size: 256, Slots: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	text := strings.Repeat("\u00e9</>\U0001F600\n", 200)
	payload := strings.Repeat("\x00\x01binary\xff", 300)

	var out bytes.Buffer
	enc := NewEncoder(&out, WithPool(p), WithFlushSize(32), WithASCII())
	enc.BeginObject()
	enc.WriteKey("text")
	if err := enc.WriteStringFrom(&chunkReader{strings.NewReader(text), 7}); err != nil {
		t.Fatal(err)
	}
	enc.WriteKey("bin")
	if err := enc.WriteBinaryFrom(&chunkReader{strings.NewReader(payload), 5}); err != nil {
		t.Fatal(err)
	}
	enc.EndObject()
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer
	want.WriteString(`{"text":`)
	want.WriteString(token.Quote(text, true))
	want.WriteString(`,"bin":"`)
	want.WriteString(base64.StdEncoding.EncodeToString([]byte(payload)))
	want.WriteString(`"}`)
	if out.String() != want.String() {
		t.Errorf("streamed output differs:\ngot  %.120s...\nwant %.120s...", out.String(), want.String())
	}
	if st := p.Stats(); st.Hits == 0 {
		t.Errorf("pool was not used: %+v", st)
	}
}

func TestEncoderStructureErrors(t *testing.T) {
	var out bytes.Buffer
	enc := NewEncoder(&out)
	enc.BeginArray()
	if err := enc.WriteKey("k"); !errors.Is(err, ErrStructure) {
		t.Errorf("key in array: %v", err)
	}
	enc.EndArray()
	if err := enc.WriteNull(); !errors.Is(err, ErrStructure) {
		t.Errorf("value after document: %v", err)
	}

	enc.Reset(&out)
	out.Reset()
	enc.BeginObject()
	if err := enc.WriteString("v"); !errors.Is(err, ErrStructure) {
		t.Errorf("value without key: %v", err)
	}
	if err := enc.EndArray(); !errors.Is(err, ErrStructure) {
		t.Errorf("mismatched end: %v", err)
	}
	if err := enc.Close(); !errors.Is(err, ErrStructure) {
		t.Errorf("incomplete close: %v", err)
	}
}

func TestCopyNormalizes(t *testing.T) {
	var out bytes.Buffer
	enc := NewEncoder(&out)
	dec := NewDecoder(strings.NewReader("{a = 'x\\'y'; b => [1, 0x10, TRUE,],}"))
	if _, err := Copy(enc, dec); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	want := `{"a":"x'y","b":[1,16,true]}`
	if out.String() != want {
		t.Errorf("got %s, want %s", out.String(), want)
	}
}
