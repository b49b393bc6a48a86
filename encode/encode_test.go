package encode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/value"
)

func sample() *value.Object {
	o := value.NewObject()
	o.Put("a", value.Int(1))
	o.Put("b", value.NewArray(value.Int(1), value.Int(2), value.Int(3)))
	return o
}

func TestCompact(t *testing.T) {
	in := `{"a":1,"b":[1,2,3]}`
	v, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := String(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("got %s, want %s", got, in)
	}
	if s := MustString(sample()); s != in {
		t.Errorf("built tree: got %s", s)
	}
}

func TestEscapes(t *testing.T) {
	o := value.NewObject()
	o.Put("s", value.String("\U0001F600\x01"))
	got, err := String(o, ASCII())
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"s":"\ud83d\ude00\u0001"}`; got != want {
		t.Errorf("ascii: got %s, want %s", got, want)
	}
	got = MustString(o)
	if want := "{\"s\":\"\U0001F600\\u0001\"}"; got != want {
		t.Errorf("utf-8: got %s, want %s", got, want)
	}

	o.Put("s", value.String("</script>\u2028"))
	if got, want := MustString(o), `{"s":"<\/script>\u2028"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPretty(t *testing.T) {
	o := sample()
	o.Put("c", value.NewObject())
	o.Put("d", value.Null)
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    1,`,
		`    2,`,
		`    3`,
		`  ],`,
		`  "c": {},`,
		`  "d": null`,
		`}`,
	}, "\n")
	got, err := String(o, Indent(2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNumbers(t *testing.T) {
	a := value.NewArray(
		value.Int(-7),
		value.Int64(1<<40),
		value.Float(1.5),
		value.Float(math.NaN()),
		value.Float(math.Inf(1)),
		value.Float(1e300),
	)
	n, _ := value.ParseNumber("123456789012345678901234567890.000")
	a.Add(n)
	got := MustString(a)
	if want := `[-7,1099511627776,1.5,null,null,1e+300,123456789012345678901234567890]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !jsoniter.ConfigCompatibleWithStandardLibrary.Valid([]byte(got)) {
		t.Errorf("invalid JSON %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	in := `{"k":"v\"\n\t","n":null,"t":true,"f":false,"x":[{},[],{"y":[0.25,-3]}],"u":"\u00e9"}`
	v, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	for _, opts := range [][]EncodeOption{nil, {Indent(4)}, {ASCII()}, {Indent(1), ASCII()}} {
		d, err := Bytes(v, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if !jsoniter.ConfigCompatibleWithStandardLibrary.Valid(d) {
			t.Fatalf("invalid JSON %s", d)
		}
		w, err := parse.ParseBytes(d)
		if err != nil {
			t.Fatal(err)
		}
		if !value.Equal(v, w) {
			t.Errorf("%s did not round trip", d)
		}
	}
}

func TestStreamLeaves(t *testing.T) {
	text := strings.Repeat("ab\"c\u00e9\U0001F600", 5000)
	payload := bytes.Repeat([]byte{0, 1, 2, 0xfe, 0xff}, 40000)
	o := value.NewObject()
	o.Put("text", value.StringFrom(func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(text)), nil
	}))
	o.Put("bin", value.BinaryBytes(payload))

	p, err := pool.New(pool.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, ascii := range []bool{false, true} {
		opts := []EncodeOption{WithPool(p), FlushSize(512)}
		if ascii {
			opts = append(opts, ASCII())
		}
		d, err := Bytes(o, opts...)
		if err != nil {
			t.Fatal(err)
		}
		got, err := jsonparser.GetString(d, "text")
		if err != nil {
			t.Fatal(err)
		}
		if got != text {
			t.Errorf("ascii=%v: streamed text differs", ascii)
		}
		b64, err := jsonparser.GetString(d, "bin")
		if err != nil {
			t.Fatal(err)
		}
		bin, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(bin, payload) {
			t.Errorf("ascii=%v: binary differs", ascii)
		}

		mem := value.NewObject()
		mem.Put("text", value.String(text))
		mem.Put("bin", value.String(base64.StdEncoding.EncodeToString(payload)))
		want, err := Bytes(mem, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(want, d) {
			t.Errorf("ascii=%v: streamed leaves encode differently from in memory ones", ascii)
		}
	}
}

var errBoom = errors.New("boom")

type failWriter struct {
	writeErr, closeErr error
	closed             bool
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return len(p), nil
}

func (w *failWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestEncodeClose(t *testing.T) {
	w := &failWriter{writeErr: errBoom, closeErr: io.ErrClosedPipe}
	if err := EncodeClose(sample(), w); !errors.Is(err, errBoom) {
		t.Errorf("got %v, want the write error", err)
	}
	if !w.closed {
		t.Error("destination not closed after a failed write")
	}
	w = &failWriter{closeErr: io.ErrClosedPipe}
	if err := EncodeClose(sample(), w); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("got %v, want the close error", err)
	}
}

func TestOpenError(t *testing.T) {
	o := value.NewObject()
	o.Put("x", value.BinaryFrom(func() (io.ReadCloser, error) { return nil, errBoom }))
	_, err := String(o)
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, errBoom) {
		t.Errorf("got %v", err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := File(sample(), path, Indent(2)); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := parse.ParseBytes(d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(sample(), v) {
		t.Errorf("file content %s", d)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got, err := String(sample(), Indent(2), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escape sequences in %q", got)
	}
	color.NoColor = true
	got, err = String(sample(), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"a":1,"b":[1,2,3]}`; got != want {
		t.Errorf("colors disabled: got %s", got)
	}
}
