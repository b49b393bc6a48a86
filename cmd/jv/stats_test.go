package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jvkit/jv/diff"
	"github.com/jvkit/jv/format"
	"github.com/jvkit/jv/parse"
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/value"
)

func TestExercise(t *testing.T) {
	p, err := pool.New(pool.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	v, err := parse.ParseString(`{"a":[1,2,{"b":"c"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	n, err := exercise(p, v)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(`{"a":[1,2,{"b":"c"}]}`)) {
		t.Errorf("got %d bytes", n)
	}
	s, err := poolStats(p.Stats())
	if err != nil {
		t.Fatal(err)
	}
	o := s.(*value.Object)
	if got := o.OptInt64("misses", -1); got != 0 {
		t.Errorf("misses: got %d", got)
	}
	tiers, err := o.GetArray("tiers")
	if err != nil {
		t.Fatal(err)
	}
	if tiers.Len() != 3 {
		t.Errorf("got %d tiers", tiers.Len())
	}
}

func TestGatherMetrics(t *testing.T) {
	p, err := pool.New(pool.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m, err := gatherMetrics(p)
	if err != nil {
		t.Fatal(err)
	}
	o := m.(*value.Object)
	want := map[string]float64{
		`jv_pool_slots{tier="small"}`:  128,
		`jv_pool_slots{tier="medium"}`: 32,
		`jv_pool_slots{tier="large"}`:  8,
		`jv_pool_hits_total`:           0,
	}
	got := map[string]float64{}
	for k := range want {
		f, err := o.GetFloat64(k)
		if err != nil {
			t.Errorf("%s: %v", k, err)
			continue
		}
		got[k] = f
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("metrics (-want +got):\n%s", d)
	}
}

func TestWriteChange(t *testing.T) {
	a, _ := parse.ParseString(`{"a":1,"b":[true]}`)
	b, _ := parse.ParseString(`{"a":2,"c":null}`)
	buf := &bytes.Buffer{}
	for _, c := range diff.Paths(a, b) {
		if err := writeChange(buf, c); err != nil {
			t.Fatal(err)
		}
	}
	want := "~ $.a: 1 -> 2\n- $.b: [true]\n+ $.c: null\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	got := []format.Format{cfg.inFormat("a.yml"), cfg.inFormat("b.bson"), cfg.inFormat("-"), cfg.inFormat("c")}
	want := []format.Format{format.YAMLFormat, format.BSONFormat, format.JSONFormat, format.JSONFormat}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	j := format.JSONFormat
	cfg.InFormat = &j
	if f := cfg.inFormat("a.yml"); f != format.JSONFormat {
		t.Errorf("-I ignored: %v", f)
	}
}
