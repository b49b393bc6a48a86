package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jvkit/jv/encode"
	"github.com/jvkit/jv/lazy"
	"github.com/jvkit/jv/pool"
	"github.com/jvkit/jv/value"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/scott-cotton/cli"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs := value.NewObject()
	for _, arg := range inputs(args) {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		n, err := exercise(cfg.pool, v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		theLog.Debug("encoded", "file", arg, "bytes", n)
		if err := docs.Put(arg, value.Int64(n)); err != nil {
			return err
		}
	}
	var res value.Value
	if cfg.Metrics {
		res, err = gatherMetrics(cfg.pool)
	} else {
		res, err = poolStats(cfg.pool.Stats())
	}
	if err != nil {
		return err
	}
	out := value.NewObject()
	out.Put("bytes", docs)
	out.Put("pool", res)
	return writeValue(cfg.MainConfig, cc.Out, out)
}

// exercise runs v through both the encoder and the lazy reader.
func exercise(p *pool.Pool, v value.Value) (int64, error) {
	if err := encode.Encode(v, io.Discard, encode.WithPool(p)); err != nil {
		return 0, err
	}
	r := lazy.NewReader(v, lazy.WithPool(p))
	defer r.Close()
	return io.Copy(io.Discard, r)
}

func poolStats(s pool.Stats) (value.Value, error) {
	o := value.NewObject()
	o.Put("hits", value.Int64(s.Hits))
	o.Put("misses", value.Int64(s.Misses))
	o.Put("drops", value.Int64(s.Drops))
	tiers := value.NewArray()
	for _, ts := range s.Tiers {
		t := value.NewObject()
		t.Put("tier", value.String(ts.Tier.String()))
		t.Put("size", value.Int(ts.Size))
		t.Put("slots", value.Int(ts.Slots))
		t.Put("resident", value.Int(ts.Resident))
		tiers.Add(t)
	}
	return o, o.Put("tiers", tiers)
}

func gatherMetrics(p *pool.Pool) (value.Value, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(pool.NewCollector(p)); err != nil {
		return nil, err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return nil, err
	}
	o := value.NewObject()
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if ls := m.GetLabel(); len(ls) != 0 {
				parts := make([]string, 0, len(ls))
				for _, l := range ls {
					parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
				}
				name += "{" + strings.Join(parts, ",") + "}"
			}
			x := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				x = g.GetValue()
			}
			if err := o.Put(name, value.Float(x)); err != nil {
				return nil, err
			}
		}
	}
	return o, nil
}
