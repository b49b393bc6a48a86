package pool

import "github.com/prometheus/client_golang/prometheus"

// TierStats reports the state of a single tier.
type TierStats struct {
	Tier     Tier
	Size     int
	Slots    int
	Resident int
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Hits   int64
	Misses int64
	Drops  int64
	Tiers  []TierStats
}

// Stats returns a snapshot of the pool counters. Counters are read
// independently, so a snapshot taken under concurrent use may not be
// consistent across fields.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	s := Stats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Drops:  p.drops.Load(),
	}
	for _, t := range Tiers() {
		s.Tiers = append(s.Tiers, TierStats{
			Tier:     t,
			Size:     p.Size(t),
			Slots:    p.Slots(t),
			Resident: p.Resident(t),
		})
	}
	return s
}

type collector struct {
	p        *Pool
	hits     *prometheus.Desc
	misses   *prometheus.Desc
	drops    *prometheus.Desc
	resident *prometheus.Desc
	slots    *prometheus.Desc
}

// NewCollector exposes the counters of p as prometheus metrics.
func NewCollector(p *Pool) prometheus.Collector {
	return &collector{
		p: p,
		hits: prometheus.NewDesc("jv_pool_hits_total",
			"Buffers served from the pool.", nil, nil),
		misses: prometheus.NewDesc("jv_pool_misses_total",
			"Acquire calls which found every candidate tier empty.", nil, nil),
		drops: prometheus.NewDesc("jv_pool_drops_total",
			"Released buffers which could not be pooled.", nil, nil),
		resident: prometheus.NewDesc("jv_pool_resident_buffers",
			"Buffers currently held by a tier.", []string{"tier"}, nil),
		slots: prometheus.NewDesc("jv_pool_slots",
			"Configured buffers per tier.", []string{"tier"}, nil),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.drops
	ch <- c.resident
	ch <- c.slots
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.p.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.drops, prometheus.CounterValue, float64(s.Drops))
	for _, ts := range s.Tiers {
		ch <- prometheus.MustNewConstMetric(c.resident, prometheus.GaugeValue, float64(ts.Resident), ts.Tier.String())
		ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(ts.Slots), ts.Tier.String())
	}
}
