package pool

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/jvkit/jv/debug"
)

// Tier identifies one of the size classes of a Pool.
type Tier int

const (
	Small Tier = iota
	Medium
	Large

	numTiers = 3
)

func (t Tier) String() string {
	switch t {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "<unknown tier>"
	}
}

// Tiers returns all tiers from smallest to largest.
func Tiers() []Tier {
	return []Tier{Small, Medium, Large}
}

type tier struct {
	size  int
	slots int
	once  sync.Once
	q     chan *Buffer
}

func (t *tier) init() {
	t.once.Do(func() {
		for range t.slots {
			select {
			case t.q <- NewBuffer(t.size):
			default:
				return
			}
		}
	})
}

// Pool is a tiered pool of Buffers. See the package documentation.
type Pool struct {
	tiers  [numTiers]*tier
	hits   atomic.Int64
	misses atomic.Int64
	drops  atomic.Int64
	log    *slog.Logger
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) { p.log = l }
}

// New creates a pool from cfg.
func New(cfg Config, opts ...Option) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{log: debug.Logger()}
	for i, tc := range cfg.tiers() {
		p.tiers[i] = &tier{
			size:  tc.Size,
			slots: tc.Slots,
			q:     make(chan *Buffer, tc.Slots),
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Acquire returns a pooled buffer with capacity at least sizeHint, or nil
// when no tier that could serve the request has a buffer available.
func (p *Pool) Acquire(sizeHint int) *Buffer {
	if p == nil {
		return nil
	}
	for i := p.tierFor(sizeHint); i < numTiers; i++ {
		t := p.tiers[i]
		t.init()
		select {
		case b := <-t.q:
			p.hits.Inc()
			return b
		default:
		}
	}
	n := p.misses.Inc()
	if debug.Pool() {
		p.log.Info("pool miss", "hint", sizeHint, "misses", n)
	}
	return nil
}

// Get is Acquire falling back to an unpooled buffer of sizeHint bytes.
func (p *Pool) Get(sizeHint int) *Buffer {
	if b := p.Acquire(sizeHint); b != nil {
		return b
	}
	return NewBuffer(sizeHint)
}

// Release resets b and returns it to the tier matching its capacity.
func (p *Pool) Release(b *Buffer) {
	if b == nil {
		return
	}
	b.Reset()
	if p == nil {
		return
	}
	for _, t := range p.tiers {
		if t.size != b.Cap() {
			continue
		}
		t.init()
		select {
		case t.q <- b:
			return
		default:
		}
		break
	}
	p.drops.Inc()
	if debug.Pool() {
		p.log.Info("pool drop", "cap", b.Cap())
	}
}

// Size returns the buffer size of tier t.
func (p *Pool) Size(t Tier) int {
	return p.tiers[t].size
}

// Slots returns the configured number of buffers of tier t.
func (p *Pool) Slots(t Tier) int {
	return p.tiers[t].slots
}

// Resident returns the number of buffers currently held by tier t.
func (p *Pool) Resident(t Tier) int {
	return len(p.tiers[t].q)
}

func (p *Pool) tierFor(sizeHint int) int {
	for i, t := range p.tiers {
		if t.size >= sizeHint {
			return i
		}
	}
	return numTiers
}
