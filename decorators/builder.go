package decorators

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/cachekit/cache"
)

// Option configures a chain assembled by Build.
type Option interface {
	apply(*builder)
}

type optionFunc func(*builder)

func (f optionFunc) apply(b *builder) { f(b) }

type evictionPolicy int

const (
	evictNone evictionPolicy = iota
	evictLRU
	evictFIFO
)

type builder struct {
	eviction   evictionPolicy
	limit      int
	scheduled  bool
	interval   time.Duration
	serialized bool
	logged     bool
	logger     *slog.Logger
	metrics    bool
	meter      metric.Meter
	synced     bool
	blocking   bool
	timeout    time.Duration
}

// WithLRU adds recency-based eviction bounded to limit keys. A non-positive
// limit keeps the default bound.
func WithLRU(limit int) Option {
	return optionFunc(func(b *builder) {
		b.eviction = evictLRU
		b.limit = limit
	})
}

// WithFIFO adds insertion-order eviction bounded to limit keys. A
// non-positive limit keeps the default bound.
func WithFIFO(limit int) Option {
	return optionFunc(func(b *builder) {
		b.eviction = evictFIFO
		b.limit = limit
	})
}

// WithScheduled adds an interval flush. A non-positive interval keeps
// DefaultFlushInterval.
func WithScheduled(interval time.Duration) Option {
	return optionFunc(func(b *builder) {
		b.scheduled = true
		b.interval = interval
	})
}

// WithSerialized adds gob value isolation.
func WithSerialized() Option {
	return optionFunc(func(b *builder) { b.serialized = true })
}

// WithLogged adds hit-ratio debug logging. A nil logger uses slog.Default.
func WithLogged(log *slog.Logger) Option {
	return optionFunc(func(b *builder) {
		b.logged = true
		b.logger = log
	})
}

// WithMetrics adds OpenTelemetry operation counters. A nil meter uses the
// global meter provider.
func WithMetrics(meter metric.Meter) Option {
	return optionFunc(func(b *builder) {
		b.metrics = true
		b.meter = meter
	})
}

// WithSynced adds mutual exclusion around the chain built so far. Required
// for concurrent use of any chain containing eviction, scheduled, serialized
// or logged decorators.
func WithSynced() Option {
	return optionFunc(func(b *builder) { b.synced = true })
}

// WithBlocking adds miss-stampede protection as the outermost decorator. A
// zero timeout waits indefinitely for key locks.
func WithBlocking(timeout time.Duration) Option {
	return optionFunc(func(b *builder) {
		b.blocking = true
		b.timeout = timeout
	})
}

// Build assembles a standard chain over a fresh base store. Decorators wrap
// in a fixed order regardless of option order, innermost first:
//
//	base store, eviction, scheduled, serialized, logged, metrics, synced,
//	blocking
//
// so mutual exclusion covers everything below it and stampede protection
// sits outermost. Build with no options returns the bare base store.
func Build(id string, opts ...Option) (cache.Cache, error) {
	var b builder
	for _, opt := range opts {
		opt.apply(&b)
	}

	c := cache.Cache(cache.NewMemory(id))

	switch b.eviction {
	case evictLRU:
		lru := NewLRU(c)
		if b.limit > 0 {
			lru.SetLimit(b.limit)
		}
		c = lru
	case evictFIFO:
		fifo := NewFIFO(c)
		if b.limit > 0 {
			fifo.SetLimit(b.limit)
		}
		c = fifo
	}

	if b.scheduled {
		s := NewScheduled(c)
		if b.interval > 0 {
			s.SetInterval(b.interval)
		}
		c = s
	}

	if b.serialized {
		c = NewSerialized(c)
	}

	if b.logged {
		c = NewLogged(c, b.logger)
	}

	if b.metrics {
		m, err := NewMetrics(c, b.meter)
		if err != nil {
			return nil, err
		}
		c = m
	}

	if b.synced {
		c = NewSynced(c)
	}

	if b.blocking {
		bl := NewBlocking(c)
		bl.SetTimeout(b.timeout)
		c = bl
	}

	return c, nil
}
