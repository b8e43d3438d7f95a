package decorators

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/cachekit/cache"
)

// meterName identifies this library to the meter provider.
const meterName = "github.com/jonwraymond/cachekit"

// Metrics records OpenTelemetry counters for every operation on the chain
// below it, attributed with the cache id. The decorator only records through
// the supplied metric.Meter; exporter setup belongs to the host application.
type Metrics struct {
	delegate cache.Cache
	puts     metric.Int64Counter
	hits     metric.Int64Counter
	misses   metric.Int64Counter
	removals metric.Int64Counter
	clears   metric.Int64Counter
	attrs    metric.MeasurementOption
}

// NewMetrics wraps delegate with operation counters. A nil meter uses the
// global meter provider.
func NewMetrics(delegate cache.Cache, meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(meterName)
	}

	puts, err := meter.Int64Counter(
		"cache.puts",
		metric.WithDescription("Total number of cache puts"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	hits, err := meter.Int64Counter(
		"cache.hits",
		metric.WithDescription("Total number of cache gets that found a value"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"cache.misses",
		metric.WithDescription("Total number of cache gets that missed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	removals, err := meter.Int64Counter(
		"cache.removals",
		metric.WithDescription("Total number of cache removals"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	clears, err := meter.Int64Counter(
		"cache.clears",
		metric.WithDescription("Total number of cache clears"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		delegate: delegate,
		puts:     puts,
		hits:     hits,
		misses:   misses,
		removals: removals,
		clears:   clears,
		attrs:    metric.WithAttributes(attribute.String("cache.id", delegate.ID())),
	}, nil
}

// ID returns the delegate's identifier.
func (c *Metrics) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *Metrics) Size() int {
	return c.delegate.Size()
}

// Put counts the store and forwards it.
func (c *Metrics) Put(ctx context.Context, key, value any) error {
	c.puts.Add(ctx, 1, c.attrs)
	return c.delegate.Put(ctx, key, value)
}

// Get forwards the read and counts it as a hit or a miss. Failed reads are
// counted as neither.
func (c *Metrics) Get(ctx context.Context, key any) (any, bool, error) {
	value, ok, err := c.delegate.Get(ctx, key)
	if err != nil {
		return value, ok, err
	}
	if ok {
		c.hits.Add(ctx, 1, c.attrs)
	} else {
		c.misses.Add(ctx, 1, c.attrs)
	}
	return value, ok, nil
}

// Remove counts the removal and forwards it.
func (c *Metrics) Remove(ctx context.Context, key any) (any, bool, error) {
	c.removals.Add(ctx, 1, c.attrs)
	return c.delegate.Remove(ctx, key)
}

// Clear counts the clear and forwards it.
func (c *Metrics) Clear() error {
	c.clears.Add(context.Background(), 1, c.attrs)
	return c.delegate.Clear()
}

// Ensure Metrics implements Cache
var _ cache.Cache = (*Metrics)(nil)
