package bench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives per-phase measurements from Run.
type MetricsCollector interface {
	// RecordAdd is called after a store was populated.
	RecordAdd(kind Kind, ops int, duration time.Duration)

	// RecordRead is called after the read phase; hits is the number of
	// lookups that found a value.
	RecordRead(kind Kind, ops, hits int, duration time.Duration)

	// RecordScenario is called once per store with the final error state.
	RecordScenario(kind Kind, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(Kind, int, time.Duration)       {}
func (NoopMetricsCollector) RecordRead(Kind, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordScenario(Kind, error)               {}

// BasicMetricsCollector aggregates counters across all scenarios.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	AddOps         atomic.Int64
	AddTotalNanos  atomic.Int64
	ReadOps        atomic.Int64
	ReadHits       atomic.Int64
	ReadTotalNanos atomic.Int64
	Scenarios      atomic.Int64
	Failures       atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ Kind, ops int, duration time.Duration) {
	b.AddOps.Add(int64(ops))
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(_ Kind, ops, hits int, duration time.Duration) {
	b.ReadOps.Add(int64(ops))
	b.ReadHits.Add(int64(hits))
	b.ReadTotalNanos.Add(duration.Nanoseconds())
}

// RecordScenario implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScenario(_ Kind, err error) {
	b.Scenarios.Add(1)
	if err != nil {
		b.Failures.Add(1)
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	AddOps       int64
	AddAvgNanos  int64
	ReadOps      int64
	ReadHits     int64
	ReadAvgNanos int64
	Scenarios    int64
	Failures     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddOps:       b.AddOps.Load(),
		AddAvgNanos:  avg(b.AddTotalNanos.Load(), b.AddOps.Load()),
		ReadOps:      b.ReadOps.Load(),
		ReadHits:     b.ReadHits.Load(),
		ReadAvgNanos: avg(b.ReadTotalNanos.Load(), b.ReadOps.Load()),
		Scenarios:    b.Scenarios.Load(),
		Failures:     b.Failures.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
