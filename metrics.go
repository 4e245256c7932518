package slotgo

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Every method is called synchronously on the container's hot path, so
// implementations should do no more than bump counters.
type MetricsCollector interface {
	// RecordAdd is called after each add. reused reports whether a freed
	// slot was recycled instead of growing the slot table.
	RecordAdd(reused bool)

	// RecordRemove is called after each remove. found is false when the
	// handle did not resolve.
	RecordRemove(found bool)

	// RecordLookup is called after each get.
	RecordLookup(found bool)

	// RecordStale is called when a handle is rejected because its slot has
	// been reoccupied by a newer generation.
	RecordStale()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)    {}
func (NoopMetricsCollector) RecordRemove(bool) {}
func (NoopMetricsCollector) RecordLookup(bool) {}
func (NoopMetricsCollector) RecordStale()      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount      atomic.Int64
	AddReused     atomic.Int64
	RemoveCount   atomic.Int64
	RemoveMisses  atomic.Int64
	LookupCount   atomic.Int64
	LookupMisses  atomic.Int64
	StaleRejected atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(reused bool) {
	b.AddCount.Add(1)
	if reused {
		b.AddReused.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	b.RemoveCount.Add(1)
	if !found {
		b.RemoveMisses.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(found bool) {
	b.LookupCount.Add(1)
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordStale implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStale() {
	b.StaleRejected.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:      b.AddCount.Load(),
		AddReused:     b.AddReused.Load(),
		RemoveCount:   b.RemoveCount.Load(),
		RemoveMisses:  b.RemoveMisses.Load(),
		LookupCount:   b.LookupCount.Load(),
		LookupMisses:  b.LookupMisses.Load(),
		StaleRejected: b.StaleRejected.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount      int64
	AddReused     int64
	RemoveCount   int64
	RemoveMisses  int64
	LookupCount   int64
	LookupMisses  int64
	StaleRejected int64
}
