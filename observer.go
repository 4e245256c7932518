package slotgo

import (
	"math/bits"

	"github.com/hupe1980/slotgo/internal/dense"
)

// observer fans container events out to the configured logger and metrics
// collector. The zero value drops every event, which keeps the zero value of
// Map and FastMap usable.
type observer struct {
	metrics MetricsCollector
	logger  *Logger
}

func newObserver(o options) observer {
	return observer{metrics: o.metricsCollector, logger: o.logger}
}

func (ob observer) added(reused bool, slots, live int) {
	if ob.metrics != nil {
		ob.metrics.RecordAdd(reused)
	}
	if ob.logger != nil && !reused && bits.OnesCount(uint(slots)) == 1 {
		ob.logger.LogGrow(slots, live)
	}
}

func (ob observer) looked(st dense.Status) {
	if ob.metrics != nil {
		ob.metrics.RecordLookup(st == dense.Live)
	}
}

func (ob observer) removed(st dense.Status) {
	if ob.metrics != nil {
		ob.metrics.RecordRemove(st == dense.Live)
	}
}

func (ob observer) stale(h Handle, current uint32) {
	if ob.metrics != nil {
		ob.metrics.RecordStale()
	}
	if ob.logger != nil {
		ob.logger.LogStale(h, current)
	}
}

func (ob observer) corrupted(err error) {
	if ob.logger != nil {
		ob.logger.LogCorrupted(err)
	}
}
