package slotgo

import (
	"log/slog"
)

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Map and FastMap construction.
type Option func(*options)

// WithCapacity pre-sizes the container for n elements.
//
// The dense array and the slot table are both allocated up front, so the
// first n adds never reallocate. Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slotgo.BasicMetricsCollector{}
//	m := slotgo.New[string](slotgo.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, stale rejections: %d\n", stats.AddCount, stats.StaleRejected)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := slotgo.NewJSONLogger(slog.LevelDebug)
//	m := slotgo.New[string](slotgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
