package lending

import (
	"github.com/libraryops/lending-go/lending/ledger"
)

// Option defines a functional option for configuring a Library.
type Option func(*Library) error

// WithLogger sets the logger for the Library.
// The logger will receive messages at different levels based on the logger's
// configured level:
//
// Debug level: per-operation details such as rejection reasons (development use)
// Info level: committed transactions (production-safe)
// Warn level: non-critical issues like a failed ledger append
// Error level: currently unused, reserved for critical failures.
func WithLogger(logger Logger) Option {
	return func(l *Library) error {
		l.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Library.
// It receives the same messages as the plain logger but with context
// information, enabling automatic trace/span correlation when tracing
// is enabled.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(l *Library) error {
		l.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Library.
// The collector will receive operation counts and durations for borrow and
// return transactions, labeled with the operation and its outcome.
func WithMetrics(collector MetricsCollector) Option {
	return func(l *Library) error {
		l.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Library.
// The collector will receive a span for every borrow and return call,
// carrying the member and book ids and the outcome.
func WithTracing(collector TracingCollector) Option {
	return func(l *Library) error {
		l.tracingCollector = collector
		return nil
	}
}

// WithLedger attaches a transaction journal to the Library.
// Every successful borrow and return is recorded in the ledger after the
// notification is sent. A failed append is logged at warn level and does
// not affect the operation result.
func WithLedger(journal *ledger.Ledger) Option {
	return func(l *Library) error {
		if journal == nil {
			return ledger.ErrNilLedger
		}

		l.ledger = journal

		return nil
	}
}
