package lending

import (
	"context"
	"time"

	"github.com/libraryops/lending-go/lending/ledger"
)

// logDebug logs developer-level details if a logger is configured,
// preferring the contextual logger when both are set.
func (l *Library) logDebug(ctx context.Context, msg string, args ...any) {
	if l.contextualLogger != nil {
		l.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

// logInfo logs operational information if a logger is configured.
func (l *Library) logInfo(ctx context.Context, msg string, args ...any) {
	if l.contextualLogger != nil {
		l.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

// logWarn logs non-critical issues if a logger is configured.
func (l *Library) logWarn(ctx context.Context, msg string, args ...any) {
	if l.contextualLogger != nil {
		l.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}

// startSpan opens a tracing span for a borrow/return operation if a tracing
// collector is configured. It returns the (possibly derived) context and a
// span handle that may be nil.
func (l *Library) startSpan(ctx context.Context, name string, memberID string, bookID string) (context.Context, SpanContext) {
	if l.tracingCollector == nil {
		return ctx, nil
	}

	attrs := map[string]string{
		logAttrMemberID: memberID,
		logAttrBookID:   bookID,
	}

	return l.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishSpan completes a span with the given status and reason, if any.
func (l *Library) finishSpan(span SpanContext, status string, reason string) {
	if l.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{spanAttrStatus: status}
	if reason != "" {
		attrs[spanAttrReason] = reason
	}

	l.tracingCollector.FinishSpan(span, status, attrs)
}

// recordOperationMetrics records the counter and duration for one
// borrow/return call if a metrics collector is configured, using the
// context-aware methods when the collector supports them.
func (l *Library) recordOperationMetrics(ctx context.Context, operation string, status string, duration time.Duration) {
	if l.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrStatus:    status,
	}

	if contextual, ok := l.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricOperationsTotal, labels)
		contextual.RecordDurationContext(ctx, metricOperationDurationSeconds, duration, labels)

		return
	}

	l.metricsCollector.IncrementCounter(metricOperationsTotal, labels)
	l.metricsCollector.RecordDuration(metricOperationDurationSeconds, duration, labels)
}

// recordAvailableBooksGauge publishes the current number of available books
// if a metrics collector is configured.
func (l *Library) recordAvailableBooksGauge(ctx context.Context) {
	if l.metricsCollector == nil {
		return
	}

	value := float64(l.AvailableBookCount())

	if contextual, ok := l.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metricAvailableBooks, value, nil)
		return
	}

	l.metricsCollector.RecordValue(metricAvailableBooks, value, nil)
}

// recordTransaction appends the event to the ledger if one is attached.
// The transaction is already committed at this point, so a failed append
// only produces a warning.
func (l *Library) recordTransaction(ctx context.Context, event ledger.DomainEvent) {
	if l.ledger == nil {
		return
	}

	if err := l.ledger.Record(event); err != nil {
		l.logWarn(ctx, logMsgLedgerAppendFailed, logAttrError, err.Error())
	}
}

// reject finishes the observability of a rejected operation: debug log,
// rejection metrics, and span completion with the rejection reason.
func (l *Library) reject(
	ctx context.Context,
	span SpanContext,
	operation string,
	reason string,
	start time.Time,
	memberID string,
	bookID string,
) {
	l.logDebug(ctx, logMsgOperationRejected,
		spanAttrOperation, operation,
		logAttrReason, reason,
		logAttrMemberID, memberID,
		logAttrBookID, bookID,
	)
	l.recordOperationMetrics(ctx, operation, statusRejected, time.Since(start))
	l.finishSpan(span, statusRejected, reason)
}

// commit finishes the observability of a successful operation.
func (l *Library) commit(ctx context.Context, span SpanContext, operation string, start time.Time) {
	l.recordOperationMetrics(ctx, operation, statusSuccess, time.Since(start))
	l.recordAvailableBooksGauge(ctx)
	l.finishSpan(span, statusSuccess, "")
}
