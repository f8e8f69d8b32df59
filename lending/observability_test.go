package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryops/lending-go/lending"
	"github.com/libraryops/lending-go/lending/notifieradapters"
)

func Test_WithLogger_LogsCommittedTransactions(t *testing.T) {
	// arrange
	logger := &fakeLogger{}
	library := givenObservedLibrary(t, lending.WithLogger(logger))

	// act
	require.True(t, library.BorrowBook(context.Background(), "M001", "B001"))

	// assert
	require.NotEmpty(t, logger.infoMessages)
	assert.Contains(t, logger.infoMessages, "lending: book borrowed")
}

func Test_WithLogger_LogsRejectionsAtDebug(t *testing.T) {
	// arrange
	logger := &fakeLogger{}
	library := givenObservedLibrary(t, lending.WithLogger(logger))

	// act
	require.False(t, library.BorrowBook(context.Background(), "M001", "INVALID"))

	// assert
	assert.Contains(t, logger.debugMessages, "lending: operation rejected")
	assert.NotContains(t, logger.infoMessages, "lending: book borrowed")
}

func Test_WithContextualLogger_TakesPrecedenceOverPlainLogger(t *testing.T) {
	// arrange
	plain := &fakeLogger{}
	contextual := &fakeContextualLogger{}
	library := givenObservedLibrary(t, lending.WithLogger(plain), lending.WithContextualLogger(contextual))

	// act
	require.True(t, library.BorrowBook(context.Background(), "M001", "B001"))

	// assert
	assert.Contains(t, contextual.infoMessages, "lending: book borrowed")
	assert.Empty(t, plain.infoMessages, "The contextual logger is preferred when both are configured")
}

func Test_WithMetrics_RecordsOperationOutcomes(t *testing.T) {
	// arrange
	metrics := newFakeMetrics()
	library := givenObservedLibrary(t, lending.WithMetrics(metrics))

	// act
	require.True(t, library.BorrowBook(context.Background(), "M001", "B001"))
	require.False(t, library.BorrowBook(context.Background(), "M002", "B001"))
	require.True(t, library.ReturnBook(context.Background(), "M001", "B001"))

	// assert
	assert.Equal(t, 1, metrics.counter("lending_operations_total", "borrow_book", "success"))
	assert.Equal(t, 1, metrics.counter("lending_operations_total", "borrow_book", "rejected"))
	assert.Equal(t, 1, metrics.counter("lending_operations_total", "return_book", "success"))
	assert.NotEmpty(t, metrics.durations, "Operation durations should be recorded")
	assert.NotEmpty(t, metrics.values, "The available-books gauge should be recorded")
}

func Test_WithTracing_EmitsOneSpanPerOperation(t *testing.T) {
	// arrange
	tracing := &fakeTracing{}
	library := givenObservedLibrary(t, lending.WithTracing(tracing))

	// act
	require.True(t, library.BorrowBook(context.Background(), "M001", "B001"))
	require.False(t, library.ReturnBook(context.Background(), "M002", "B001"))

	// assert
	require.Len(t, tracing.finished, 2)

	borrowSpan := tracing.finished[0]
	assert.Equal(t, "lending.borrow_book", borrowSpan.name)
	assert.Equal(t, "success", borrowSpan.status)
	assert.Equal(t, "M001", borrowSpan.startAttrs["member_id"])
	assert.Equal(t, "B001", borrowSpan.startAttrs["book_id"])

	returnSpan := tracing.finished[1]
	assert.Equal(t, "lending.return_book", returnSpan.name)
	assert.Equal(t, "rejected", returnSpan.status)
	assert.Equal(t, "member does not hold this book", returnSpan.finishAttrs["reason"])
}

// givenObservedLibrary builds a seeded Library with the given observability options.
func givenObservedLibrary(t *testing.T, opts ...lending.Option) *lending.Library {
	t.Helper()

	library, err := lending.NewLibrary(notifieradapters.NewRecordingNotifier(), opts...)
	require.NoError(t, err, "error in arranging test data")

	seedLibrary(t, library)

	return library
}

// Fake observability implementations for verification.

type fakeLogger struct {
	debugMessages []string
	infoMessages  []string
	warnMessages  []string
	errorMessages []string
}

func (l *fakeLogger) Debug(msg string, _ ...any) { l.debugMessages = append(l.debugMessages, msg) }
func (l *fakeLogger) Info(msg string, _ ...any)  { l.infoMessages = append(l.infoMessages, msg) }
func (l *fakeLogger) Warn(msg string, _ ...any)  { l.warnMessages = append(l.warnMessages, msg) }
func (l *fakeLogger) Error(msg string, _ ...any) { l.errorMessages = append(l.errorMessages, msg) }

type fakeContextualLogger struct {
	debugMessages []string
	infoMessages  []string
}

func (l *fakeContextualLogger) DebugContext(_ context.Context, msg string, _ ...any) {
	l.debugMessages = append(l.debugMessages, msg)
}

func (l *fakeContextualLogger) InfoContext(_ context.Context, msg string, _ ...any) {
	l.infoMessages = append(l.infoMessages, msg)
}

func (l *fakeContextualLogger) WarnContext(_ context.Context, msg string, _ ...any) {}

func (l *fakeContextualLogger) ErrorContext(_ context.Context, msg string, _ ...any) {}

type fakeMetrics struct {
	counters  map[string]int
	durations []time.Duration
	values    []float64
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{counters: make(map[string]int)}
}

func (m *fakeMetrics) counterKey(metric string, labels map[string]string) string {
	return metric + "|" + labels["operation"] + "|" + labels["status"]
}

func (m *fakeMetrics) counter(metric, operation, status string) int {
	return m.counters[metric+"|"+operation+"|"+status]
}

func (m *fakeMetrics) RecordDuration(_ string, duration time.Duration, _ map[string]string) {
	m.durations = append(m.durations, duration)
}

func (m *fakeMetrics) IncrementCounter(metric string, labels map[string]string) {
	m.counters[m.counterKey(metric, labels)]++
}

func (m *fakeMetrics) RecordValue(_ string, value float64, _ map[string]string) {
	m.values = append(m.values, value)
}

type fakeSpan struct {
	name        string
	status      string
	startAttrs  map[string]string
	finishAttrs map[string]string
}

func (s *fakeSpan) SetStatus(status string)        { s.status = status }
func (s *fakeSpan) AddAttribute(key, value string) { s.finishAttrs[key] = value }

type fakeTracing struct {
	finished []*fakeSpan
}

func (f *fakeTracing) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, lending.SpanContext) {
	return ctx, &fakeSpan{name: name, startAttrs: attrs, finishAttrs: map[string]string{}}
}

func (f *fakeTracing) FinishSpan(spanCtx lending.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*fakeSpan)
	if !ok {
		return
	}

	span.status = status
	for key, value := range attrs {
		span.finishAttrs[key] = value
	}

	f.finished = append(f.finished, span)
}
