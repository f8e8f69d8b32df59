package notifieradapters

import (
	"context"
	"log/slog"

	"github.com/libraryops/lending-go/lending"
)

// SlogNotifier implements lending.Notifier by writing each notification
// to a structured logger at info level. With an OpenTelemetry slog bridge
// handler the notifications are automatically correlated with the active
// trace.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that logs through the given logger.
// Passing nil uses slog.Default().
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogNotifier{logger: logger}
}

// NewSlogNotifierWithHandler creates a notifier that logs through a logger
// built from the provided slog.Handler.
func NewSlogNotifierWithHandler(handler slog.Handler) *SlogNotifier {
	return &SlogNotifier{logger: slog.New(handler)}
}

// Notify logs the notification with the recipient as an attribute.
func (n *SlogNotifier) Notify(ctx context.Context, recipientID string, message string) {
	n.logger.InfoContext(ctx, "notification sent", "recipient_id", recipientID, "message", message)
}

// Ensure SlogNotifier implements lending.Notifier.
var _ lending.Notifier = (*SlogNotifier)(nil)
