package notifieradapters

import (
	"context"

	"github.com/libraryops/lending-go/lending"
)

// Notification is one recorded (recipient, message) pair.
type Notification struct {
	RecipientID string
	Message     string
}

// RecordingNotifier implements lending.Notifier by recording every
// notification in arrival order. It is the test double for the Notifier
// capability: tests inspect the recorded pairs to verify that the Library
// notified exactly once per successful transaction and never on a
// rejected one.
//
// Like the Library itself it performs no locking and assumes a single
// caller.
type RecordingNotifier struct {
	sent []Notification
}

// NewRecordingNotifier creates an empty recording notifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Notify records the notification.
func (n *RecordingNotifier) Notify(_ context.Context, recipientID string, message string) {
	n.sent = append(n.sent, Notification{RecipientID: recipientID, Message: message})
}

// NotificationCount returns how many notifications were recorded.
func (n *RecordingNotifier) NotificationCount() int {
	return len(n.sent)
}

// LastRecipient returns the recipient of the most recent notification,
// or the empty string if none was recorded.
func (n *RecordingNotifier) LastRecipient() string {
	if len(n.sent) == 0 {
		return ""
	}

	return n.sent[len(n.sent)-1].RecipientID
}

// LastMessage returns the message of the most recent notification,
// or the empty string if none was recorded.
func (n *RecordingNotifier) LastMessage() string {
	if len(n.sent) == 0 {
		return ""
	}

	return n.sent[len(n.sent)-1].Message
}

// Notifications returns all recorded notifications in arrival order.
// The returned slice is a copy.
func (n *RecordingNotifier) Notifications() []Notification {
	sent := make([]Notification, len(n.sent))
	copy(sent, n.sent)

	return sent
}

// Reset discards all recorded notifications.
func (n *RecordingNotifier) Reset() {
	n.sent = nil
}

// Ensure RecordingNotifier implements lending.Notifier.
var _ lending.Notifier = (*RecordingNotifier)(nil)
