package ledger

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a lending transaction that has occurred.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// HasBookID returns the id of the book the transaction concerns.
	HasBookID() string

	// HasMemberID returns the id of the member the transaction concerns.
	HasMemberID() string
}

// ToOccurredAt normalizes a timestamp to UTC with microsecond precision,
// so entries compare and serialize identically regardless of the clock
// they came from.
func ToOccurredAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
