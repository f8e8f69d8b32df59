package ledger

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents a book being returned by the member holding it.
type BookReturned struct {
	EventType  string
	BookID     string
	MemberID   string
	Title      string
	OccurredAt time.Time
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(bookID string, memberID string, title string, occurredAt time.Time) BookReturned {
	return BookReturned{
		EventType:  BookReturnedEventType,
		BookID:     bookID,
		MemberID:   memberID,
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturned) IsEventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// HasBookID returns the id of the returned book.
func (e BookReturned) HasBookID() string {
	return e.BookID
}

// HasMemberID returns the id of the returning member.
func (e BookReturned) HasMemberID() string {
	return e.MemberID
}
