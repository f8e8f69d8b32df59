package ledger

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents a book being borrowed by a member.
type BookBorrowed struct {
	EventType  string
	BookID     string
	MemberID   string
	Title      string
	OccurredAt time.Time
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(bookID string, memberID string, title string, occurredAt time.Time) BookBorrowed {
	return BookBorrowed{
		EventType:  BookBorrowedEventType,
		BookID:     bookID,
		MemberID:   memberID,
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// HasBookID returns the id of the borrowed book.
func (e BookBorrowed) HasBookID() string {
	return e.BookID
}

// HasMemberID returns the id of the borrowing member.
func (e BookBorrowed) HasMemberID() string {
	return e.MemberID
}
