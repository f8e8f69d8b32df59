package ledger

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrInvalidPayloadJSON is returned when an entry payload is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("payload json is not valid")

	// ErrMappingEntryFailed is returned when a domain event cannot be serialized into an entry.
	ErrMappingEntryFailed = errors.New("mapping domain event to ledger entry failed")
)

// Entries is an alias type for a slice of Entry.
type Entries = []Entry

// Entry is a DTO (data transfer object) holding one recorded lending
// transaction. It is built on scalars plus a JSON payload so readers of
// an exported history do not need to know the domain event types.
//
// While its properties are exported, it should only be constructed with
// the supplied factory methods:
//   - BuildEntry
//   - EntryFrom
type Entry struct {
	EntryID     uuid.UUID       `json:"entry_id"`
	EventType   string          `json:"event_type"`
	BookID      string          `json:"book_id"`
	MemberID    string          `json:"member_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	PayloadJSON json.RawMessage `json:"payload"`
}

// BuildEntry is a factory method for Entry.
//
// It populates the Entry with the given scalar input and a fresh unique id.
// Returns an error if payloadJSON is not valid JSON.
func BuildEntry(eventType string, bookID string, memberID string, occurredAt time.Time, payloadJSON []byte) (Entry, error) {
	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return Entry{}, ErrInvalidPayloadJSON
	}

	return Entry{
		EntryID:     uuid.New(),
		EventType:   eventType,
		BookID:      bookID,
		MemberID:    memberID,
		OccurredAt:  occurredAt,
		PayloadJSON: payloadJSON,
	}, nil
}

// EntryFrom converts a DomainEvent to an Entry, serializing the full
// event as the entry payload.
func EntryFrom(event DomainEvent) (Entry, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return Entry{}, errors.Join(ErrMappingEntryFailed, err)
	}

	entry, err := BuildEntry(
		event.IsEventType(),
		event.HasBookID(),
		event.HasMemberID(),
		event.HasOccurredAt(),
		payloadJSON,
	)
	if err != nil {
		return Entry{}, errors.Join(ErrMappingEntryFailed, err)
	}

	return entry, nil
}
