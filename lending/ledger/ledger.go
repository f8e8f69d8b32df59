package ledger

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrNilLedger is returned when a nil ledger is supplied where one is required.
	ErrNilLedger = errors.New("ledger must not be nil")

	// ErrNilDomainEvent is returned when a nil event is recorded.
	ErrNilDomainEvent = errors.New("domain event must not be nil")
)

// Ledger is an append-only, in-memory journal of lending transactions.
// Entries are kept in arrival order. Like the Library that feeds it, a
// Ledger performs no internal locking and assumes a single caller.
type Ledger struct {
	entries Entries
}

// NewLedger creates an empty journal.
func NewLedger() *Ledger {
	return &Ledger{entries: Entries{}}
}

// Record converts the domain event into an Entry and appends it.
func (l *Ledger) Record(event DomainEvent) error {
	if event == nil {
		return ErrNilDomainEvent
	}

	entry, err := EntryFrom(event)
	if err != nil {
		return err
	}

	l.entries = append(l.entries, entry)

	return nil
}

// Count returns the number of recorded entries.
func (l *Ledger) Count() int {
	return len(l.entries)
}

// Entries returns all recorded entries in arrival order.
// The returned slice is a copy.
func (l *Ledger) Entries() Entries {
	entries := make(Entries, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// EntriesForMember returns the entries concerning one member, in arrival order.
func (l *Ledger) EntriesForMember(memberID string) Entries {
	var entries Entries

	for _, entry := range l.entries {
		if entry.MemberID == memberID {
			entries = append(entries, entry)
		}
	}

	return entries
}

// ExportJSON serializes the full history as a JSON array.
func (l *Ledger) ExportJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(l.entries)
}
