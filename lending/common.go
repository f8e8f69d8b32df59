package lending

import (
	"errors"
)

var (
	// ErrNilNotifier is returned when a Library is constructed without a notifier.
	ErrNilNotifier = errors.New("notifier must not be nil")

	// ErrDuplicateBookID is returned when a book with the same id is already in the catalog.
	ErrDuplicateBookID = errors.New("a book with this id already exists")

	// ErrDuplicateMemberID is returned when a member with the same id is already registered.
	ErrDuplicateMemberID = errors.New("a member with this id already exists")

	// ErrInvalidMaxBooks is returned when a member is registered with a borrowing limit below one.
	ErrInvalidMaxBooks = errors.New("maxBooks must be at least 1")
)

// DefaultMaxBooks is the borrowing limit applied by RegisterMember.
const DefaultMaxBooks = 3
