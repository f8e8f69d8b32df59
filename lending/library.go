package lending

import (
	"context"
	"time"

	"github.com/libraryops/lending-go/lending/ledger"
)

const (
	operationBorrow = "borrow_book"
	operationReturn = "return_book"

	statusSuccess  = "success"
	statusRejected = "rejected"

	reasonMemberNotFound  = "member not found"
	reasonBookNotFound    = "book not found"
	reasonBookUnavailable = "book is not available"
	reasonMemberAtLimit   = "member has reached the borrowing limit"
	reasonBookNotHeld     = "member does not hold this book"

	metricOperationsTotal          = "lending_operations_total"
	metricOperationDurationSeconds = "lending_operation_duration_seconds"
	metricAvailableBooks           = "lending_available_books"

	logMsgBookAdded          = "lending: book added to catalog"
	logMsgMemberRegistered   = "lending: member registered"
	logMsgBookBorrowed       = "lending: book borrowed"
	logMsgBookReturned       = "lending: book returned"
	logMsgOperationRejected  = "lending: operation rejected"
	logMsgLedgerAppendFailed = "lending: recording transaction in ledger failed"

	logAttrBookID   = "book_id"
	logAttrMemberID = "member_id"
	logAttrTitle    = "title"
	logAttrReason   = "reason"
	logAttrError    = "error"

	spanNameBorrow    = "lending.borrow_book"
	spanNameReturn    = "lending.return_book"
	spanAttrOperation = "operation"
	spanAttrStatus    = "status"
	spanAttrReason    = "reason"
)

// Library orchestrates the lending workflow. It exclusively owns all Book
// and Member records (created only through AddBook and RegisterMember) and
// holds a non-owning reference to the Notifier it was constructed with.
//
// All precondition checking lives here: the operations validate strictly
// before mutating, so each call either commits completely or changes
// nothing. Borrowed books and unavailable catalog entries always match up -
// a book is unavailable exactly while one member's borrowed list holds its
// id, and borrow/return are the only transitions.
//
// A Library is not safe for concurrent use.
type Library struct {
	books   map[string]*Book
	members map[string]*Member

	notifier         Notifier
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
	ledger           *ledger.Ledger
}

// NewLibrary creates an empty Library using the given notifier, applying
// any supplied options. The notifier must not be nil; the caller must keep
// it valid for the Library's entire lifetime.
func NewLibrary(notifier Notifier, opts ...Option) (*Library, error) {
	if notifier == nil {
		return nil, ErrNilNotifier
	}

	l := &Library{
		books:    make(map[string]*Book),
		members:  make(map[string]*Member),
		notifier: notifier,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// AddBook creates a new available Book and stores it in the catalog.
// A duplicate id is rejected with ErrDuplicateBookID instead of silently
// replacing the existing record.
func (l *Library) AddBook(id string, title string, author string) error {
	if _, exists := l.books[id]; exists {
		return ErrDuplicateBookID
	}

	l.books[id] = NewBook(id, title, author)

	l.logDebug(context.Background(), logMsgBookAdded, logAttrBookID, id, logAttrTitle, title)
	l.recordAvailableBooksGauge(context.Background())

	return nil
}

// RegisterMember creates a new Member with the default borrowing limit.
// A duplicate id is rejected with ErrDuplicateMemberID.
func (l *Library) RegisterMember(id string, name string) error {
	return l.RegisterMemberWithLimit(id, name, DefaultMaxBooks)
}

// RegisterMemberWithLimit creates a new Member with an explicit borrowing
// limit, which must be at least 1.
func (l *Library) RegisterMemberWithLimit(id string, name string, maxBooks int) error {
	if maxBooks < 1 {
		return ErrInvalidMaxBooks
	}

	if _, exists := l.members[id]; exists {
		return ErrDuplicateMemberID
	}

	l.members[id] = NewMember(id, name, maxBooks)

	l.logDebug(context.Background(), logMsgMemberRegistered, logAttrMemberID, id)

	return nil
}

// FindBook looks up a book by id. The second return value reports whether
// the book exists; a lookup never fails.
func (l *Library) FindBook(id string) (*Book, bool) {
	book, ok := l.books[id]
	return book, ok
}

// FindMember looks up a member by id, comma-ok style.
func (l *Library) FindMember(id string) (*Member, bool) {
	member, ok := l.members[id]
	return member, ok
}

// AvailableBookCount returns the number of books that can currently be
// borrowed. O(n) over the whole catalog.
func (l *Library) AvailableBookCount() int {
	count := 0

	for _, book := range l.books {
		if book.IsAvailable() {
			count++
		}
	}

	return count
}

// LentOutBookCount returns the number of books currently held by members.
func (l *Library) LentOutBookCount() int {
	return len(l.books) - l.AvailableBookCount()
}

// BorrowedBooks returns the books a member currently holds, in borrow
// order. It returns nil for an unknown member.
func (l *Library) BorrowedBooks(memberID string) []*Book {
	member, ok := l.members[memberID]
	if !ok {
		return nil
	}

	books := make([]*Book, 0, member.BorrowedCount())
	for _, bookID := range member.BorrowedBookIDs() {
		if book, found := l.books[bookID]; found {
			books = append(books, book)
		}
	}

	return books
}

// BorrowBook lends a book to a member.
//
// Business rules:
//
//	GIVEN: A catalog book with bookID and a member with memberID
//	WHEN: BorrowBook is called
//	THEN: the book is marked borrowed, its id is appended to the member's
//	      borrowed list, and the member is notified once with
//	      "You have borrowed: {title}"
//	REJECTED: if the member or book does not exist, the book is not
//	          available, or the member is at the borrowing limit
//
// A rejected call returns false with no mutation and no notification.
// All validation happens before any mutation, so the call is atomic.
func (l *Library) BorrowBook(ctx context.Context, memberID string, bookID string) bool {
	start := time.Now()
	ctx, span := l.startSpan(ctx, spanNameBorrow, memberID, bookID)

	member, memberFound := l.members[memberID]
	if !memberFound {
		l.reject(ctx, span, operationBorrow, reasonMemberNotFound, start, memberID, bookID)
		return false
	}

	book, bookFound := l.books[bookID]
	if !bookFound {
		l.reject(ctx, span, operationBorrow, reasonBookNotFound, start, memberID, bookID)
		return false
	}

	if !book.IsAvailable() {
		l.reject(ctx, span, operationBorrow, reasonBookUnavailable, start, memberID, bookID)
		return false
	}

	if !member.CanBorrow() {
		l.reject(ctx, span, operationBorrow, reasonMemberAtLimit, start, memberID, bookID)
		return false
	}

	book.MarkBorrowed()
	member.AddBorrowedBook(bookID)

	l.notifier.Notify(ctx, memberID, "You have borrowed: "+book.Title())
	l.recordTransaction(ctx, ledger.BuildBookBorrowed(bookID, memberID, book.Title(), start))

	l.logInfo(ctx, logMsgBookBorrowed, logAttrMemberID, memberID, logAttrBookID, bookID, logAttrTitle, book.Title())
	l.commit(ctx, span, operationBorrow, start)

	return true
}

// ReturnBook takes a book back from the member holding it.
//
// Business rules:
//
//	GIVEN: A catalog book with bookID and a member with memberID
//	WHEN: ReturnBook is called
//	THEN: the book is marked available, its id is removed from the
//	      member's borrowed list, and the member is notified once with
//	      "You have returned: {title}"
//	REJECTED: if the member or book does not exist, or the member does
//	          not hold the book (including a book borrowed by somebody else)
//
// A rejected call returns false with no mutation and no notification.
func (l *Library) ReturnBook(ctx context.Context, memberID string, bookID string) bool {
	start := time.Now()
	ctx, span := l.startSpan(ctx, spanNameReturn, memberID, bookID)

	member, memberFound := l.members[memberID]
	if !memberFound {
		l.reject(ctx, span, operationReturn, reasonMemberNotFound, start, memberID, bookID)
		return false
	}

	book, bookFound := l.books[bookID]
	if !bookFound {
		l.reject(ctx, span, operationReturn, reasonBookNotFound, start, memberID, bookID)
		return false
	}

	if !member.HasBorrowedBook(bookID) {
		l.reject(ctx, span, operationReturn, reasonBookNotHeld, start, memberID, bookID)
		return false
	}

	book.MarkReturned()
	member.RemoveBorrowedBook(bookID)

	l.notifier.Notify(ctx, memberID, "You have returned: "+book.Title())
	l.recordTransaction(ctx, ledger.BuildBookReturned(bookID, memberID, book.Title(), start))

	l.logInfo(ctx, logMsgBookReturned, logAttrMemberID, memberID, logAttrBookID, bookID, logAttrTitle, book.Title())
	l.commit(ctx, span, operationReturn, start)

	return true
}
