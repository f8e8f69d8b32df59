package lending

// Member is a patron record: immutable identity, name and borrowing
// limit, plus the ordered list of book ids the member currently holds.
// Like Book it holds no business rules beyond the capacity check -
// AddBorrowedBook appends unconditionally and the Library is responsible
// for validating first.
//
// The borrowed list is a small bounded slice (at most maxBooks entries),
// so the linear scans in HasBorrowedBook and RemoveBorrowedBook are fine.
type Member struct {
	id       string
	name     string
	maxBooks int
	borrowed []string
}

// NewMember creates a patron record with the given borrowing limit.
func NewMember(id string, name string, maxBooks int) *Member {
	return &Member{
		id:       id,
		name:     name,
		maxBooks: maxBooks,
	}
}

// ID returns the unique identifier of the member.
func (m *Member) ID() string {
	return m.id
}

// Name returns the name of the member.
func (m *Member) Name() string {
	return m.name
}

// MaxBooks returns the borrowing limit of the member.
func (m *Member) MaxBooks() int {
	return m.maxBooks
}

// BorrowedCount returns how many books the member currently holds.
func (m *Member) BorrowedCount() int {
	return len(m.borrowed)
}

// BorrowedBookIDs returns the ids of the currently held books in borrow
// order. The returned slice is a copy.
func (m *Member) BorrowedBookIDs() []string {
	ids := make([]string, len(m.borrowed))
	copy(ids, m.borrowed)

	return ids
}

// CanBorrow reports whether the member is below the borrowing limit.
func (m *Member) CanBorrow() bool {
	return len(m.borrowed) < m.maxBooks
}

// HasBorrowedBook reports whether the member currently holds the book.
func (m *Member) HasBorrowedBook(bookID string) bool {
	for _, id := range m.borrowed {
		if id == bookID {
			return true
		}
	}

	return false
}

// AddBorrowedBook appends the book id to the borrowed list. It performs
// no duplicate or capacity check; the Library validates before calling.
func (m *Member) AddBorrowedBook(bookID string) {
	m.borrowed = append(m.borrowed, bookID)
}

// RemoveBorrowedBook removes the first occurrence of the book id from
// the borrowed list and reports whether it was found.
func (m *Member) RemoveBorrowedBook(bookID string) bool {
	for i, id := range m.borrowed {
		if id == bookID {
			m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
			return true
		}
	}

	return false
}
