package lending

// Book is a catalog record: immutable identity, title and author plus a
// mutable availability flag. It performs no validation of its own - all
// precondition checking happens in the Library, and the Mark* mutators
// flip the flag unconditionally.
type Book struct {
	id        string
	title     string
	author    string
	available bool
}

// NewBook creates a catalog record that starts out available.
func NewBook(id string, title string, author string) *Book {
	return &Book{
		id:        id,
		title:     title,
		author:    author,
		available: true,
	}
}

// ID returns the unique identifier of the book.
func (b *Book) ID() string {
	return b.id
}

// Title returns the title of the book.
func (b *Book) Title() string {
	return b.title
}

// Author returns the author of the book.
func (b *Book) Author() string {
	return b.author
}

// IsAvailable reports whether the book can currently be borrowed.
func (b *Book) IsAvailable() bool {
	return b.available
}

// MarkBorrowed flags the book as lent out. It does not check the current
// state; the Library validates availability before calling it.
func (b *Book) MarkBorrowed() {
	b.available = false
}

// MarkReturned flags the book as available again, unconditionally.
func (b *Book) MarkReturned() {
	b.available = true
}
