package lending_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libraryops/lending-go/lending"
)

func Test_NewMember_StartsWithNoBooks(t *testing.T) {
	member := lending.NewMember("M001", "Alice", 3)

	assert.Equal(t, "M001", member.ID())
	assert.Equal(t, "Alice", member.Name())
	assert.Equal(t, 3, member.MaxBooks())
	assert.Equal(t, 0, member.BorrowedCount())
	assert.True(t, member.CanBorrow())
}

func Test_Member_CanBorrowUpToTheLimit(t *testing.T) {
	member := lending.NewMember("M001", "Alice", 2)

	member.AddBorrowedBook("B001")
	assert.True(t, member.CanBorrow())

	member.AddBorrowedBook("B002")
	assert.False(t, member.CanBorrow())
	assert.Equal(t, 2, member.BorrowedCount())
}

func Test_Member_HasBorrowedBook(t *testing.T) {
	member := lending.NewMember("M001", "Alice", 3)
	member.AddBorrowedBook("B001")

	assert.True(t, member.HasBorrowedBook("B001"))
	assert.False(t, member.HasBorrowedBook("B002"))
}

func Test_Member_RemoveBorrowedBook(t *testing.T) {
	// arrange
	member := lending.NewMember("M001", "Alice", 3)
	member.AddBorrowedBook("B001")
	member.AddBorrowedBook("B002")

	// act
	removed := member.RemoveBorrowedBook("B001")

	// assert
	assert.True(t, removed)
	assert.Equal(t, 1, member.BorrowedCount())
	assert.False(t, member.HasBorrowedBook("B001"))
	assert.True(t, member.HasBorrowedBook("B002"))
}

func Test_Member_RemoveBorrowedBook_NotFound(t *testing.T) {
	member := lending.NewMember("M001", "Alice", 3)

	removed := member.RemoveBorrowedBook("B001")

	assert.False(t, removed)
	assert.Equal(t, 0, member.BorrowedCount())
}

func Test_Member_BorrowedBookIDs_PreservesOrderAndIsACopy(t *testing.T) {
	// arrange
	member := lending.NewMember("M001", "Alice", 3)
	member.AddBorrowedBook("B002")
	member.AddBorrowedBook("B001")

	// act
	ids := member.BorrowedBookIDs()
	ids[0] = "mutated"

	// assert
	assert.Equal(t, []string{"B002", "B001"}, member.BorrowedBookIDs(), "Mutating the returned slice must not affect the record")
}
