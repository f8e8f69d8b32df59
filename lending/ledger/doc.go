// Package ledger provides an append-only, in-memory journal of lending
// transactions.
//
// Successful borrow and return operations are represented as domain
// events (BookBorrowed, BookReturned) which are converted into scalar
// Entry records with a JSON payload. The journal keeps entries in
// arrival order and can filter them per member or export the whole
// history as JSON.
//
// The journal is purely in-memory and lives and dies with its owner;
// it is a record of what happened during the process lifetime, not a
// persistence layer.
//
// Common usage pattern:
//
//	journal := ledger.NewLedger()
//	lib, err := lending.NewLibrary(notifier, lending.WithLedger(journal))
//	// ... borrow and return books ...
//	history, err := journal.ExportJSON()
package ledger
