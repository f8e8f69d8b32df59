// Package lending implements a small in-memory lending library:
// a catalog of books, registered members with a borrowing limit,
// and a borrow/return workflow that notifies the affected member
// on every successful transaction.
//
// The Library orchestrator owns all Book and Member records and is the
// only place where preconditions are checked. The records themselves
// (Book, Member) are plain value holders whose mutators are
// unconditional - callers are expected to go through the Library.
//
// Every mutating operation validates strictly before it mutates, so an
// operation either commits completely (state change plus notification)
// or leaves the Library untouched. Borrow and return outcomes are
// reported as a plain bool; lookups use comma-ok absence and never fail.
//
// The Library performs no internal locking. It is designed for
// single-threaded, single-caller use; callers sharing an instance
// across goroutines must serialize the full read-validate-mutate-notify
// sequence externally.
//
// Observability is optional and dependency-free: the Library accepts
// Logger, ContextualLogger, MetricsCollector and TracingCollector
// implementations via functional options. Plug-and-play OpenTelemetry
// implementations live in the oteladapters subpackage, Notifier
// implementations in notifieradapters, and an append-only transaction
// journal in ledger.
package lending
