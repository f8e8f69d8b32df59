package lending

import (
	"context"
)

// Notifier is the external collaborator the Library invokes after every
// successful borrow or return. It is fire-and-forget: there is no return
// value and no failure contract, and it is called synchronously on the
// calling goroutine, exactly once per successful transaction and never
// on a rejected one.
//
// The Library only holds a reference; the caller owns the notifier and
// must keep it valid for the Library's entire lifetime. Implementations
// for production logging and for test verification live in the
// notifieradapters subpackage.
type Notifier interface {
	Notify(ctx context.Context, recipientID string, message string)
}
