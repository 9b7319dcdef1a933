package contract

import "context"

// Sender is the "send text to address" primitive the Notifier calls.
// Implementations wrap the chat transport; errors are returned to the caller
// and never retried here. This keeps the real gateway out of the core and
// allows mocking in tests.
type Sender interface {
	Send(ctx context.Context, address, text string) error
}
