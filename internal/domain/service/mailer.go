package service

import "context"

// Mailer is the outbound mail-delivery collaborator. Delivery failure must
// surface to the caller: a confirmation or recovery code that was never
// delivered is useless, so the triggering request has to fail with it.
type Mailer interface {
	// Send delivers one message to a recipient.
	Send(ctx context.Context, recipient, subject, body string) error
}
