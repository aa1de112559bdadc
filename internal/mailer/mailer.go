// Package mailer delivers account emails. Delivery is best effort: the caller
// persists state first and treats a failed send as a logged incident, never as
// a failed request.
package mailer

import "context"

// Mailer sends account lifecycle emails.
type Mailer interface {
	// SendAccountConfirmation sends the confirmation email for a newly
	// registered account. The token is the plaintext confirmation secret;
	// only its hash is ever stored.
	SendAccountConfirmation(ctx context.Context, to, token string) error
}
