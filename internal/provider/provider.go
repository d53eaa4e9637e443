package provider

import "context"

// Provider is the outbound SMS delivery port. Absence of an error is the
// only success signal; sending the same message twice produces two
// outbound messages.
type Provider interface {
	Send(ctx context.Context, to string, body string) error
}
