// Package payment defines the checkout collaborator boundary. The service
// hands it an amount in minor currency units plus free-form metadata and gets
// back an opaque checkout session; the session's client secret is consumed
// entirely outside this backend.
package payment

import "context"

// Session is a started checkout. ClientSecret is opaque to this service.
type Session struct {
	ID           string
	ClientSecret string
}

// Provider starts checkout sessions. Implementations make exactly one
// outbound call per CreateSession; there is no retry policy here — a failure
// surfaces once to the caller.
type Provider interface {
	CreateSession(ctx context.Context, amountPaise int64, description string, metadata map[string]string) (Session, error)
}
