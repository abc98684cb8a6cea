// Package delivery sends individual rendered emails through an external
// transactional provider. One synchronous call per message, no batching, no
// retries — failure handling belongs to the caller.
package delivery

import "context"

// Message is one rendered email ready for handoff to a provider.
type Message struct {
	FromName  string
	FromEmail string
	To        string
	Subject   string
	HTML      string
}

// SendResult reports a single delivery attempt. A provider rejection comes
// back as Success=false with Error set rather than as a returned error, so
// fan-out loops can treat failures as data.
type SendResult struct {
	Success   bool
	MessageID string
	Provider  string
	Error     error
}

// Deliverer is the provider contract. Implementations must be safe for
// concurrent use.
type Deliverer interface {
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}
