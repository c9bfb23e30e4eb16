package email

// Provider sends transactional mail. Delivery is best-effort: a failed send
// is logged, never surfaced to the websocket client.
type Provider interface {
	Send(to, subject, body string) error
}

// Noop is the default provider when email is disabled (and in tests).
type Noop struct{}

func (Noop) Send(to, subject, body string) error { return nil }
