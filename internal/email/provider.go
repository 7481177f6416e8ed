package email

import (
	"context"
	"log"
)

// Message is one outbound transactional email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Provider delivers transactional email. Delivery is best-effort from
// the caller's point of view: the dispatcher logs and swallows errors.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// LogProvider is used when no provider credentials are configured. It
// records the send instead of delivering it.
type LogProvider struct{}

func (LogProvider) Send(_ context.Context, msg Message) error {
	log.Printf("email (not configured): to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
