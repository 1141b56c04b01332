package mail

import (
	"context"
	"fmt"

	mailgun "github.com/mailgun/mailgun-go/v5"
)

// MailgunSender delivers through Mailgun
type MailgunSender struct {
	domain string
	mg     mailgun.Mailgun
}

// NewMailgunSender creates a Mailgun-backed sender. A nil client is created
// only when an API key is present.
func NewMailgunSender(apiKey, domain string) *MailgunSender {
	s := &MailgunSender{domain: domain}
	if apiKey != "" {
		s.mg = mailgun.NewMailgun(apiKey)
	}
	return s
}

func (s *MailgunSender) Name() string {
	return "Mailgun"
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.mg == nil || s.domain == "" {
		return "", ErrNotConfigured
	}

	message := mailgun.NewMessage(s.domain, msg.From, msg.Subject, msg.Text)
	if err := message.AddRecipient(msg.To); err != nil {
		return "", fmt.Errorf("add recipient: %w", err)
	}
	message.SetHTML(msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}

	resp, err := s.mg.Send(ctx, message)
	if err != nil {
		return "", &ProviderError{
			Provider: "mailgun",
			Message:  err.Error(),
			Err:      err,
		}
	}

	return resp.ID, nil
}
