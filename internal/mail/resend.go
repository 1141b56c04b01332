package mail

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend API
type ResendSender struct {
	apiKey string
	client *resend.Client
}

// NewResendSender creates a Resend-backed sender
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		apiKey: apiKey,
		client: resend.NewClient(apiKey),
	}
}

// SetBaseURL points the client at a different API host (tests, proxies)
func (s *ResendSender) SetBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid resend base url: %w", err)
	}
	s.client.BaseURL = u
	return nil
}

func (s *ResendSender) Name() string {
	return "Resend"
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.apiKey == "" {
		return "", ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", &ProviderError{
			Provider: "resend",
			Message:  err.Error(),
			Err:      err,
		}
	}

	return sent.Id, nil
}
