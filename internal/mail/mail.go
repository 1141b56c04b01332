// Package mail delivers composed inquiry emails through a transactional provider.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/scoutclear/scout/internal/config"
	"github.com/scoutclear/scout/internal/logging"
)

// Message is a single outbound email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender is the email-send capability: it returns a provider delivery id or an error.
type Sender interface {
	Name() string
	Send(ctx context.Context, msg Message) (string, error)
}

// ErrNotConfigured is returned by senders that are missing credentials
var ErrNotConfigured = errors.New("mail provider not configured")

// ProviderError is a delivery failure reported by the provider. It is safe to
// serialise back to the caller as diagnostic details.
type ProviderError struct {
	Provider   string `json:"provider"`
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// New picks the sender for cfg.Provider. Missing credentials are not an error
// here; the contact handler checks cfg.Configured() on every request.
func New(cfg config.Mail, logger *logging.Logger) (Sender, error) {
	switch cfg.Provider {
	case config.ProviderResend, "":
		return NewResendSender(cfg.ResendAPIKey), nil
	case config.ProviderMailgun:
		return NewMailgunSender(cfg.MailgunAPIKey, cfg.MailgunDomain), nil
	case config.ProviderLog:
		return NewLogSender(logger), nil
	default:
		return nil, logging.WrapError(logging.ErrInvalidConfig, fmt.Sprintf("unsupported mail provider %q", cfg.Provider))
	}
}
