// Package contactform is the client side of the contact flow: it holds form
// state, shapes the phone number and drives a single POST to the contact
// endpoint while tracking an idle/sending/success/error status.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Status is the submission state shown to the user
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// terminal reports whether s is a finished submission
func (s Status) terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Field names a form input
type Field string

const (
	FieldName            Field = "name"
	FieldCompany         Field = "company"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldPropertyAddress Field = "propertyAddress"
	FieldMessage         Field = "message"
	FieldWebsite         Field = "website"
)

// Form is the JSON body posted to the contact endpoint
type Form struct {
	Name            string `json:"name"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress"`
	Message         string `json:"message"`
	Website         string `json:"website"`
}

var (
	// ErrInFlight is returned by Submit while a previous submission is still sending.
	ErrInFlight = errors.New("submission already in flight")
	// ErrUnknownField is returned by UpdateField for names outside the form
	ErrUnknownField = errors.New("unknown form field")
	// ErrUnexpectedStatus wraps non-2xx endpoint responses
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Feedback shown for terminal states
const (
	SuccessMessage = "Thanks! We received your request and will reply shortly."
	ErrorMessage   = "Something went wrong sending your message. Please try again or email us directly."
)

// Controller owns one form. It is safe for concurrent use.
type Controller struct {
	endpoint string
	client   *http.Client

	mu     sync.Mutex
	form   Form
	status Status
}

// New creates a controller posting to endpoint. A nil client uses http.DefaultClient.
func New(endpoint string, client *http.Client) *Controller {
	if client == nil {
		client = http.DefaultClient
	}
	return &Controller{
		endpoint: endpoint,
		client:   client,
	}
}

// Status returns the current submission status
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Form returns a copy of the current form values
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Message returns the user-facing feedback for the current status, or "".
func (c *Controller) Message() string {
	switch c.Status() {
	case StatusSuccess:
		return SuccessMessage
	case StatusError:
		return ErrorMessage
	default:
		return ""
	}
}

// UpdateField sets one field. Editing after a finished submission returns the
// status to idle so old feedback does not linger.
func (c *Controller) UpdateField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.form.Name = value
	case FieldCompany:
		c.form.Company = value
	case FieldEmail:
		c.form.Email = value
	case FieldPhone:
		c.form.Phone = FormatPhone(value)
	case FieldPropertyAddress:
		c.form.PropertyAddress = value
	case FieldMessage:
		c.form.Message = value
	case FieldWebsite:
		c.form.Website = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if c.status.terminal() {
		c.status = StatusIdle
	}
	return nil
}

// Submit posts the form once. A call while another is sending returns
// ErrInFlight without touching the network. On success the form is cleared;
// on failure it is kept so the user can retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSending {
		c.mu.Unlock()
		return ErrInFlight
	}
	c.status = StatusSending
	form := c.form
	c.mu.Unlock()

	err := c.post(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		return err
	}
	c.status = StatusSuccess
	c.form = Form{}
	return nil
}

func (c *Controller) post(ctx context.Context, form Form) error {
	body, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send form: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}
