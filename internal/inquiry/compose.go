package inquiry

import (
	"bytes"
	"fmt"
	"html"
	"text/template"

	"github.com/scoutclear/scout/internal/mail"
)

// Envelope carries the addressing values that come from configuration
type Envelope struct {
	From  string
	To    string
	Brand string
}

// text/template on purpose: every value is already entity-escaped by Sanitize
// and html/template would escape it a second time.
var htmlBody = template.Must(template.New("inquiry-html").Parse(
	`<div style="font-family: Arial, sans-serif; line-height:1.5">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
{{- if .Phone}}
  <p><strong>Phone:</strong> {{.Phone}}</p>
{{- end}}
{{- if .Company}}
  <p><strong>Company / HOA:</strong> {{.Company}}</p>
{{- end}}
{{- if .PropertyAddress}}
  <p><strong>Property address:</strong> {{.PropertyAddress}}</p>
{{- end}}
  <hr/>
  <p><strong>Message:</strong></p>
  <p style="white-space: pre-wrap">{{.Message}}</p>
</div>
`))

var textBody = template.Must(template.New("inquiry-text").Parse(
	`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
{{- if .Phone}}
Phone: {{.Phone}}
{{- end}}
{{- if .Company}}
Company / HOA: {{.Company}}
{{- end}}
{{- if .PropertyAddress}}
Property address: {{.PropertyAddress}}
{{- end}}

Message:
{{.Message}}
`))

// Subject returns the fixed subject line for a sanitized name
func Subject(brand, name string) string {
	if brand == "" {
		brand = "SCOUT"
	}
	return fmt.Sprintf("New %s inquiry — %s", brand, name)
}

// Compose builds the notification email for a sanitized submission
func Compose(s Sanitized, env Envelope) (mail.Message, error) {
	var htmlBuf bytes.Buffer
	if err := htmlBody.Execute(&htmlBuf, s); err != nil {
		return mail.Message{}, fmt.Errorf("render html body: %w", err)
	}

	var textBuf bytes.Buffer
	if err := textBody.Execute(&textBuf, plain(s)); err != nil {
		return mail.Message{}, fmt.Errorf("render text body: %w", err)
	}

	return mail.Message{
		From:    env.From,
		To:      env.To,
		Subject: Subject(env.Brand, s.Name),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
		ReplyTo: s.Email,
	}, nil
}

// plain undoes the entity escaping for the text/plain alternative
func plain(s Sanitized) Sanitized {
	return Sanitized{
		Name:            html.UnescapeString(s.Name),
		Company:         html.UnescapeString(s.Company),
		Email:           html.UnescapeString(s.Email),
		Phone:           html.UnescapeString(s.Phone),
		PropertyAddress: html.UnescapeString(s.PropertyAddress),
		Message:         html.UnescapeString(s.Message),
	}
}
