// Package inquiry holds the contact-form submission model, the
// trim/escape/cap sanitization pipeline and composition of the outbound
// notification email.
package inquiry

import (
	"github.com/scoutclear/scout/internal/api/sanitization"
)

// Field length caps, in UTF-16 code units, applied after escaping
const (
	MaxName            = 120
	MaxCompany         = 200
	MaxEmail           = 200
	MaxPhone           = 40
	MaxPropertyAddress = 300
	MaxMessage         = 5000
)

// Submission is one contact-form post. It lives for a single request.
type Submission struct {
	Name            string `json:"name"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress"`
	Message         string `json:"message"`
	// Website is a honeypot: the form hides it from people.
	Website string `json:"website"`
}

// IsSpam reports whether the honeypot was filled in
func (s Submission) IsSpam() bool {
	return s.Website != ""
}

// Sanitized holds the HTML-safe, length-capped values of a Submission
type Sanitized struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	PropertyAddress string
	Message         string
}

// Sanitize trims, escapes and caps every field
func Sanitize(s Submission) Sanitized {
	return Sanitized{
		Name:            sanitization.SanitizeField(s.Name, MaxName),
		Company:         sanitization.SanitizeField(s.Company, MaxCompany),
		Email:           sanitization.SanitizeField(s.Email, MaxEmail),
		Phone:           sanitization.SanitizeField(s.Phone, MaxPhone),
		PropertyAddress: sanitization.SanitizeField(s.PropertyAddress, MaxPropertyAddress),
		Message:         sanitization.SanitizeField(s.Message, MaxMessage),
	}
}
