package contact

import "github.com/scoutclear/scout/internal/inquiry"

// ContactRequest represents a contact form submission. Every key is optional
// on the wire; name, email and message are checked after the honeypot.
type ContactRequest struct {
	Name            Value `json:"name" validate:"required"`
	Company         Value `json:"company"`
	Email           Value `json:"email" validate:"required"`
	Phone           Value `json:"phone"`
	PropertyAddress Value `json:"propertyAddress"`
	Message         Value `json:"message" validate:"required"`
	Website         Value `json:"website"` // honeypot
}

// IsSpam reports whether the hidden honeypot field was filled in with anything
func (r *ContactRequest) IsSpam() bool {
	return r.Website.Filled()
}

// Submission converts the request into the domain model
func (r *ContactRequest) Submission() inquiry.Submission {
	return inquiry.Submission{
		Name:            r.Name.String(),
		Company:         r.Company.String(),
		Email:           r.Email.String(),
		Phone:           r.Phone.String(),
		PropertyAddress: r.PropertyAddress.String(),
		Message:         r.Message.String(),
		Website:         r.Website.String(),
	}
}
