// internal/app/system/inputval/inputval.go

// Package inputval validates inbound request payloads.
package inputval

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginPayload is the admin login request body.
type LoginPayload struct {
	Pin string `json:"pin" validate:"required,len=11,numeric"`
}

// ContactFormPayload is the public contact-form request body. All
// four fields are required; everything else about the content is the
// sender's business.
type ContactFormPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Struct validates any tagged payload struct.
func Struct(v any) error {
	return validate.Struct(v)
}
