package domain

import (
	"net/mail"
	"strings"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ResearcherInput is a researcher create/update payload.
type ResearcherInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
}

// Validate checks that the name is non-empty and the email is
// RFC-shaped. Uniqueness of the email is enforced at write time by the
// store's unique index.
func (r *ResearcherInput) Validate() *apperrors.AppError {
	var fieldErrors []apperrors.FieldError

	if strings.TrimSpace(r.Name) == "" {
		fieldErrors = append(fieldErrors, missingField("name"))
	}
	if r.Email == "" {
		fieldErrors = append(fieldErrors, missingField("email"))
	} else if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "email",
			Code:    apperrors.CodeInvalidEmail,
			Message: "email must be a plain RFC 5322 address",
		})
	}

	return validationError(fieldErrors)
}
