package identity

import (
	"strings"

	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
)

// Validator holds the local input checks that run before any call to the
// remote identity provider.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration checks registration input. All three fields must be
// non-empty and the password must match its confirmation.
func (v *Validator) ValidateRegistration(email, password, confirm string) error {
	if strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "all fields are required")
	}
	if password != confirm {
		return apperrors.Wrapf(apperrors.ErrValidation, "passwords do not match")
	}
	return nil
}

// ValidateCredentials checks sign-in input. Both fields must be non-empty.
func (v *Validator) ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "email is required")
	}
	if password == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "password is required")
	}
	return nil
}

// ValidateEmail checks that an email was supplied, for the password-reset
// request.
func (v *Validator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "email is required")
	}
	return nil
}
