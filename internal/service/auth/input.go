package auth

import (
	"github.com/carla-io/inventory-backend/internal/domain"
)

// Credentials holds the username and password pair used by both register
// and login.
type Credentials struct {
	Name     string
	Password string
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	var errs []domain.FieldError

	if c.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if c.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
