package phone

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidation adds tag to v so struct fields tagged with it must hold
// a valid number of this country. Empty strings fail; combine with
// omitempty for optional fields.
func (m *Manager) RegisterValidation(v *validator.Validate, tag string) error {
	return v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return m.IsValid(fl.Field().String())
	})
}
