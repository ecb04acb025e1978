// Package settingsx provides struct validation for bound configuration.
package settingsx

import (
	"github.com/go-playground/validator/v10"

	"go.fernwave.dev/settingsx/core/errors"
)

type validatorHandle = *validator.Validate

// ValidatorOption configures the validator.
type ValidatorOption func(*validator.Validate)

// NewValidator creates a new validator instance.
func NewValidator(opts ...ValidatorOption) *validator.Validate {
	v := validator.New()
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateStruct validates a struct using validator tags.
func ValidateStruct(v *validator.Validate, target any) error {
	if v == nil {
		v = validator.New()
	}

	if err := v.Struct(target); err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "validate", err)
	}
	return nil
}

// WithValidator validates the bound struct with the given validator instance
// after decoding.
func WithValidator(v *validator.Validate) BindOption {
	return bindOptionFunc(func(cfg *bindConfig) {
		cfg.validate = true
		cfg.validator = v
	})
}
