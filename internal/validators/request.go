package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shahparag-spring2021/webapp/models"
)

const tagStrongPassword = "strong_password"

// RequestValidator validates the typed request bodies of the API using
// go-playground/validator struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] for API request models.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagStrongPassword, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its validation tags. When fields are given,
// only failures on those JSON field names are reported.
//
// Every failure is reported as a [*FieldError] wrapping [ErrMissingField],
// [ErrWeakPassword] or [ErrInvalidField]; several failures are joined.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateBookRequest, *models.CreateBookRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	err := r.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	var errs []error
	for _, fieldErr := range validationErrors {
		if len(fields) > 0 && !slices.Contains(fields, fieldErr.Field()) {
			continue
		}
		errs = append(errs, &FieldError{Field: fieldErr.Field(), Err: sentinelForTag(fieldErr.Tag())})
	}

	return errors.Join(errs...)
}

func sentinelForTag(tag string) error {
	switch tag {
	case "required":
		return ErrMissingField
	case tagStrongPassword:
		return ErrWeakPassword
	default:
		return ErrInvalidField
	}
}
