package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrMissingField = errors.New("required field is missing")
	ErrWeakPassword = errors.New("password does not satisfy the password policy")
	ErrInvalidField = errors.New("invalid field value")
)

// FieldError binds a validation failure to the JSON name of the offending field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
