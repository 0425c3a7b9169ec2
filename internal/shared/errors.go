// Package shared defines sentinel errors used across the service layers.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// common errors
	ErrorNotFound = errors.New("not found")

	// store-level errors
	ErrorAlreadyExists = errors.New("already exists")
	ErrorUnavailable   = errors.New("storage unavailable")

	// service-level errors
	ErrorInternal = errors.New("internal error")

	// ErrorValidation is the umbrella for the validation errors below;
	// errors.Is(err, ErrorValidation) matches any of them.
	ErrorValidation = errors.New("validation error")

	// validation-specific errors
	ErrorUsernameLength     = validation("username must be between 3 and 30 characters")
	ErrorEmailFormat        = validation("invalid email format")
	ErrorPasswordTooShort   = validation("password must be at least 8 characters")
	ErrorPasswordComplexity = validation("password must contain uppercase, lowercase, digit and special characters")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrorValidation
}

func validation(msg string) error {
	return &validationError{msg: msg}
}
