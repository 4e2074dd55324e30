package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks a local form-validation failure. No network call is
// made on this path.
var ErrValidation = errors.New("validation failed")

// ErrPrecondition marks an action blocked by a client-side rule (ownership,
// required comment, required supervisor). No network call is made.
var ErrPrecondition = errors.New("action not allowed")

// RequiredFieldsMessage is shown whenever a form is missing required fields
// or has an invalid time ordering.
const RequiredFieldsMessage = "Please fill in all required fields and ensure times are valid"

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func preconditionError(msg string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, msg)
}
