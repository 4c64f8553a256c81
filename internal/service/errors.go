package service

import (
	"errors"
	"strings"
)

// ErrInvalidCredentials is deliberately blind to which factor failed: unknown
// email, wrong password and a vendor-less account all collapse into it.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError carries every violated constraint, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func validationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
