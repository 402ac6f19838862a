package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoPackage rejects quota-bounded operations for clients without an
	// assigned package: without max_edited_photos the quota is undefined.
	ErrNoPackage = errors.New("client has no package assigned")
)

// ValidationError marks a rejected request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// QuotaExceededError rejects a move that would push the destination stage
// past the package limit. No files are moved when it is returned.
type QuotaExceededError struct {
	Max       int `json:"max"`
	Current   int `json:"current"`
	Requested int `json:"requested"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: limit is %d, stage holds %d, requested %d", e.Max, e.Current, e.Requested)
}
