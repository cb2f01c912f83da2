package services

import (
	"errors"
	"fmt"
)

// ErrNotFound wraps gorm.ErrRecordNotFound at the service edge so callers
// never import gorm just to classify an error.
var ErrNotFound = errors.New("record not found")

// ErrConcurrentUpdate means an optimistic version check failed; the caller
// should reload the aggregate and retry at most once.
var ErrConcurrentUpdate = errors.New("record was modified concurrently")

// ValidationError reports a bad input the caller should have pre-checked.
// Its message is safe to surface to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
