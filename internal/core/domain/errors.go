package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("analysis not found")

// ValidationError reports malformed caller input. It surfaces at the API
// boundary as a 4xx response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
