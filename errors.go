package nutrition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the sentinel for every validation failure this package
// produces. Match with errors.Is; the concrete *InvalidInputError carries the
// field name and reason.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a rejected input value. It is the only error kind
// in this package: raised synchronously, never retried, never partial.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) match any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// invalidOption builds the error for an unrecognized enumerated value,
// listing the valid options in canonical order.
func invalidOption[T ~string](field string, got T, valid []T) *InvalidInputError {
	opts := make([]string, len(valid))
	for i, v := range valid {
		opts[i] = string(v)
	}
	return &InvalidInputError{
		Field:  field,
		Reason: fmt.Sprintf("%q is not one of: %s", string(got), strings.Join(opts, ", ")),
	}
}
