package event

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError reports a field constraint violation. Message always names
// the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// checkLength validates string length bounds, counted in characters rather
// than bytes. A max of -1 means unbounded.
func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters", field, min),
		}
	}
	if max >= 0 && n > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		}
	}
	return nil
}

func checkStatus(value Status) error {
	if value.Valid() {
		return nil
	}
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return &ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("status must be one of: %s", strings.Join(names, ", ")),
	}
}

func checkCapacity(value int) error {
	if value <= 0 {
		return &ValidationError{
			Field:   "capacity",
			Message: "capacity must be greater than 0",
		}
	}
	return nil
}
