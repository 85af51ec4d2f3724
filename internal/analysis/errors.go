package analysis

import "fmt"

// InputError is returned when the resume text is missing or blank.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
