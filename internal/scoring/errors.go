package scoring

import "fmt"

// ModelLoadError is returned when a predictor artifact cannot be read or parsed.
type ModelLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ModelLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load model %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load model %s: %s", e.Path, e.Message)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Cause
}

// IncompatibleModelError is returned when an artifact parses but does not
// honor the feature-order contract or declares an unknown kind or version.
type IncompatibleModelError struct {
	Path    string
	Message string
}

func (e *IncompatibleModelError) Error() string {
	return fmt.Sprintf("incompatible model %s: %s", e.Path, e.Message)
}
