package sfx

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when audio is requested from a clip that has no generated buffer.
var ErrNotLoaded = errors.New("sfx: clip not loaded")

// ValidationError rejects a configuration at construction time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sfx: invalid %s: %s", e.Field, e.Reason)
}

// GenerationError wraps any failure raised while synthesizing a clip.
type GenerationError struct {
	Clip string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("sfx: generating %q: %v", e.Clip, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
