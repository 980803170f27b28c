package archive

import "fmt"

// ValidationError reports an entity that violates its field constraints.
// It is fatal to the construction attempt that produced it.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: field %q: %s", e.Entity, e.Field, e.Reason)
}

// ParseError reports input that is not valid JSON or lacks the expected
// top-level shape. No partial results accompany it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedProviderError reports a provider tag outside the closed
// enumeration accepted by the dispatcher.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("Unknown provider: %s", e.Provider)
}
