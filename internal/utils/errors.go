package utils

import "fmt"

// ErrorWrappers provides common error wrapping patterns used throughout the codebase
// to reduce duplication and ensure consistent error formatting.

// WrapResolveError wraps an error with a "failed to resolve" message
func WrapResolveError(name string, err error) error {
	return fmt.Errorf("failed to resolve %s: %w", name, err)
}

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return fmt.Errorf("failed to load %s: %w", item, err)
}

// WrapRenderError wraps an error with a "failed to render" message
func WrapRenderError(item string, err error) error {
	return fmt.Errorf("failed to render %s: %w", item, err)
}

// WrapEmitError wraps an error with a "failed to emit" message
func WrapEmitError(item string, err error) error {
	return fmt.Errorf("failed to emit %s: %w", item, err)
}

// WrapWriteError wraps an error with a "failed to write" message
func WrapWriteError(item string, err error) error {
	return fmt.Errorf("failed to write %s: %w", item, err)
}
