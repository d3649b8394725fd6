package models

import "fmt"

// ErrorCode classifies pipeline failures. Every failure is fatal: a half-generated
// proxy type is unsafe to ship, so the build aborts on the first error.
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	ResolutionErrorCode
	SynthesisErrorCode
	PersistenceErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ResolutionErrorCode:
		return "ResolutionError"
	case SynthesisErrorCode:
		return "SynthesisError"
	case PersistenceErrorCode:
		return "PersistenceError"
	default:
		return "UnknownError"
	}
}

// ResolutionError reports a type or method that cannot be found in the registry
type ResolutionError struct {
	TypeName string
	Detail   string
	Err      error
}

// NewResolutionError creates a resolution error for the named type
func NewResolutionError(typeName, detail string, err error) *ResolutionError {
	return &ResolutionError{TypeName: typeName, Detail: detail, Err: err}
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("%s: cannot resolve %s", ResolutionErrorCode, e.TypeName)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Code returns the error classification
func (e *ResolutionError) Code() ErrorCode { return ResolutionErrorCode }

// SynthesisError reports a rendered body or assembled type that fails to validate,
// naming the offending type and method
type SynthesisError struct {
	TypeName string
	Method   string
	Detail   string
	Err      error
}

// NewSynthesisError creates a synthesis error for the named type and method
func NewSynthesisError(typeName, method, detail string, err error) *SynthesisError {
	return &SynthesisError{TypeName: typeName, Method: method, Detail: detail, Err: err}
}

func (e *SynthesisError) Error() string {
	msg := fmt.Sprintf("%s: %s", SynthesisErrorCode, e.TypeName)
	if e.Method != "" {
		msg += "." + e.Method
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Code returns the error classification
func (e *SynthesisError) Code() ErrorCode { return SynthesisErrorCode }

// PersistenceError reports an output location that cannot be written
type PersistenceError struct {
	Path string
	Err  error
}

// NewPersistenceError creates a persistence error for the given output path
func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}

func (e *PersistenceError) Error() string {
	msg := fmt.Sprintf("%s: cannot write %s", PersistenceErrorCode, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Code returns the error classification
func (e *PersistenceError) Code() ErrorCode { return PersistenceErrorCode }
