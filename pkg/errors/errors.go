// Package errors provides structured error handling for Tide.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a tide.yaml or module resolution error.
	KindConfig
	// KindGenerate indicates a code generation error.
	KindGenerate
	// KindRegistry indicates a store registration or lookup error.
	KindRegistry
	// KindMutation indicates a failed state mutation.
	KindMutation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGenerate:
		return "generate"
	case KindRegistry:
		return "registry"
	case KindMutation:
		return "mutation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StateError represents a structured error in Tide.
type StateError struct {
	// Op is the operation that failed (e.g., "registry.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Store is the registry name of the store involved, if applicable.
	Store string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StateError) Error() string {
	if e.Store != "" {
		return fmt.Sprintf("%s [%s] store=%s: %v", e.Op, e.Kind, e.Store, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "store.Watcher.Debug").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by Tide.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StateError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
