package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks invalid window creation parameters.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrSchemeNotRegistered is reported for navigations and resource loads
	// targeting a custom scheme with no handler.
	ErrSchemeNotRegistered = errors.New("scheme not registered")
	// ErrStaleDragState is logged when a drag starts without a recorded mouse-down.
	ErrStaleDragState = errors.New("no recorded mouse-down for drag")
	// ErrHandlerFault marks a scheme handler failure converted to a failed load.
	ErrHandlerFault = errors.New("scheme handler fault")
	// ErrWindowClosed is returned by operations on a torn-down window.
	ErrWindowClosed = errors.New("window closed")
	// ErrInvalidScheme is returned when registering a malformed scheme name.
	ErrInvalidScheme = errors.New("invalid scheme name")
	// ErrLoadCancelled is delivered to a task whose load was stopped.
	ErrLoadCancelled = errors.New("load cancelled")
)

// ConfigurationError describes a rejected creation parameter.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// HandlerFault wraps a scheme handler failure. Panic is set when the fault
// was a recovered panic rather than a returned error.
type HandlerFault struct {
	Scheme string
	URL    string
	Cause  error
	Panic  any
}

func (e *HandlerFault) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("scheme handler %q panicked on %s: %v", e.Scheme, e.URL, e.Panic)
	}
	return fmt.Sprintf("scheme handler %q failed on %s: %v", e.Scheme, e.URL, e.Cause)
}

// Is matches ErrHandlerFault.
func (e *HandlerFault) Is(target error) bool {
	return target == ErrHandlerFault
}

// Unwrap returns the underlying cause, if any.
func (e *HandlerFault) Unwrap() error {
	return e.Cause
}
