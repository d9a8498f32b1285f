package backend

import (
	"errors"
	"fmt"
)

// Standard backend errors
var (
	// ErrInvalidConfiguration is returned when connection parameters fail validation
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotConnected is returned when an operation requires an active backend
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected is returned when connect is called on a live instance
	ErrAlreadyConnected = errors.New("already connected")

	// ErrConnectionFailed is returned when a connection attempt fails
	ErrConnectionFailed = errors.New("connection failed")

	// ErrDisconnectFailed is returned when tearing down a backend fails
	ErrDisconnectFailed = errors.New("disconnect failed")

	// ErrInvalidQuery is returned when a query is malformed, for example when
	// its placeholder count does not match the supplied parameter count
	ErrInvalidQuery = errors.New("invalid query")
)

// ConfigurationError is returned when a connection parameter is invalid.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration: field '%s': %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Is checks if the error is ErrInvalidConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidConfiguration)
}

// ConnectionError wraps a native connect or pool-construction failure with
// the backend it was addressed to.
type ConnectionError struct {
	Kind  Kind
	Host  string
	Port  int
	Cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s at %s:%d: %v", e.Kind, e.Host, e.Port, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is ErrConnectionFailed.
func (e *ConnectionError) Is(target error) bool {
	if errors.Is(target, ErrConnectionFailed) {
		return true
	}
	return errors.Is(e.Cause, target)
}

// DisconnectionError wraps a native drain or close failure.
type DisconnectionError struct {
	Kind  Kind
	Cause error
}

// Error implements the error interface.
func (e *DisconnectionError) Error() string {
	return fmt.Sprintf("failed to disconnect from %s: %v", e.Kind, e.Cause)
}

// Unwrap returns the underlying error.
func (e *DisconnectionError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is ErrDisconnectFailed.
func (e *DisconnectionError) Is(target error) bool {
	if errors.Is(target, ErrDisconnectFailed) {
		return true
	}
	return errors.Is(e.Cause, target)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

// IsConnectionError checks if an error is a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}
