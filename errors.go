package sapdb

import "github.com/marcosdslau/sap-database/backend"

// Errors surfaced by the public API. Query execution errors from the native
// drivers propagate unwrapped so callers can branch on backend-specific
// error codes.
var (
	ErrInvalidConfiguration = backend.ErrInvalidConfiguration
	ErrNotConnected         = backend.ErrNotConnected
	ErrAlreadyConnected     = backend.ErrAlreadyConnected
	ErrConnectionFailed     = backend.ErrConnectionFailed
	ErrDisconnectFailed     = backend.ErrDisconnectFailed
	ErrInvalidQuery         = backend.ErrInvalidQuery
)

// Typed errors carrying the failure context.
type (
	ConfigurationError = backend.ConfigurationError
	ConnectionError    = backend.ConnectionError
	DisconnectionError = backend.DisconnectionError
)
