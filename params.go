package sapdb

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcosdslau/sap-database/backend"
)

// Kind selects the database backend a Database connects to.
type Kind = backend.Kind

// Recognized backend kinds.
const (
	HANA       = backend.HANA
	MSSQL      = backend.MSSQL
	PostgreSQL = backend.PostgreSQL
)

// ParseKind resolves a backend kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	return backend.ParseKind(s)
}

// DefaultTimeout applies when ConnectionParams.Timeout is zero.
const DefaultTimeout = 600000 * time.Millisecond

// ConnectionParams describes one backend connection. Server may carry an
// explicit port as "host:port"; without one the backend's conventional port
// is used. PoolOptions are merged shallowly over the backend's pool
// defaults: caller keys replace defaults of the same name.
type ConnectionParams struct {
	Server   string
	Database string
	Username string
	Password string
	Kind     Kind
	Timeout  time.Duration

	// Recognized keys: "max", "min" (all backends with a bounded pool),
	// plus "max_conn_lifetime", "max_conn_idle_time" and
	// "health_check_period" for PostgreSQL.
	PoolOptions map[string]any
}

// Validate checks the parameters without side effects.
func (p ConnectionParams) Validate() error {
	_, err := p.normalize()
	return err
}

// normalize trims fields, resolves the backend kind to its canonical form
// and applies the timeout default. Fails before any I/O.
func (p ConnectionParams) normalize() (ConnectionParams, error) {
	p.Server = strings.TrimSpace(p.Server)
	p.Database = strings.TrimSpace(p.Database)
	p.Username = strings.TrimSpace(p.Username)
	p.Password = strings.TrimSpace(p.Password)

	if p.Server == "" {
		return p, &ConfigurationError{Field: "server", Reason: "must not be blank"}
	}
	if p.Username == "" {
		return p, &ConfigurationError{Field: "username", Reason: "must not be blank"}
	}
	if p.Password == "" {
		return p, &ConfigurationError{Field: "password", Reason: "must not be blank"}
	}

	kind, err := ParseKind(string(p.Kind))
	if err != nil {
		return p, err
	}
	p.Kind = kind

	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}

	return p, nil
}

// backendConfig splits the server address into host and port and carries the
// remaining fields into the adapter configuration.
func (p ConnectionParams) backendConfig(logger *zap.Logger) (backend.Config, error) {
	host := p.Server
	port := 0
	if h, pt, ok := strings.Cut(p.Server, ":"); ok {
		n, err := strconv.Atoi(pt)
		if err != nil || n <= 0 {
			return backend.Config{}, &ConfigurationError{Field: "server", Reason: "invalid port in server address"}
		}
		host, port = h, n
	}
	if port == 0 {
		port = backend.DefaultPort(p.Kind)
	}

	return backend.Config{
		Host:        host,
		Port:        port,
		Username:    p.Username,
		Password:    p.Password,
		Database:    p.Database,
		Timeout:     p.Timeout,
		PoolOptions: p.PoolOptions,
		Logger:      logger,
	}, nil
}
