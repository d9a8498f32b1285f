package sapdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/marcosdslau/sap-database/backend"
	"github.com/marcosdslau/sap-database/internal/backend/hana"
	"github.com/marcosdslau/sap-database/internal/backend/mssql"
	"github.com/marcosdslau/sap-database/internal/backend/postgres"
)

// Row is a single result row keyed by column name.
type Row = backend.Row

// Database is the unified client. A zero-configured instance starts
// unconnected; Connect selects and builds the backend adapter, Disconnect
// returns the instance to its initial state so it can be reconnected.
//
// Concurrent Query and Procedure calls are independent, interleavable
// requests; only the connect/disconnect transitions are serialized.
type Database struct {
	mu      sync.RWMutex
	backend backend.Backend
	params  ConnectionParams
	logger  *zap.Logger
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Database) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an unconnected Database.
func New(opts ...Option) *Database {
	d := &Database{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Connect validates the parameters, instantiates the adapter for the
// selected backend kind and establishes connectivity. Fails with
// ErrAlreadyConnected when a backend is live; call Disconnect first.
func (d *Database) Connect(ctx context.Context, params ConnectionParams) error {
	p, err := params.normalize()
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.backend != nil {
		return ErrAlreadyConnected
	}

	cfg, err := p.backendConfig(d.logger)
	if err != nil {
		return err
	}

	var be backend.Backend
	switch p.Kind {
	case HANA:
		be, err = hana.Connect(ctx, cfg)
	case MSSQL:
		be, err = mssql.Connect(ctx, cfg)
	case PostgreSQL:
		be, err = postgres.Connect(ctx, cfg)
	}
	if err != nil {
		return &ConnectionError{Kind: p.Kind, Host: cfg.Host, Port: cfg.Port, Cause: err}
	}

	d.backend = be
	d.params = p
	d.logger.Info("connected",
		zap.String("kind", string(p.Kind)),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", p.Database))

	return nil
}

// Query substitutes the {db} token with the configured database name and
// dispatches the text to the active backend. Driver errors propagate
// unwrapped. Fails with ErrNotConnected when no backend is live.
func (d *Database) Query(ctx context.Context, text string, args ...any) ([]Row, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.backend == nil {
		return nil, ErrNotConnected
	}

	stmt := substituteSchema(text, d.params.Database)
	d.logger.Debug("executing query", zap.String("kind", string(d.params.Kind)), zap.Int("params", len(args)))

	return d.backend.Execute(ctx, stmt, args)
}

// Procedure builds the backend-specific call statement for a stored
// procedure (or function, for PostgreSQL) and delegates to Query with the
// same parameter list.
func (d *Database) Procedure(ctx context.Context, name string, args ...any) ([]Row, error) {
	d.mu.RLock()
	kind := d.params.Kind
	connected := d.backend != nil
	d.mu.RUnlock()

	if !connected {
		return nil, ErrNotConnected
	}

	stmt := buildProcedureCall(kind, name, len(args))
	if kind == PostgreSQL {
		// pgx expects the native $N convention; the generated call text is
		// the one place this library owns the marker dialect.
		stmt = numberPlaceholders(stmt)
	}

	return d.Query(ctx, stmt, args...)
}

// Ping verifies connectivity of the active backend.
func (d *Database) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.backend == nil {
		return ErrNotConnected
	}
	return d.backend.Ping(ctx)
}

// Disconnect drains and releases all backend resources. On failure the
// instance stays connected so the caller may retry; on success it returns to
// the unconnected state and may be reconnected. Disconnecting a
// never-connected instance is a no-op.
func (d *Database) Disconnect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.backend == nil {
		return nil
	}

	if err := d.backend.Close(ctx); err != nil {
		return &DisconnectionError{Kind: d.params.Kind, Cause: err}
	}

	d.logger.Info("disconnected", zap.String("kind", string(d.params.Kind)))
	d.backend = nil
	d.params = ConnectionParams{}

	return nil
}

// Connected reports whether a backend is live.
func (d *Database) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.backend != nil
}

// Kind returns the active backend kind, or the empty string when
// unconnected.
func (d *Database) Kind() Kind {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.backend == nil {
		return ""
	}
	return d.params.Kind
}

// substituteSchema replaces every literal {db} token with the configured
// database name. No-op when no database is configured.
func substituteSchema(text, database string) string {
	if database == "" {
		return text
	}
	return strings.ReplaceAll(text, "{db}", database)
}

// buildProcedureCall renders the call statement for a stored procedure in
// the backend's dialect, with one generic `?` marker per parameter.
func buildProcedureCall(kind Kind, name string, argc int) string {
	markers := placeholders(argc)
	switch kind {
	case HANA:
		return fmt.Sprintf("CALL {db}.%q(%s)", name, markers)
	case PostgreSQL:
		return fmt.Sprintf("SELECT * FROM %s(%s)", name, markers)
	default:
		if argc == 0 {
			return fmt.Sprintf("EXEC %q", name)
		}
		return fmt.Sprintf("EXEC %q %s", name, markers)
	}
}

func placeholders(argc int) string {
	if argc == 0 {
		return ""
	}
	return strings.Repeat("?,", argc-1) + "?"
}

// numberPlaceholders rewrites generic `?` markers into $1..$N, left to
// right.
func numberPlaceholders(text string) string {
	var b strings.Builder
	n := 0
	for _, r := range text {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
