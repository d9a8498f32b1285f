// Package mssql implements the Microsoft SQL Server backend over the
// go-mssqldb driver. Connect only constructs the native pool; the driver
// dials lazily, so connection establishment is awaited by the first
// statement rather than by Connect itself.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	"go.uber.org/zap"

	"github.com/marcosdslau/sap-database/backend"
)

// Backend implements backend.Backend for Microsoft SQL Server. All requests
// share one long-lived pooled connection.
type Backend struct {
	db  *sql.DB
	log *zap.Logger
}

// Connect builds the native connection string and constructs the driver
// pool. No network I/O happens here.
func Connect(ctx context.Context, cfg backend.Config) (*Backend, error) {
	db, err := sql.Open("sqlserver", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening sqlserver driver: %w", err)
	}

	// One shared session; concurrent requests serialize through it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Backend{db: db, log: cfg.Log()}, nil
}

// connectionString renders the native connection string with the configured
// timeout applied to both dialing and request execution.
func connectionString(cfg backend.Config) string {
	var connString strings.Builder

	fmt.Fprintf(&connString, "server=%s;port=%d;user id=%s;password=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password)
	if cfg.Database != "" {
		fmt.Fprintf(&connString, ";database=%s", cfg.Database)
	}

	seconds := int(cfg.Timeout.Seconds())
	fmt.Fprintf(&connString, ";dial timeout=%d;connection timeout=%d", seconds, seconds)
	connString.WriteString(";encrypt=disable")

	return connString.String()
}

// Execute rewrites generic `?` markers into named parameters and runs the
// statement. Zero-parameter statements are issued verbatim.
func (b *Backend) Execute(ctx context.Context, query string, args []any) ([]backend.Row, error) {
	text, named, err := rewritePlaceholders(query, args)
	if err != nil {
		return nil, err
	}

	rows, err := b.db.QueryContext(ctx, text, named...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return backend.ScanRows(rows)
}

// rewritePlaceholders converts each `?` occurrence, left to right, into a
// uniquely named bound parameter @paramN (N = 0-based occurrence index) and
// pairs it with the corresponding positional value. A placeholder count that
// does not match the parameter count is rejected before touching the driver.
func rewritePlaceholders(query string, args []any) (string, []any, error) {
	if len(args) == 0 {
		return query, nil, nil
	}

	count := strings.Count(query, "?")
	if count != len(args) {
		return "", nil, fmt.Errorf("%w: query has %d placeholders but %d parameters were supplied",
			backend.ErrInvalidQuery, count, len(args))
	}

	var text strings.Builder
	named := make([]any, 0, len(args))
	remaining := query
	for i, arg := range args {
		before, after, _ := strings.Cut(remaining, "?")
		name := fmt.Sprintf("param%d", i)
		text.WriteString(before)
		text.WriteByte('@')
		text.WriteString(name)
		named = append(named, sql.Named(name, arg))
		remaining = after
	}
	text.WriteString(remaining)

	return text.String(), named, nil
}

// Ping checks connectivity, establishing the lazy connection if needed.
func (b *Backend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

// Close closes the native pool.
func (b *Backend) Close(ctx context.Context) error {
	return b.db.Close()
}
