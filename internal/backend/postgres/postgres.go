// Package postgres implements the PostgreSQL backend over pgx. Query text
// uses the driver's native $N positional convention; the caller supplies it
// directly and no marker translation happens here.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/marcosdslau/sap-database/backend"
)

// Backend implements backend.Backend for PostgreSQL.
type Backend struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Connect constructs the native pgx pool with the configured timeout applied
// to both connection establishment and idle lifetime, merged with any
// caller-supplied pool overrides.
func Connect(ctx context.Context, cfg backend.Config) (*Backend, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("error creating pool: %w", err)
	}

	return &Backend{pool: pool, log: cfg.Log()}, nil
}

// poolConfig builds the native pool configuration: connect-timeout and
// idle-timeout from the configured timeout, then a full merge of the
// caller-supplied pool overrides.
func poolConfig(cfg backend.Config) (*pgxpool.Config, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database)

	pc, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("error parsing pool config: %w", err)
	}

	pc.ConnConfig.ConnectTimeout = cfg.Timeout
	pc.MaxConnIdleTime = cfg.Timeout

	pc.MaxConns = int32(backend.IntOption(cfg.PoolOptions, "max", int(pc.MaxConns)))
	pc.MinConns = int32(backend.IntOption(cfg.PoolOptions, "min", int(pc.MinConns)))
	pc.MaxConnLifetime = backend.DurationOption(cfg.PoolOptions, "max_conn_lifetime", pc.MaxConnLifetime)
	pc.MaxConnIdleTime = backend.DurationOption(cfg.PoolOptions, "max_conn_idle_time", pc.MaxConnIdleTime)
	pc.HealthCheckPeriod = backend.DurationOption(cfg.PoolOptions, "health_check_period", pc.HealthCheckPeriod)

	return pc, nil
}

// Execute acquires a connection from the native pool, runs the query and
// releases the connection on every exit path.
func (b *Backend) Execute(ctx context.Context, query string, args []any) ([]backend.Row, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var results []backend.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(backend.Row, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Ping checks pool connectivity.
func (b *Backend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

// Close ends the native pool entirely.
func (b *Backend) Close(ctx context.Context) error {
	b.pool.Close()
	return nil
}
