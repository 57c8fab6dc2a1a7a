// Package kv provides the string key-value stores preferences are persisted to.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// Store is an opaque string key-value store. Get reports ok=false for a
// missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown kv backend")

// Options selects and configures a backend.
type Options struct {
	Backend string

	// SQLite
	Dir string

	// PostgreSQL
	DSN            string
	MigrationsPath string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the store described by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite(opts.Dir)
	case BackendPostgres:
		if opts.MigrationsPath != "" {
			if err := RunMigrations(opts.DSN, opts.MigrationsPath); err != nil {
				return nil, err
			}
		}
		return OpenPostgres(ctx, opts.DSN)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
