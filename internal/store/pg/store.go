// Package pg implementa core.Repository sobre PostgreSQL usando pgxpool.
package pg

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/postjohn/internal/observability/logger"
	"github.com/dropDatabas3/postjohn/internal/store/core"
	migrations "github.com/dropDatabas3/postjohn/migrations/postgres"
)

// Options ajusta el pool de conexiones.
type Options struct {
	MaxConns        int32
	ConnMaxLifetime time.Duration
}

// Store implementa core.Repository.
type Store struct {
	pool *pgxpool.Pool
}

var _ core.Repository = (*Store)(nil)

// New abre el pool contra el DSN y verifica conectividad.
func New(ctx context.Context, dsn string, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = opts.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pg: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Pool expone el pool subyacente (metrics collector).
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// Ping verifica conectividad contra la DB.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close cierra el pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Migrate aplica las migraciones embebidas en orden lexicográfico.
// Idempotente: los archivos usan IF NOT EXISTS.
func (s *Store) Migrate(ctx context.Context) error {
	log := logger.Named("pg.migrate")

	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("pg: read migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		b, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("pg: read migration %s: %w", name, err)
		}
		if _, err := s.pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("pg: apply migration %s: %w", name, err)
		}
		log.Debug("migration applied", logger.String("file", name))
	}
	return nil
}
