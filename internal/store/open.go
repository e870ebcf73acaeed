package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/wealthpath/finance-tracker/internal/config"
)

// Open builds the store selected by cfg. The returned close function
// releases any database handle and is never nil.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), noop, nil

	case config.BackendFile:
		s, err := NewFileStore(cfg.DataDir, cfg.Passphrase)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("Using file store", "dir", cfg.DataDir, "encrypted", s.Encrypted())
		return s, noop, nil

	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return nil, noop, fmt.Errorf("creating data directory: %w", err)
		}
		dsn := cfg.SQLitePath() + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		s, err := openSQL(ctx, DialectSQLite, dsn)
		if err != nil {
			return nil, noop, err
		}
		// One writer at a time keeps SQLite from returning SQLITE_BUSY.
		s.db.SetMaxOpenConns(1)
		slog.Info("Using sqlite store", "path", cfg.SQLitePath())
		return s, s.Close, nil

	case config.BackendPostgres:
		s, err := openSQL(ctx, DialectPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("Using postgres store")
		return s, s.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func openSQL(ctx context.Context, dialect, dsn string) (*SQLStore, error) {
	if err := RunMigrations(dialect, dsn); err != nil {
		return nil, fmt.Errorf("migrating %s store: %w", dialect, err)
	}

	db, err := sqlx.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s store: %w", dialect, err)
	}
	return NewSQLStore(db), nil
}
