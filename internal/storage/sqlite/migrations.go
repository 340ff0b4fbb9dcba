package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robertncl/expense/internal/logger"
)

type migration struct {
	name string
	up   func(ctx context.Context, tx *sql.Tx) error
}

var migrations = []migration{
	{
		name: "Create expenses table",
		up: func(ctx context.Context, tx *sql.Tx) error {
			// amount is stored as decimal text to keep it exact
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS expenses
				(
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				description TEXT NOT NULL,
				amount TEXT NOT NULL,
				category TEXT NOT NULL,
				date TEXT NOT NULL
				) STRICT;`)
			return err
		},
	},
	{
		name: "Index expenses by category",
		up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS expenses_category ON expenses(category);")
			return err
		},
	},
}

func (s *sqliteStorage) applyMigrations(ctx context.Context, logger *logger.Logger) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion := 0
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err = row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for i := currentVersion; i < len(migrations); i++ {
		m := migrations[i]
		version := i + 1

		logger.Debug("Applying migration", "version", version, "name", m.name)

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", version, txErr)
		}

		if err = m.up(ctx, tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", version, m.name, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			version, time.Now().Unix())
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", version, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", version, err)
		}
	}

	return nil
}

func (s *sqliteStorage) reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses;"); err != nil {
		return fmt.Errorf("failed to reset expenses table: %w", err)
	}
	return nil
}
