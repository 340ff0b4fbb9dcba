package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/robertncl/expense/internal/config"
	"github.com/robertncl/expense/internal/logger"
	"github.com/robertncl/expense/internal/storage"
)

const defaultSource = ":memory:"

var journalModes = []string{"DELETE", "TRUNCATE", "PERSIST", "MEMORY", "WAL", "OFF"}

type sqliteStorage struct {
	db *sql.DB
}

// New opens the database, applies the schema and empties the expenses table,
// so the returned storage always starts without records.
func New(ctx context.Context, dbConfig config.StorageConfig, logger *logger.Logger) (storage.Storage, error) {
	journalMode, err := validJournalMode(dbConfig.JournalMode)
	if err != nil {
		return nil, err
	}

	source := dbConfig.Source
	if source == "" {
		source = defaultSource
	}

	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, err
	}

	// Every connection to an in-memory database gets its own database.
	if isMemory(source) {
		db.SetMaxOpenConns(1)
	}

	if journalMode != "" {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA journal_mode = %s", journalMode))
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set journal_mode: %w", err)
		}
	}

	if dbConfig.BusyTimeout > 0 {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", dbConfig.BusyTimeout))
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
		}
	}

	s := &sqliteStorage{db: db}

	if err = s.applyMigrations(ctx, logger); err != nil {
		db.Close()
		return nil, err
	}

	if err = s.reset(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// validJournalMode returns mode upper cased, or an error when SQLite does not know it.
func validJournalMode(mode string) (string, error) {
	if mode == "" {
		return "", nil
	}

	upper := strings.ToUpper(strings.TrimSpace(mode))
	if !slices.Contains(journalModes, upper) {
		return "", fmt.Errorf("unsupported journal_mode %q, use one of %s", mode, strings.Join(journalModes, ", "))
	}

	return upper, nil
}

func isMemory(source string) bool {
	return source == defaultSource || strings.Contains(source, "mode=memory")
}
