package backend

import (
	"context"
	"fmt"

	"github.com/robertncl/expense/internal/config"
	"github.com/robertncl/expense/internal/logger"
	"github.com/robertncl/expense/internal/storage"
	"github.com/robertncl/expense/internal/storage/memory"
	"github.com/robertncl/expense/internal/storage/sqlite"
)

// New returns the store selected by conf.Driver. An empty driver means memory.
func New(ctx context.Context, conf config.StorageConfig, logger *logger.Logger) (storage.Storage, error) {
	switch conf.Driver {
	case config.DriverMemory, "":
		logger.Debug("Initialized memory backend")
		return memory.New(), nil
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, conf, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite backend: %w", err)
		}
		logger.Debug("Initialized SQLite backend", "source", conf.Source)
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", conf.Driver)
	}
}
