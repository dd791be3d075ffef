package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage/pg"
	"github.com/DjordjeVuckovic/trec-sweep/pkg/config/env"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
}

// LoadEnv reads STORAGE_TYPE and, for postgres, PG_CONNECTION_STRING, PG_MAX_CONNS
// and PG_APPLICATION_NAME. An unset STORAGE_TYPE selects in-memory storage.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr:         os.Getenv("PG_CONNECTION_STRING"),
			ApplicationName: env.String("PG_APPLICATION_NAME", pg.DefaultApplicationName),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}

		maxConns, err := env.Int("PG_MAX_CONNS", pg.DefaultMaxConns)
		if err != nil {
			return nil, err
		}
		if maxConns < 1 {
			return nil, fmt.Errorf("PG_MAX_CONNS must be positive, got %d", maxConns)
		}
		pgCfg.MaxConns = int32(maxConns)
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
	}, nil
}
