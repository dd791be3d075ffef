package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/trec-sweep/pkg/server"
)

// NewStore opens the configured store. The returned cleanup releases its
// resources and is safe to call once the store is no longer used.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, pkgserver.HealthChecker, func(), error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		store := pg.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return store, pg.NewHealthChecker(pool), pool.Close, nil

	case storage.InMem:
		return in_mem.NewInMemStore(), pkgserver.NewOkHealthChecker(), func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
