package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports healthy when postgres answers and the experiments
// table exists, so the API never serves from an unmigrated database.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("postgres health check failed", "error", err)
		return false
	}

	var ready bool
	if err := hc.pool.conn.QueryRow(ctx, `SELECT to_regclass('experiments') IS NOT NULL`).Scan(&ready); err != nil {
		slog.Warn("postgres schema check failed", "error", err)
		return false
	}
	if !ready {
		slog.Warn("postgres experiments table is missing")
	}
	return ready
}
