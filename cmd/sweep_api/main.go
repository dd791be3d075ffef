package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/internal/api/router"
	"github.com/DjordjeVuckovic/trec-sweep/internal/api/server"
	"github.com/DjordjeVuckovic/trec-sweep/internal/metrics"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage/factory"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/plan"
	"github.com/DjordjeVuckovic/trec-sweep/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/trec-sweep/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/sweep_api/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	p, err := loadPlan()
	if err != nil {
		slog.Error("Failed to load plan", "error", err)
		os.Exit(1)
	}

	en, err := p.Enumerator()
	if err != nil {
		slog.Error("Failed to enumerate experiments", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	m.PlanSize.Set(float64(en.Len()))

	// The signal-aware context lives on the server, so build it before the store.
	var hc pkgserver.AllHealthy
	s := server.New(sCfg, &hc)

	store, storeHC, cleanup, err := factory.NewStore(s.Context(), *storageCfg)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		os.Exit(1)
	}
	defer cleanup()
	hc = append(hc, storeHC)

	if err := store.SaveBulk(s.Context(), p.Name, en.List()); err != nil {
		slog.Error("Failed to publish plan", "sweep", p.Name, "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("Plan published", "sweep", p.Name, "experiments", en.Len(), "storage", storageCfg.Type)

	s.SetupMiddlewares(m).
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", m)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "trec-sweep API is running")
	})

	router.NewExperimentsRouter(s.Echo, store, p.Name).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func loadPlan() (*plan.Plan, error) {
	if path := env.String("SWEEP_PLAN", ""); path != "" {
		return plan.LoadFromFile(path)
	}
	p := plan.Default(env.String("SWEEP_BASE_DIR", ""))
	return p, p.Validate()
}
