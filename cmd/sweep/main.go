package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/metrics"
	"github.com/DjordjeVuckovic/trec-sweep/internal/report"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage/factory"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/plan"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/runner"
)

func main() {
	cfg := parseFlags()
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := cfg.validate(); err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(1)
	}

	p, err := loadPlan(cfg)
	if err != nil {
		slog.Error("Failed to load plan", "path", cfg.PlanPath, "error", err)
		os.Exit(1)
	}

	if cfg.needsBaseDir() {
		if err := plan.CheckBaseDir(p.BaseDir); err != nil {
			slog.Error("Base directory check failed", "error", err)
			os.Exit(1)
		}
	}

	en, err := p.Enumerator()
	if err != nil {
		slog.Error("Failed to enumerate experiments", "error", err)
		os.Exit(1)
	}
	slog.Debug("Plan loaded", "name", p.Name, "base_dir", en.BaseDir(), "experiments", en.Len())

	ctx := context.Background()

	switch cfg.Mode {
	case modePrint:
		runPrint(en)
	case modeTable:
		runTable(p, en)
	case modeJSON:
		runJSON(cfg, p, en)
	case modeStore:
		runStore(ctx, p, en)
	case modeExec:
		runExec(ctx, cfg, p, en)
	}
}

func loadPlan(cfg cliConfig) (*plan.Plan, error) {
	var p *plan.Plan
	if cfg.PlanPath == "" {
		p = plan.Default(cfg.BaseDir)
	} else {
		loaded, err := plan.LoadFromFile(cfg.PlanPath)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	if cfg.BaseDir != "" {
		p.BaseDir = cfg.BaseDir
	}
	if cfg.Command != "" {
		p.Command = cfg.Command
	}
	if cfg.Concurrency > 0 {
		p.Concurrency = cfg.Concurrency
	}
	return p, p.Validate()
}

func runPrint(en *experiment.Enumerator) {
	if err := report.WriteProgress(os.Stdout, en.All()); err != nil {
		slog.Error("Failed to write experiments", "error", err)
		os.Exit(1)
	}
}

func runTable(p *plan.Plan, en *experiment.Enumerator) {
	if err := report.WriteTable(report.NewManifest(p.Name, en), os.Stdout); err != nil {
		slog.Error("Failed to write table", "error", err)
		os.Exit(1)
	}
}

func runJSON(cfg cliConfig, p *plan.Plan, en *experiment.Enumerator) {
	m := report.NewManifest(p.Name, en)

	if cfg.Output == "" {
		if err := report.EncodeJSON(m, os.Stdout); err != nil {
			slog.Error("Failed to encode manifest", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := report.WriteJSON(m, cfg.Output); err != nil {
		slog.Error("Failed to write manifest", "path", cfg.Output, "error", err)
		os.Exit(1)
	}
	slog.Info("Manifest written", "path", cfg.Output, "experiments", len(m.Experiments))
}

func runStore(ctx context.Context, p *plan.Plan, en *experiment.Enumerator) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	store, _, cleanup, err := factory.NewStore(ctx, *storageCfg)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		os.Exit(1)
	}

	if err := store.SaveBulk(ctx, p.Name, en.List()); err != nil {
		slog.Error("Failed to store experiments", "sweep", p.Name, "error", err)
		cleanup()
		os.Exit(1)
	}
	cleanup()
	slog.Info("Experiments stored", "sweep", p.Name, "storage", storageCfg.Type, "count", en.Len())
}

func runExec(ctx context.Context, cfg cliConfig, p *plan.Plan, en *experiment.Enumerator) {
	if p.Command == "" {
		slog.Error("exec mode needs a command template (plan command or -command)")
		os.Exit(1)
	}
	cmd, err := plan.ParseCommand(p.Command)
	if err != nil {
		slog.Error("Invalid command template", "error", err)
		os.Exit(1)
	}

	r := runner.New(runner.Config{
		Concurrency:     p.Concurrency,
		ContinueOnError: cfg.ContinueOnError,
		Metrics:         metrics.New(),
	})

	ch := runner.NewCommandHandler(cmd, os.Stdout, os.Stderr)
	h := runner.HandlerFunc(func(ctx context.Context, exp experiment.Experiment) error {
		slog.Info(exp.Progress(), "index_path", exp.IndexPath, "output_path", exp.OutputPath)
		return ch.Handle(ctx, exp)
	})

	summary, runErr := r.Dispatch(ctx, en.All(), h)
	if err := report.WriteSummaryTable(report.SummarizeOutcomes(summary), os.Stdout); err != nil {
		slog.Error("Failed to write summary", "error", err)
	}

	if runErr != nil {
		slog.Error("Sweep failed", "error", runErr)
		os.Exit(1)
	}
	if failed := summary.Failed(); len(failed) > 0 {
		slog.Error("Sweep finished with failures", "failed", len(failed))
		os.Exit(1)
	}
	slog.Info("Sweep finished", "experiments", len(summary.Results))
}
