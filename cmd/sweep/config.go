package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/pkg/config/env"
)

const (
	modePrint = "print"
	modeTable = "table"
	modeJSON  = "json"
	modeStore = "store"
	modeExec  = "exec"
)

type cliConfig struct {
	PlanPath        string
	BaseDir         string
	Mode            string
	Output          string
	Command         string
	Concurrency     int
	ContinueOnError bool
	Verbose         bool
}

func parseFlags() cliConfig {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/sweep/.env"); err != nil {
		slog.Debug("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg := cliConfig{}

	flag.StringVar(&cfg.PlanPath, "plan", env.String("SWEEP_PLAN", ""), "Path to sweep plan YAML (default: full 18-experiment sweep)")
	flag.StringVar(&cfg.BaseDir, "base-dir", env.String("SWEEP_BASE_DIR", ""), "Base directory for indices and ranking outputs (overrides the plan)")
	flag.StringVar(&cfg.Mode, "mode", modePrint, "Run mode: print, table, json, store, or exec")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON manifest (json mode, default stdout)")
	flag.StringVar(&cfg.Command, "command", "", "Command template run per experiment (exec mode, overrides the plan)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 0, "Experiments run in parallel (exec mode, overrides the plan)")
	flag.BoolVar(&cfg.ContinueOnError, "continue-on-error", false, "Keep dispatching after an experiment fails (exec mode)")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	switch c.Mode {
	case modePrint, modeTable, modeJSON, modeStore, modeExec:
	default:
		return fmt.Errorf("unknown mode %q, expected one of print, table, json, store, exec", c.Mode)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.PlanPath == "" && c.BaseDir == "" {
		return fmt.Errorf("either -plan or -base-dir (SWEEP_BASE_DIR) is required")
	}
	return nil
}

// needsBaseDir reports whether the mode acts on the base directory. The
// rendering modes only print names, so the volume need not be mounted.
func (c cliConfig) needsBaseDir() bool {
	return c.Mode == modeExec || c.Mode == modeStore
}
