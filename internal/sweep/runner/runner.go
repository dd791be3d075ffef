package runner

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"golang.org/x/sync/errgroup"
)

// Handler does the work for one experiment.
type Handler interface {
	Handle(ctx context.Context, exp experiment.Experiment) error
}

type HandlerFunc func(ctx context.Context, exp experiment.Experiment) error

func (f HandlerFunc) Handle(ctx context.Context, exp experiment.Experiment) error {
	return f(ctx, exp)
}

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Runner{config: cfg}
}

// Dispatch hands every experiment of seq to h. Unless ContinueOnError is set,
// the first failure cancels the experiments not yet started and is returned.
// The summary is complete either way: experiments that never ran are reported
// as canceled.
func (r *Runner) Dispatch(ctx context.Context, seq iter.Seq[experiment.Experiment], h Handler) (*Summary, error) {
	var exps []experiment.Experiment
	for exp := range seq {
		exps = append(exps, exp)
	}

	results := make([]ExperimentResult, len(exps))
	for i, exp := range exps {
		results[i] = ExperimentResult{Experiment: exp, Outcome: OutcomeCanceled}
	}

	if r.config.Metrics != nil {
		r.config.Metrics.PlanSize.Set(float64(len(exps)))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)

	for i := range exps {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res := r.handle(gctx, h, exps[i])
			results[i] = res
			if res.Error != nil && !r.config.ContinueOnError {
				return fmt.Errorf("experiment %s: %w", exps[i].RunID, res.Error)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	for _, res := range results {
		if res.Outcome == OutcomeCanceled {
			r.record(res)
		}
	}

	return &Summary{Results: results}, err
}

func (r *Runner) handle(ctx context.Context, h Handler, exp experiment.Experiment) ExperimentResult {
	if m := r.config.Metrics; m != nil {
		m.ExperimentsInFlight.Inc()
		defer m.ExperimentsInFlight.Dec()
	}

	start := time.Now()
	err := h.Handle(ctx, exp)
	res := ExperimentResult{
		Experiment: exp,
		Outcome:    OutcomeOK,
		Duration:   time.Since(start),
		Error:      err,
	}
	if err != nil {
		res.Outcome = OutcomeError
		slog.Warn("experiment failed", "run_id", exp.RunID, "error", err)
	} else {
		slog.Debug("experiment done", "run_id", exp.RunID, "duration", res.Duration)
	}

	r.record(res)
	return res
}

func (r *Runner) record(res ExperimentResult) {
	m := r.config.Metrics
	if m == nil {
		return
	}
	model := res.Experiment.Model.Label()
	m.ExperimentsTotal.WithLabelValues(model, string(res.Outcome)).Inc()
	if res.Outcome != OutcomeCanceled {
		m.ExperimentDuration.WithLabelValues(model).Observe(res.Duration.Seconds())
	}
}
