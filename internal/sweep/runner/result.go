package runner

import (
	"time"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
)

type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeError    Outcome = "error"
	OutcomeCanceled Outcome = "canceled"
)

// ExperimentResult is the outcome of handling a single experiment.
type ExperimentResult struct {
	Experiment experiment.Experiment
	Outcome    Outcome
	Duration   time.Duration
	Error      error
}

// Summary collects per-experiment results in enumeration order.
type Summary struct {
	Results []ExperimentResult
}

func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

func (s *Summary) Failed() []ExperimentResult {
	var failed []ExperimentResult
	for _, r := range s.Results {
		if r.Outcome == OutcomeError {
			failed = append(failed, r)
		}
	}
	return failed
}
