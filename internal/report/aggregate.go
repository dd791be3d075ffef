package report

import (
	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/runner"
)

// SummarizeOutcomes counts dispatch outcomes per model, in model order.
func SummarizeOutcomes(s *runner.Summary) []OutcomeRow {
	byModel := make(map[experiment.Model]*OutcomeRow)

	for _, res := range s.Results {
		m := res.Experiment.Model
		row, ok := byModel[m]
		if !ok {
			row = &OutcomeRow{Model: m}
			byModel[m] = row
		}
		switch res.Outcome {
		case runner.OutcomeOK:
			row.OK++
		case runner.OutcomeError:
			row.Errors++
		case runner.OutcomeCanceled:
			row.Canceled++
		}
	}

	rows := make([]OutcomeRow, 0, len(byModel))
	for _, m := range experiment.Models {
		if row, ok := byModel[m]; ok {
			rows = append(rows, *row)
		}
	}
	return rows
}
