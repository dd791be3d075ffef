package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
)

// WriteProgress prints, for each experiment, the status line followed by the
// labeled index and output paths, one item per line.
func WriteProgress(w io.Writer, seq iter.Seq[experiment.Experiment]) error {
	for exp := range seq {
		if _, err := fmt.Fprintf(w, "%s\nindex_path:\n%s\noutput_path:\n%s\n", exp.Progress(), exp.IndexPath, exp.OutputPath); err != nil {
			return fmt.Errorf("write progress: %w", err)
		}
	}
	return nil
}

// WriteVariants prints one line per index variant followed by its path.
func WriteVariants(w io.Writer, variants []experiment.IndexVariant) error {
	for _, v := range variants {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", v.Description(), v.IndexPath); err != nil {
			return fmt.Errorf("write variants: %w", err)
		}
	}
	return nil
}
