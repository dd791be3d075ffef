package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
)

func WriteTable(m *Manifest, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Sweep: %s (%d experiments) ===\n\n", m.Name, len(m.Experiments))

	header := []string{"#", "Stemming", "Stopwords", "Model", "ID", "Index Path", "Output Path"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, exp := range m.Experiments {
		row := []string{
			fmt.Sprintf("%d", i+1),
			exp.Stemming.Label(),
			exp.Stopwords.Label(),
			exp.Model.Label(),
			fmt.Sprintf("%d", exp.ModelID),
			exp.IndexPath,
			exp.OutputPath,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	return tw.Flush()
}

// WriteSummaryTable prints the per-model outcome counts of a dispatch.
func WriteSummaryTable(rows []OutcomeRow, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join([]string{"Model", "OK", "Errors", "Canceled"}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---", "---"}, "\t"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Model.Label(), r.OK, r.Errors, r.Canceled)
	}

	fmt.Fprintln(tw)
	return tw.Flush()
}

type OutcomeRow struct {
	Model    experiment.Model
	OK       int
	Errors   int
	Canceled int
}
