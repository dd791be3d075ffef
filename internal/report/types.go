package report

import (
	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
)

// Manifest is the machine-readable form of a sweep plan, consumed by the
// indexing and ranking tools.
type Manifest struct {
	Name        string                    `json:"name"`
	BaseDir     string                    `json:"base_dir"`
	Space       experiment.Space          `json:"space"`
	Variants    []experiment.IndexVariant `json:"variants"`
	Experiments []experiment.Experiment   `json:"experiments"`
}

func NewManifest(name string, e *experiment.Enumerator) *Manifest {
	return &Manifest{
		Name:        name,
		BaseDir:     e.BaseDir(),
		Space:       e.Space(),
		Variants:    e.Variants(),
		Experiments: e.List(),
	}
}
