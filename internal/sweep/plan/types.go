package plan

import (
	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
)

// Plan describes a sweep: where its artifacts live, how they are named and
// which part of the configuration space it covers.
type Plan struct {
	Name         string           `yaml:"name"`
	BaseDir      string           `yaml:"base_dir"`
	StopwordList string           `yaml:"stopword_list"`
	Naming       NamingConfig     `yaml:"naming"`
	Dimensions   experiment.Space `yaml:"dimensions"`
	Command      string           `yaml:"command"`
	Concurrency  int              `yaml:"concurrency"`
}

type NamingConfig struct {
	Index   string `yaml:"index"`
	Ranking string `yaml:"ranking"`
}

// Enumerator builds the experiment enumerator the plan describes.
func (p *Plan) Enumerator() (*experiment.Enumerator, error) {
	return experiment.New(
		experiment.WithBaseDir(p.BaseDir),
		experiment.WithNaming(p.Naming.Index, p.Naming.Ranking),
		experiment.WithSpace(p.Dimensions),
		experiment.WithStopwordList(p.StopwordList),
	)
}
