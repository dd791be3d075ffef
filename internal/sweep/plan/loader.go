package plan

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/trec-sweep/internal/apperr"
	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/naming"
	"gopkg.in/yaml.v3"
)

const DefaultName = "trec-sweep"

func LoadFromFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, apperr.NewValidationWrap("parse plan YAML", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default is the plan used when no plan file is given: the full space with the
// default names under baseDir.
func Default(baseDir string) *Plan {
	p := &Plan{BaseDir: baseDir}
	p.applyDefaults()
	return p
}

// Validate fills defaults and checks the plan. It does not touch the filesystem;
// see CheckBaseDir.
func (p *Plan) Validate() error {
	p.applyDefaults()

	if p.Concurrency < 0 {
		return apperr.NewFieldValidation("concurrency", fmt.Sprintf("must not be negative, got %d", p.Concurrency), nil)
	}
	if err := p.Dimensions.Validate(); err != nil {
		return apperr.NewFieldValidation("dimensions", "invalid configuration space", err)
	}
	if _, err := naming.NewPathBuilder(p.BaseDir, p.Naming.Index, p.Naming.Ranking); err != nil {
		return apperr.NewFieldValidation("naming", "invalid path template", err)
	}
	if p.Command != "" {
		if _, err := ParseCommand(p.Command); err != nil {
			return apperr.NewFieldValidation("command", "invalid command template", err)
		}
	}
	return nil
}

func (p *Plan) applyDefaults() {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.StopwordList == "" {
		p.StopwordList = experiment.DefaultStopwordList
	}
	if p.Naming.Index == "" {
		p.Naming.Index = naming.DefaultIndexPattern
	}
	if p.Naming.Ranking == "" {
		p.Naming.Ranking = naming.DefaultRankingPattern
	}
	if p.Concurrency == 0 {
		p.Concurrency = 1
	}
	p.Dimensions = p.Dimensions.Normalize()
}
