package naming

import (
	"fmt"
	"path/filepath"
)

const (
	IndexTemplateID   = "index"
	RankingTemplateID = "ranking"

	// DefaultIndexPattern and DefaultRankingPattern reproduce the names existing
	// index directories and run files already use. The ranking pattern has no
	// separator after "AP_ranking"; consumers depend on that exact spelling.
	DefaultIndexPattern   = "AP_index_{{stemming}}_{{stopwords}}"
	DefaultRankingPattern = "AP_ranking{{stemming}}_{{stopwords}}_{{model}}.txt"
)

// Placeholder names available to path templates.
const (
	ParamStemming  = "stemming"
	ParamStopwords = "stopwords"
	ParamModel     = "model"
	ParamModelID   = "model_id"
)

// PathBuilder renders index and ranking-output paths under a base directory.
type PathBuilder struct {
	baseDir  string
	registry *Registry
}

func NewPathBuilder(baseDir, indexPattern, rankingPattern string) (*PathBuilder, error) {
	if indexPattern == "" {
		indexPattern = DefaultIndexPattern
	}
	if rankingPattern == "" {
		rankingPattern = DefaultRankingPattern
	}

	index := &Template{ID: IndexTemplateID, Pattern: indexPattern}
	if err := index.Restrict(ParamStemming, ParamStopwords); err != nil {
		return nil, err
	}
	if err := requireParams(index, ParamStemming, ParamStopwords); err != nil {
		return nil, err
	}

	ranking := &Template{ID: RankingTemplateID, Pattern: rankingPattern}
	if err := ranking.Restrict(ParamStemming, ParamStopwords, ParamModel, ParamModelID); err != nil {
		return nil, err
	}
	if err := requireParams(ranking, ParamStemming, ParamStopwords); err != nil {
		return nil, err
	}
	if !hasParam(ranking, ParamModel) && !hasParam(ranking, ParamModelID) {
		return nil, fmt.Errorf("template %q must reference %s or %s", ranking.ID, ParamModel, ParamModelID)
	}

	registry := NewRegistry()
	if err := registry.Register(index); err != nil {
		return nil, err
	}
	if err := registry.Register(ranking); err != nil {
		return nil, err
	}

	return &PathBuilder{baseDir: baseDir, registry: registry}, nil
}

// DefaultPathBuilder uses the default patterns under baseDir.
func DefaultPathBuilder(baseDir string) *PathBuilder {
	b, err := NewPathBuilder(baseDir, DefaultIndexPattern, DefaultRankingPattern)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *PathBuilder) BaseDir() string {
	return b.baseDir
}

func (b *PathBuilder) IndexPath(stemmingLabel, stopwordsLabel string) (string, error) {
	name, err := b.registry.Render(IndexTemplateID, Params{
		ParamStemming:  stemmingLabel,
		ParamStopwords: stopwordsLabel,
	})
	if err != nil {
		return "", err
	}
	return b.join(name), nil
}

func (b *PathBuilder) OutputPath(stemmingLabel, stopwordsLabel, modelLabel string, modelID int) (string, error) {
	name, err := b.registry.Render(RankingTemplateID, Params{
		ParamStemming:  stemmingLabel,
		ParamStopwords: stopwordsLabel,
		ParamModel:     modelLabel,
		ParamModelID:   modelID,
	})
	if err != nil {
		return "", err
	}
	return b.join(name), nil
}

func (b *PathBuilder) join(name string) string {
	if b.baseDir == "" {
		return name
	}
	return filepath.Join(b.baseDir, name)
}

func requireParams(t *Template, names ...string) error {
	for _, n := range names {
		if !hasParam(t, n) {
			return fmt.Errorf("template %q must reference %s", t.ID, n)
		}
	}
	return nil
}

func hasParam(t *Template, name string) bool {
	for _, p := range t.RequiredParams() {
		if p == name {
			return true
		}
	}
	return false
}
