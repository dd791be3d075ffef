package experiment

import (
	"fmt"
	"iter"

	"github.com/DjordjeVuckovic/trec-sweep/internal/naming"
	"github.com/google/uuid"
)

// Enumerator walks the configuration space in a fixed order: stemming, then
// stopwords, then model. The index path is built once per (stemming,
// stopwords) pair and shared by the models nested under it.
type Enumerator struct {
	space        Space
	paths        *naming.PathBuilder
	stopwordList string

	variants    []IndexVariant
	experiments []Experiment
}

type Option func(*options)

type options struct {
	baseDir        string
	indexPattern   string
	rankingPattern string
	space          *Space
	stopwordList   string
}

func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithNaming overrides the index and ranking file name patterns.
func WithNaming(indexPattern, rankingPattern string) Option {
	return func(o *options) {
		o.indexPattern = indexPattern
		o.rankingPattern = rankingPattern
	}
}

// WithSpace restricts the sweep to a subset of the configuration space.
func WithSpace(s Space) Option {
	return func(o *options) { o.space = &s }
}

func WithStopwordList(token string) Option {
	return func(o *options) { o.stopwordList = token }
}

func New(opts ...Option) (*Enumerator, error) {
	o := options{stopwordList: DefaultStopwordList}
	for _, opt := range opts {
		opt(&o)
	}

	space := DefaultSpace()
	if o.space != nil {
		if err := o.space.Normalize().Validate(); err != nil {
			return nil, fmt.Errorf("invalid space: %w", err)
		}
		space = o.space.Normalize()
	}
	if o.stopwordList == "" {
		return nil, fmt.Errorf("stopword list token must not be empty")
	}

	paths, err := naming.NewPathBuilder(o.baseDir, o.indexPattern, o.rankingPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid naming: %w", err)
	}

	e := &Enumerator{
		space:        space,
		paths:        paths,
		stopwordList: o.stopwordList,
	}
	if err := e.build(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enumerator) build() error {
	e.variants = make([]IndexVariant, 0, len(e.space.Stemmings)*len(e.space.Stopwords))
	e.experiments = make([]Experiment, 0, e.space.Size())

	for _, st := range e.space.Stemmings {
		for _, sw := range e.space.Stopwords {
			indexPath, err := e.paths.IndexPath(st.Label(), sw.Label())
			if err != nil {
				return fmt.Errorf("build index path: %w", err)
			}
			variant := IndexVariant{
				Stemming:     st,
				Stopwords:    sw,
				StopwordList: sw.StopwordList(e.stopwordList),
				IndexPath:    indexPath,
			}
			e.variants = append(e.variants, variant)

			for _, m := range e.space.Models {
				outputPath, err := e.paths.OutputPath(st.Label(), sw.Label(), m.Label(), m.ID())
				if err != nil {
					return fmt.Errorf("build output path: %w", err)
				}
				e.experiments = append(e.experiments, Experiment{
					ID:           ExperimentID(st, sw, m),
					Stemming:     st,
					Stopwords:    sw,
					Model:        m,
					ModelID:      m.ID(),
					StopwordList: variant.StopwordList,
					IndexPath:    indexPath,
					OutputPath:   outputPath,
					RunID:        RunID(st, sw, m),
				})
			}
		}
	}

	seen := make(map[string]bool, len(e.experiments))
	for _, exp := range e.experiments {
		if seen[exp.OutputPath] {
			return fmt.Errorf("naming produces duplicate output path %q", exp.OutputPath)
		}
		seen[exp.OutputPath] = true
	}
	return nil
}

func (e *Enumerator) Space() Space {
	return e.space
}

func (e *Enumerator) BaseDir() string {
	return e.paths.BaseDir()
}

func (e *Enumerator) Len() int {
	return len(e.experiments)
}

// All yields experiments in enumeration order.
func (e *Enumerator) All() iter.Seq[Experiment] {
	return func(yield func(Experiment) bool) {
		for _, exp := range e.experiments {
			if !yield(exp) {
				return
			}
		}
	}
}

// List returns a copy of every experiment in enumeration order.
func (e *Enumerator) List() []Experiment {
	out := make([]Experiment, len(e.experiments))
	copy(out, e.experiments)
	return out
}

// Variants returns the index variants in enumeration order.
func (e *Enumerator) Variants() []IndexVariant {
	out := make([]IndexVariant, len(e.variants))
	copy(out, e.variants)
	return out
}

func (e *Enumerator) Find(id uuid.UUID) (Experiment, bool) {
	for _, exp := range e.experiments {
		if exp.ID == id {
			return exp, true
		}
	}
	return Experiment{}, false
}

// Filter is a predicate over experiments. Zero-valued fields match anything.
type Filter struct {
	Stemming  *Stemming
	Stopwords *Stopwords
	Model     *Model
}

func (f Filter) Match(exp Experiment) bool {
	if f.Stemming != nil && *f.Stemming != exp.Stemming {
		return false
	}
	if f.Stopwords != nil && *f.Stopwords != exp.Stopwords {
		return false
	}
	if f.Model != nil && *f.Model != exp.Model {
		return false
	}
	return true
}

// Select yields the experiments matching f, in enumeration order.
func (e *Enumerator) Select(f Filter) iter.Seq[Experiment] {
	return func(yield func(Experiment) bool) {
		for exp := range e.All() {
			if f.Match(exp) && !yield(exp) {
				return
			}
		}
	}
}
