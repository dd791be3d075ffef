package experiment

import (
	"fmt"
	"slices"
)

// Space is the set of configuration values to sweep over.
type Space struct {
	Stemmings []Stemming  `yaml:"stemming" json:"stemming"`
	Stopwords []Stopwords `yaml:"stopwords" json:"stopwords"`
	Models    []Model     `yaml:"models" json:"models"`
}

// DefaultSpace is the full 3x2x3 configuration space.
func DefaultSpace() Space {
	return Space{
		Stemmings: slices.Clone(Stemmings),
		Stopwords: slices.Clone(StopwordOptions),
		Models:    slices.Clone(Models),
	}
}

func (s Space) Size() int {
	return len(s.Stemmings) * len(s.Stopwords) * len(s.Models)
}

func (s Space) Validate() error {
	if len(s.Stemmings) == 0 {
		return fmt.Errorf("space has no stemming options")
	}
	if len(s.Stopwords) == 0 {
		return fmt.Errorf("space has no stopword options")
	}
	if len(s.Models) == 0 {
		return fmt.Errorf("space has no models")
	}

	seenStem := make(map[Stemming]bool, len(s.Stemmings))
	for _, st := range s.Stemmings {
		if err := st.Validate(); err != nil {
			return err
		}
		if seenStem[st] {
			return fmt.Errorf("duplicate stemming option %q", st)
		}
		seenStem[st] = true
	}

	seenStop := make(map[Stopwords]bool, len(s.Stopwords))
	for _, sw := range s.Stopwords {
		if seenStop[sw] {
			return fmt.Errorf("duplicate stopwords option %q", sw.String())
		}
		seenStop[sw] = true
	}

	seenModel := make(map[Model]bool, len(s.Models))
	for _, m := range s.Models {
		if err := m.Validate(); err != nil {
			return err
		}
		if seenModel[m] {
			return fmt.Errorf("duplicate model %q", m)
		}
		seenModel[m] = true
	}

	return nil
}

// Normalize returns a copy with every dimension sorted into enumeration order.
// Empty dimensions fall back to their full option list.
func (s Space) Normalize() Space {
	out := Space{
		Stemmings: slices.Clone(s.Stemmings),
		Stopwords: slices.Clone(s.Stopwords),
		Models:    slices.Clone(s.Models),
	}
	if len(out.Stemmings) == 0 {
		out.Stemmings = slices.Clone(Stemmings)
	}
	if len(out.Stopwords) == 0 {
		out.Stopwords = slices.Clone(StopwordOptions)
	}
	if len(out.Models) == 0 {
		out.Models = slices.Clone(Models)
	}

	slices.SortFunc(out.Stemmings, func(a, b Stemming) int { return a.index() - b.index() })
	slices.SortFunc(out.Stopwords, func(a, b Stopwords) int { return a.index() - b.index() })
	slices.SortFunc(out.Models, func(a, b Model) int { return a.index() - b.index() })
	return out
}
