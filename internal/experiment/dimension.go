package experiment

import (
	"fmt"
	"strings"
)

// Stemming is the morphological normalization applied at index and query time.
type Stemming string

const (
	StemmingNone    Stemming = "no stemming"
	StemmingPorter  Stemming = "porter"
	StemmingKrovetz Stemming = "krovetz"
)

// Stemmings lists the stemming options in enumeration order.
var Stemmings = []Stemming{StemmingNone, StemmingPorter, StemmingKrovetz}

var stemmingLabels = map[Stemming]string{
	StemmingNone:    "No_stemming",
	StemmingPorter:  "Porter_stemming",
	StemmingKrovetz: "Krovetz_stemming",
}

func ParseStemming(s string) (Stemming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no stemming", "none", "no_stemming":
		return StemmingNone, nil
	case "porter", "porter_stemming":
		return StemmingPorter, nil
	case "krovetz", "krovetz_stemming":
		return StemmingKrovetz, nil
	default:
		return "", fmt.Errorf("invalid stemming: %q (must be one of none, porter, krovetz)", s)
	}
}

func (s Stemming) String() string {
	return string(s)
}

// Label returns the identifier used when building paths.
func (s Stemming) Label() string {
	return stemmingLabels[s]
}

func (s Stemming) Validate() error {
	if _, ok := stemmingLabels[s]; !ok {
		return fmt.Errorf("invalid stemming: %q", string(s))
	}
	return nil
}

func (s Stemming) index() int {
	for i, v := range Stemmings {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Stemming) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stemming) UnmarshalText(text []byte) error {
	v, err := ParseStemming(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Stopwords toggles stopword removal.
type Stopwords bool

const (
	StopwordsDisabled Stopwords = false
	StopwordsEnabled  Stopwords = true
)

// StopwordOptions lists the stopword options in enumeration order.
var StopwordOptions = []Stopwords{StopwordsDisabled, StopwordsEnabled}

// DefaultStopwordList is the token handed to the ranking tool when stopwords are enabled.
const DefaultStopwordList = "a"

func ParseStopwords(s string) (Stopwords, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "no", "off", "disabled", "no_stopwords":
		return StopwordsDisabled, nil
	case "true", "yes", "on", "enabled", "stopwords":
		return StopwordsEnabled, nil
	default:
		return false, fmt.Errorf("invalid stopwords option: %q (must be true or false)", s)
	}
}

func (s Stopwords) String() string {
	if s {
		return "true"
	}
	return "false"
}

func (s Stopwords) Label() string {
	if s {
		return "Stopwords"
	}
	return "No_stopwords"
}

// StopwordList returns nil when stopword removal is disabled and the list token otherwise.
func (s Stopwords) StopwordList(token string) *string {
	if !s {
		return nil
	}
	return &token
}

func (s Stopwords) index() int {
	if s {
		return 1
	}
	return 0
}

func (s Stopwords) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stopwords) UnmarshalText(text []byte) error {
	v, err := ParseStopwords(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Model is the retrieval model used by the ranking tool.
type Model string

const (
	ModelVSM  Model = "VSM"
	ModelBM25 Model = "BM25"
	ModelLM   Model = "LM"
)

// Models lists the retrieval models in enumeration order.
var Models = []Model{ModelVSM, ModelBM25, ModelLM}

var modelIDs = map[Model]int{
	ModelVSM:  1,
	ModelBM25: 2,
	ModelLM:   3,
}

func ParseModel(s string) (Model, error) {
	m := Model(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := modelIDs[m]; !ok {
		return "", fmt.Errorf("invalid model: %q (must be one of VSM, BM25, LM)", s)
	}
	return m, nil
}

func (m Model) String() string {
	return string(m)
}

func (m Model) Label() string {
	return string(m)
}

// ID is the numeric model selector understood by the ranking tool (1=VSM, 2=BM25, 3=LM).
func (m Model) ID() int {
	return modelIDs[m]
}

func (m Model) Validate() error {
	if _, ok := modelIDs[m]; !ok {
		return fmt.Errorf("invalid model: %q", string(m))
	}
	return nil
}

func (m Model) index() int {
	return m.ID() - 1
}

func (m Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Model) UnmarshalText(text []byte) error {
	v, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
