package experiment

import (
	"fmt"

	"github.com/google/uuid"
)

// namespace seeds the name-based experiment ids so they stay stable across runs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("trec-sweep/experiment"))

// Experiment is one point of the sweep: an index variant paired with a retrieval model.
type Experiment struct {
	ID           uuid.UUID `json:"id"`
	Stemming     Stemming  `json:"stemming"`
	Stopwords    Stopwords `json:"stopwords"`
	Model        Model     `json:"model"`
	ModelID      int       `json:"model_id"`
	StopwordList *string   `json:"stopword_list"`
	IndexPath    string    `json:"index_path"`
	OutputPath   string    `json:"output_path"`
	RunID        string    `json:"run_id"`
}

// IndexVariant is one (stemming, stopwords) pair and the index it lives in.
type IndexVariant struct {
	Stemming     Stemming  `json:"stemming"`
	Stopwords    Stopwords `json:"stopwords"`
	StopwordList *string   `json:"stopword_list"`
	IndexPath    string    `json:"index_path"`
}

// ExperimentID derives the id of a configuration from its labels.
func ExperimentID(st Stemming, sw Stopwords, m Model) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(RunID(st, sw, m)))
}

// RunID is the run tag written into the last column of TREC run files.
func RunID(st Stemming, sw Stopwords, m Model) string {
	return "[" + st.Label() + "][" + sw.Label() + "][" + m.Label() + "]"
}

// Progress is the status line printed before an experiment runs.
func (e Experiment) Progress() string {
	return fmt.Sprintf("Running %s model with %s and %s...", e.Model.Label(), e.Stopwords.Label(), e.Stemming.Label())
}

// Variant returns the index variant the experiment searches.
func (e Experiment) Variant() IndexVariant {
	return IndexVariant{
		Stemming:     e.Stemming,
		Stopwords:    e.Stopwords,
		StopwordList: e.StopwordList,
		IndexPath:    e.IndexPath,
	}
}

func (v IndexVariant) Description() string {
	stop := "no stopwords"
	if v.Stopwords {
		stop = "stopwords"
	}
	return fmt.Sprintf("Indexing with %s stemming and %s", v.Stemming, stop)
}
