package experiment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStemming(t *testing.T) {
	tests := []struct {
		input   string
		want    Stemming
		wantErr bool
	}{
		{input: "no stemming", want: StemmingNone},
		{input: "none", want: StemmingNone},
		{input: "Porter", want: StemmingPorter},
		{input: " krovetz ", want: StemmingKrovetz},
		{input: "Krovetz_stemming", want: StemmingKrovetz},
		{input: "snowball", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStemming(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStopwords(t *testing.T) {
	for _, in := range []string{"true", "YES", "enabled"} {
		got, err := ParseStopwords(in)
		require.NoError(t, err)
		assert.Equal(t, StopwordsEnabled, got)
	}
	for _, in := range []string{"false", "off", "No_stopwords"} {
		got, err := ParseStopwords(in)
		require.NoError(t, err)
		assert.Equal(t, StopwordsDisabled, got)
	}
	_, err := ParseStopwords("maybe")
	assert.Error(t, err)
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("bm25")
	require.NoError(t, err)
	assert.Equal(t, ModelBM25, m)

	_, err = ParseModel("DFR")
	assert.ErrorContains(t, err, "invalid model")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "No_stemming", StemmingNone.Label())
	assert.Equal(t, "Porter_stemming", StemmingPorter.Label())
	assert.Equal(t, "Krovetz_stemming", StemmingKrovetz.Label())
	assert.Equal(t, "No_stopwords", StopwordsDisabled.Label())
	assert.Equal(t, "Stopwords", StopwordsEnabled.Label())
	assert.Equal(t, "VSM", ModelVSM.Label())
	assert.Equal(t, "BM25", ModelBM25.Label())
	assert.Equal(t, "LM", ModelLM.Label())
}

func TestModel_ID(t *testing.T) {
	assert.Equal(t, 1, ModelVSM.ID())
	assert.Equal(t, 2, ModelBM25.ID())
	assert.Equal(t, 3, ModelLM.ID())
	assert.Equal(t, 0, Model("DFR").ID())
}

func TestStopwords_StopwordList(t *testing.T) {
	assert.Nil(t, StopwordsDisabled.StopwordList("a"))

	list := StopwordsEnabled.StopwordList("a")
	require.NotNil(t, list)
	assert.Equal(t, "a", *list)
}

func TestSpace_YAML(t *testing.T) {
	data := `
stemming: [porter, none]
stopwords: [true]
models: [lm, VSM]
`
	var s Space
	require.NoError(t, yaml.Unmarshal([]byte(data), &s))
	assert.Equal(t, []Stemming{StemmingPorter, StemmingNone}, s.Stemmings)
	assert.Equal(t, []Stopwords{StopwordsEnabled}, s.Stopwords)
	assert.Equal(t, []Model{ModelLM, ModelVSM}, s.Models)

	n := s.Normalize()
	assert.Equal(t, []Stemming{StemmingNone, StemmingPorter}, n.Stemmings)
	assert.Equal(t, []Model{ModelVSM, ModelLM}, n.Models)
	assert.Equal(t, 4, n.Size())
}

func TestSpace_YAML_InvalidValue(t *testing.T) {
	var s Space
	err := yaml.Unmarshal([]byte("models: [DFR]"), &s)
	assert.ErrorContains(t, err, "invalid model")
}

func TestExperiment_JSON(t *testing.T) {
	exp := Experiment{
		Stemming:  StemmingPorter,
		Stopwords: StopwordsDisabled,
		Model:     ModelLM,
		ModelID:   3,
	}

	data, err := json.Marshal(exp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stemming":"porter"`)
	assert.Contains(t, string(data), `"stopwords":"false"`)
	assert.Contains(t, string(data), `"stopword_list":null`)
}

func TestSpace_Validate(t *testing.T) {
	assert.NoError(t, DefaultSpace().Validate())
	assert.Equal(t, 18, DefaultSpace().Size())

	assert.ErrorContains(t, Space{Stopwords: StopwordOptions, Models: Models}.Validate(), "no stemming")
	assert.ErrorContains(t, Space{
		Stemmings: Stemmings,
		Stopwords: []Stopwords{true, true},
		Models:    Models,
	}.Validate(), "duplicate stopwords")
}
