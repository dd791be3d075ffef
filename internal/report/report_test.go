package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/sweep/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnumerator(t *testing.T) *experiment.Enumerator {
	t.Helper()
	e, err := experiment.New(experiment.WithBaseDir("/data/ap"))
	require.NoError(t, err)
	return e
}

func TestWriteProgress(t *testing.T) {
	e := newEnumerator(t)

	var buf bytes.Buffer
	require.NoError(t, WriteProgress(&buf, e.All()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 18*5)

	assert.Equal(t, []string{
		"Running VSM model with No_stopwords and No_stemming...",
		"index_path:",
		"/data/ap/AP_index_No_stemming_No_stopwords",
		"output_path:",
		"/data/ap/AP_rankingNo_stemming_No_stopwords_VSM.txt",
	}, lines[:5])

	assert.Equal(t, []string{
		"Running LM model with Stopwords and Krovetz_stemming...",
		"index_path:",
		"/data/ap/AP_index_Krovetz_stemming_Stopwords",
		"output_path:",
		"/data/ap/AP_rankingKrovetz_stemming_Stopwords_LM.txt",
	}, lines[len(lines)-5:])
}

func TestWriteProgress_Idempotent(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteProgress(&first, newEnumerator(t).All()))
	require.NoError(t, WriteProgress(&second, newEnumerator(t).All()))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteVariants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariants(&buf, newEnumerator(t).Variants()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Indexing with no stemming stemming and no stopwords", lines[0])
	assert.Equal(t, "/data/ap/AP_index_No_stemming_No_stopwords", lines[1])
}

func TestWriteTable(t *testing.T) {
	m := NewManifest("ap", newEnumerator(t))

	var buf bytes.Buffer
	require.NoError(t, WriteTable(m, &buf))

	out := buf.String()
	assert.Contains(t, out, "=== Sweep: ap (18 experiments) ===")
	assert.Contains(t, out, "Porter_stemming")
	assert.Contains(t, out, "/data/ap/AP_rankingPorter_stemming_Stopwords_BM25.txt")
}

func TestWriteJSON(t *testing.T) {
	m := NewManifest("ap", newEnumerator(t))
	path := filepath.Join(t.TempDir(), "manifest.json")

	require.NoError(t, WriteJSON(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Name        string `json:"name"`
		BaseDir     string `json:"base_dir"`
		Variants    []json.RawMessage
		Experiments []struct {
			Model        string  `json:"model"`
			ModelID      int     `json:"model_id"`
			StopwordList *string `json:"stopword_list"`
			IndexPath    string  `json:"index_path"`
			OutputPath   string  `json:"output_path"`
		} `json:"experiments"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "ap", decoded.Name)
	assert.Equal(t, "/data/ap", decoded.BaseDir)
	assert.Len(t, decoded.Variants, 6)
	require.Len(t, decoded.Experiments, 18)
	assert.Equal(t, "VSM", decoded.Experiments[0].Model)
	assert.Equal(t, 1, decoded.Experiments[0].ModelID)
	assert.Nil(t, decoded.Experiments[0].StopwordList)
	require.NotNil(t, decoded.Experiments[3].StopwordList)
	assert.Equal(t, "a", *decoded.Experiments[3].StopwordList)
}

func TestWriteJSON_MissingDir(t *testing.T) {
	m := NewManifest("ap", newEnumerator(t))
	err := WriteJSON(m, filepath.Join(t.TempDir(), "missing", "manifest.json"))
	assert.ErrorContains(t, err, "write manifest")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(NewManifest("ap", newEnumerator(t)), &buf))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestSummarizeOutcomes(t *testing.T) {
	exps := newEnumerator(t).List()
	s := &runner.Summary{}
	for i, exp := range exps {
		res := runner.ExperimentResult{Experiment: exp, Outcome: runner.OutcomeOK}
		switch {
		case exp.Model == experiment.ModelLM:
			res.Outcome = runner.OutcomeError
			res.Error = errors.New("failed")
		case i > 12:
			res.Outcome = runner.OutcomeCanceled
		}
		s.Results = append(s.Results, res)
	}

	rows := SummarizeOutcomes(s)
	require.Len(t, rows, 3)
	assert.Equal(t, OutcomeRow{Model: experiment.ModelVSM, OK: 5, Canceled: 1}, rows[0])
	assert.Equal(t, OutcomeRow{Model: experiment.ModelBM25, OK: 4, Canceled: 2}, rows[1])
	assert.Equal(t, OutcomeRow{Model: experiment.ModelLM, Errors: 6}, rows[2])

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryTable(rows, &buf))
	assert.Contains(t, buf.String(), "Canceled")
}
