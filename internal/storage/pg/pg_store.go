package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS experiments (
    sweep         TEXT        NOT NULL,
    id            UUID        NOT NULL,
    position      INT         NOT NULL,
    stemming      TEXT        NOT NULL,
    stopwords     BOOLEAN     NOT NULL,
    model         TEXT        NOT NULL,
    model_id      INT         NOT NULL,
    stopword_list TEXT,
    index_path    TEXT        NOT NULL,
    output_path   TEXT        NOT NULL,
    run_id        TEXT        NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (sweep, id),
    UNIQUE (sweep, output_path)
);
`

var experimentColumns = []string{
	"sweep", "id", "position", "stemming", "stopwords", "model", "model_id",
	"stopword_list", "index_path", "output_path", "run_id",
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{db: pool.conn}
}

// EnsureSchema creates the experiments table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create experiments table: %w", err)
	}
	return nil
}

func (s *Store) SaveBulk(ctx context.Context, sweep string, exps []experiment.Experiment) error {
	rows := make([][]any, len(exps))
	for i, e := range exps {
		rows[i] = []any{
			sweep,
			e.ID,
			i,
			e.Stemming.String(),
			bool(e.Stopwords),
			e.Model.String(),
			e.ModelID,
			e.StopwordList,
			e.IndexPath,
			e.OutputPath,
			e.RunID,
		}
	}

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM experiments WHERE sweep = $1`, sweep); err != nil {
			return fmt.Errorf("failed to clear sweep: %w", err)
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"experiments"}, experimentColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("failed to bulk insert experiments: %w", err)
		}
		return nil
	})
}

const selectExperiments = `
SELECT id, stemming, stopwords, model, model_id, stopword_list, index_path, output_path, run_id
FROM experiments
`

func (s *Store) List(ctx context.Context, sweep string) ([]experiment.Experiment, error) {
	rows, err := s.db.Query(ctx, selectExperiments+`WHERE sweep = $1 ORDER BY position`, sweep)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiments: %w", err)
	}

	exps, err := pgx.CollectRows(rows, scanExperiment)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiments: %w", err)
	}
	return exps, nil
}

func (s *Store) Get(ctx context.Context, sweep string, id uuid.UUID) (experiment.Experiment, error) {
	rows, err := s.db.Query(ctx, selectExperiments+`WHERE sweep = $1 AND id = $2`, sweep, id)
	if err != nil {
		return experiment.Experiment{}, fmt.Errorf("failed to query experiment: %w", err)
	}

	exp, err := pgx.CollectExactlyOneRow(rows, scanExperiment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return experiment.Experiment{}, storage.ErrNotFound
		}
		return experiment.Experiment{}, fmt.Errorf("failed to read experiment: %w", err)
	}
	return exp, nil
}

func scanExperiment(row pgx.CollectableRow) (experiment.Experiment, error) {
	var (
		e         experiment.Experiment
		stemming  string
		stopwords bool
		model     string
	)
	err := row.Scan(&e.ID, &stemming, &stopwords, &model, &e.ModelID, &e.StopwordList, &e.IndexPath, &e.OutputPath, &e.RunID)
	if err != nil {
		return e, err
	}

	if e.Stemming, err = experiment.ParseStemming(stemming); err != nil {
		return e, err
	}
	if e.Model, err = experiment.ParseModel(model); err != nil {
		return e, err
	}
	e.Stopwords = experiment.Stopwords(stopwords)
	return e, nil
}
