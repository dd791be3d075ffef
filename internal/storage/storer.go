package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/google/uuid"
)

// Storer persists the experiments of a sweep so downstream workers can pick them up.
type Storer interface {
	// SaveBulk replaces the stored experiments of sweep with exps.
	SaveBulk(ctx context.Context, sweep string, exps []experiment.Experiment) error
}

type Reader interface {
	// List returns the experiments of sweep in enumeration order.
	List(ctx context.Context, sweep string) ([]experiment.Experiment, error)
	Get(ctx context.Context, sweep string, id uuid.UUID) (experiment.Experiment, error)
}

type Store interface {
	Storer
	Reader
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var ErrNotFound = errors.New("experiment not found")

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
