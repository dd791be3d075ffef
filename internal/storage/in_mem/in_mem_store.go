package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[string][]experiment.Experiment
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[string][]experiment.Experiment),
	}
}

func (s *InMemStore) SaveBulk(ctx context.Context, sweep string, exps []experiment.Experiment) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage[sweep] = slices.Clone(exps)
	slog.Debug("Saved experiments to in-memory storage", "sweep", sweep, "count", len(exps))
	return nil
}

func (s *InMemStore) List(ctx context.Context, sweep string) ([]experiment.Experiment, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return slices.Clone(s.storage[sweep]), nil
}

func (s *InMemStore) Get(ctx context.Context, sweep string, id uuid.UUID) (experiment.Experiment, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	for _, exp := range s.storage[sweep] {
		if exp.ID == id {
			return exp, nil
		}
	}
	return experiment.Experiment{}, storage.ErrNotFound
}
