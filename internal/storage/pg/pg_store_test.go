package pg

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/trec-sweep/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *ConnectionPool) {
	t.Helper()
	ctx := context.Background()

	container := pkgtesting.NewPGContainerOrSkip(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := NewStore(pool)
	require.NoError(t, store.EnsureSchema(ctx))
	return store, pool
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, pool := newTestStore(t)

	assert.True(t, NewHealthChecker(pool).Healthy(ctx))

	e, err := experiment.New(experiment.WithBaseDir("/data/ap"))
	require.NoError(t, err)

	t.Run("save and list", func(t *testing.T) {
		require.NoError(t, store.SaveBulk(ctx, "ap", e.List()))

		got, err := store.List(ctx, "ap")
		require.NoError(t, err)
		assert.Equal(t, e.List(), got)
	})

	t.Run("get", func(t *testing.T) {
		want := e.List()[4]
		got, err := store.Get(ctx, "ap", want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "ap", uuid.New())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("save replaces sweep", func(t *testing.T) {
		require.NoError(t, store.SaveBulk(ctx, "ap", e.List()[:3]))

		got, err := store.List(ctx, "ap")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("ensure schema is idempotent", func(t *testing.T) {
		assert.NoError(t, store.EnsureSchema(ctx))
	})
}

func TestHealthChecker_NilPool(t *testing.T) {
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))
}

func TestHealthChecker_RequiresSchema(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewPGContainerOrSkip(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	hc := NewHealthChecker(pool)
	assert.False(t, hc.Healthy(ctx))

	require.NoError(t, NewStore(pool).EnsureSchema(ctx))
	assert.True(t, hc.Healthy(ctx))
}
