package rowstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbot/internal/domain/entities"
	"slotbot/internal/infrastructure/memstore"
)

type slowStore struct {
	*memstore.Store
}

func (s slowStore) ReadAll(ctx context.Context) ([][]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout_BoundsCalls(t *testing.T) {
	store := WithTimeout(slowStore{memstore.New()}, 20*time.Millisecond)
	_, err := store.ReadAll(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeout_ZeroIsPassthrough(t *testing.T) {
	inner := memstore.New()
	assert.Same(t, inner, WithTimeout(inner, 0))
}

func TestEnsureHeader(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	wrote, err := EnsureHeader(ctx, store)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = EnsureHeader(ctx, store)
	require.NoError(t, err)
	assert.False(t, wrote)

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{entities.Header}, rows)
}
