package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_FetchAllMostRecentFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))
	require.NoError(t, store.Save(ctx, "third"))

	terms, err := store.FetchAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, terms)
}

func TestHistoryStore_SaveDuplicateMovesToFront(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))
	require.NoError(t, store.Save(ctx, "first"))

	terms, err := store.FetchAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, terms)
}

func TestHistoryStore_SeqBreaksEqualTimestamps(t *testing.T) {
	store := NewHistoryStore()
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Now = func() time.Time { return frozen }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a"))
	require.NoError(t, store.Save(ctx, "b"))
	require.NoError(t, store.Save(ctx, "c"))

	terms, err := store.FetchAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, terms)
}

func TestHistoryStore_Delete(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "keep"))
	require.NoError(t, store.Save(ctx, "drop"))

	require.NoError(t, store.Delete(ctx, "drop"))

	terms, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, terms)
}

func TestHistoryStore_DeleteAll(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a"))
	require.NoError(t, store.Save(ctx, "b"))

	require.NoError(t, store.DeleteAll(ctx))

	terms, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}
