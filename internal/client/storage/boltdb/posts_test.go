package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testPost(id int64, title, body string) models.PostData {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return models.PostData{
		ID:         id,
		Title:      title,
		Body:       body,
		CreateTime: now,
		ModifyTime: now,
	}
}

func TestPostStore_InsertGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	post := testPost(-1, "Draft", "Hello")
	require.NoError(t, posts.Insert(ctx, post))

	// Повторная вставка с тем же id запрещена
	err := posts.Insert(ctx, post)
	assert.ErrorIs(t, err, storage.ErrDuplicateID)

	got, err := posts.GetOne(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, post, got)

	post.Body = "Hello, world"
	require.NoError(t, posts.Update(ctx, post))

	got, err = posts.GetOne(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", got.Body)

	require.NoError(t, posts.Delete(ctx, -1))

	_, err = posts.GetOne(ctx, -1)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)

	// Повторное удаление — no-op
	require.NoError(t, posts.Delete(ctx, -1))
}

func TestPostStore_MaybeGet(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	got, err := posts.MaybeGet(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, posts.Insert(ctx, testPost(42, "Synced", "Body")))

	got, err = posts.MaybeGet(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ID)
}

func TestPostStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	err := posts.Update(ctx, testPost(7, "Missing", ""))
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestPostStore_ChangeID(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	require.NoError(t, posts.Insert(ctx, testPost(-1, "Draft", "Hello")))

	require.NoError(t, posts.ChangeID(ctx, -1, 10))

	// Старый id исчез, новый содержит ту же запись с обновленным id
	gone, err := posts.MaybeGet(ctx, -1)
	require.NoError(t, err)
	assert.Nil(t, gone)

	got, err := posts.GetOne(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "Draft", got.Title)

	all, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostStore_ChangeID_Missing(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	err := posts.ChangeID(ctx, -5, 5)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestPostStore_MinID(t *testing.T) {
	ctx := context.Background()
	posts := createTestStorage(t).Posts()

	_, found, err := posts.MinID(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	for _, id := range []int64{-3, -1, 2} {
		require.NoError(t, posts.Insert(ctx, testPost(id, "p", "b")))
	}

	minID, found, err := posts.MinID(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(-3), minID)
}
