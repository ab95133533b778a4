package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/internal/server/storage"
)

func TestCommentStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now().Truncate(time.Millisecond)
	created, err := s.CreateComment(ctx, models.CommentData{
		Content:    "nice post",
		BindingID:  3,
		IsReply:    false,
		CreateTime: now,
		ModifyTime: now,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := s.GetComment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "nice post", got.Content)
	assert.Equal(t, int64(3), got.BindingID)
	assert.False(t, got.IsReply)

	_, err = s.GetComment(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrCommentNotFound)
}

func TestCommentStorage_ReplyFlagRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	reply, err := s.CreateComment(ctx, models.CommentData{
		Content:    "a reply",
		BindingID:  7,
		IsReply:    true,
		CreateTime: now,
		ModifyTime: now,
	})
	require.NoError(t, err)

	got, err := s.GetComment(ctx, reply.ID)
	require.NoError(t, err)
	assert.True(t, got.IsReply)
	assert.Equal(t, int64(7), got.BindingID)
}

func TestCommentStorage_ListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now().Truncate(time.Millisecond)
	first, err := s.CreateComment(ctx, models.CommentData{Content: "one", BindingID: 1, CreateTime: now, ModifyTime: now})
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, models.CommentData{Content: "two", BindingID: 1, CreateTime: now, ModifyTime: now})
	require.NoError(t, err)

	comments, err := s.ListComments(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Content)

	first.Content = "edited"
	first.ModifyTime = now.Add(time.Minute)
	require.NoError(t, s.UpdateComment(ctx, first))

	got, err := s.GetComment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	require.NoError(t, s.DeleteComment(ctx, first.ID))
	_, err = s.GetComment(ctx, first.ID)
	require.ErrorIs(t, err, storage.ErrCommentNotFound)

	err = s.UpdateComment(ctx, models.CommentData{ID: 9999, Content: "ghost"})
	require.ErrorIs(t, err, storage.ErrCommentNotFound)
}
