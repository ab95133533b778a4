// Package editor implements the local edit sessions for posts and comments.
//
// A session is the only component that creates records, and it always creates
// them with a local placeholder id (zero or negative). Placeholder ids are
// minted strictly below every id already present in the store, so concurrent
// unsynced drafts never collide and a record can always be told apart from a
// server-owned one by the sign of its id.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/internal/validation"
)

// nextPlaceholderID выделяет следующий локальный id: на единицу меньше
// минимального из существующих, но не выше -1.
func nextPlaceholderID(ctx context.Context, min func(context.Context) (int64, bool, error)) (int64, error) {
	minID, found, err := min(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan min id: %w", err)
	}
	if !found || minID > 0 {
		return -1, nil
	}
	return minID - 1, nil
}

// PostSession mediates all local writes to post drafts.
type PostSession struct {
	store  storage.PostStorage
	logger *slog.Logger
}

func NewPostSession(store storage.PostStorage, logger *slog.Logger) *PostSession {
	return &PostSession{
		store:  store,
		logger: logger,
	}
}

// Create validates the draft, mints a placeholder id and persists the post.
func (s *PostSession) Create(ctx context.Context, title, body string) (*models.PostData, error) {
	if err := validation.ValidatePostTitle(title); err != nil {
		return nil, err
	}
	if err := validation.ValidatePostBody(body); err != nil {
		return nil, err
	}

	id, err := nextPlaceholderID(ctx, s.store.MinID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := models.PostData{
		ID:         id,
		Title:      title,
		Body:       body,
		CreateTime: now,
		ModifyTime: now,
	}
	if err := s.store.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	s.logger.Info("post draft created", "id", id)
	return &post, nil
}

// Load returns the stored post or storage.ErrPostNotFound.
func (s *PostSession) Load(ctx context.Context, id int64) (*models.PostData, error) {
	post, err := s.store.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the post's content. When the new content hashes identically
// to what is already stored the call is a no-op: nothing is written and the
// second return value is false.
func (s *PostSession) Update(ctx context.Context, id int64, title, body string) (*models.PostData, bool, error) {
	if err := validation.ValidatePostTitle(title); err != nil {
		return nil, false, err
	}
	if err := validation.ValidatePostBody(body); err != nil {
		return nil, false, err
	}

	stored, err := s.store.GetOne(ctx, id)
	if err != nil {
		return nil, false, err
	}

	candidate := stored
	candidate.Title = title
	candidate.Body = body
	candidate.ModifyTime = time.Now()

	// Одинаковый хеш значит одинаковый контент: время правки не трогаем
	if candidate.ContentHash() == stored.ContentHash() {
		s.logger.Info("post edit is a no-op", "id", id)
		return nil, false, nil
	}

	if err := s.store.Update(ctx, candidate); err != nil {
		return nil, false, fmt.Errorf("update post: %w", err)
	}

	s.logger.Info("post draft updated", "id", id)
	return &candidate, true, nil
}

// Delete removes the post draft from the local store.
func (s *PostSession) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.logger.Info("post draft deleted", "id", id)
	return nil
}

// CommentSession mediates all local writes to comment drafts.
type CommentSession struct {
	store  storage.CommentStorage
	logger *slog.Logger
}

func NewCommentSession(store storage.CommentStorage, logger *slog.Logger) *CommentSession {
	return &CommentSession{
		store:  store,
		logger: logger,
	}
}

// Create validates the draft, mints a placeholder id and persists the comment.
// bindingID points at a post for top-level comments and at the parent comment
// for replies; negative binding ids are legal and mean the target is itself
// still unsynced.
func (s *CommentSession) Create(ctx context.Context, content string, bindingID int64, isReply bool) (*models.CommentData, error) {
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, err
	}
	if err := validation.ValidateBindingID(bindingID); err != nil {
		return nil, err
	}

	id, err := nextPlaceholderID(ctx, s.store.MinID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := models.CommentData{
		ID:         id,
		Content:    content,
		BindingID:  bindingID,
		IsReply:    isReply,
		CreateTime: now,
		ModifyTime: now,
	}
	if err := s.store.Insert(ctx, comment); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	s.logger.Info("comment draft created", "id", id, "binding_id", bindingID, "is_reply", isReply)
	return &comment, nil
}

// Load returns the stored comment or storage.ErrCommentNotFound.
func (s *CommentSession) Load(ctx context.Context, id int64) (*models.CommentData, error) {
	comment, err := s.store.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update replaces the comment's text. The binding and reply flag are fixed at
// creation and cannot be edited. Returns false without writing when the new
// content hashes identically to the stored one.
func (s *CommentSession) Update(ctx context.Context, id int64, content string) (*models.CommentData, bool, error) {
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, false, err
	}

	stored, err := s.store.GetOne(ctx, id)
	if err != nil {
		return nil, false, err
	}

	candidate := stored
	candidate.Content = content
	candidate.ModifyTime = time.Now()

	if candidate.ContentHash() == stored.ContentHash() {
		s.logger.Info("comment edit is a no-op", "id", id)
		return nil, false, nil
	}

	if err := s.store.Update(ctx, candidate); err != nil {
		return nil, false, fmt.Errorf("update comment: %w", err)
	}

	s.logger.Info("comment draft updated", "id", id)
	return &candidate, true, nil
}

// Delete removes the comment draft from the local store.
func (s *CommentSession) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.logger.Info("comment draft deleted", "id", id)
	return nil
}
