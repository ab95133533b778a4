package storage

import (
	"context"

	"github.com/iudanet/draftsync/internal/models"
)

//go:generate moq -out commentstorage_mock.go . CommentStorage

// CommentStorage defines the local store adapter for comment drafts.
type CommentStorage interface {
	// GetOne retrieves a comment by id.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	GetOne(ctx context.Context, id int64) (models.CommentData, error)

	// MaybeGet retrieves a comment by id, returning nil (not an error) when absent.
	MaybeGet(ctx context.Context, id int64) (*models.CommentData, error)

	// GetAll returns every stored comment.
	GetAll(ctx context.Context) ([]models.CommentData, error)

	// Insert stores a new comment. Returns ErrDuplicateID if the id is taken.
	Insert(ctx context.Context, comment models.CommentData) error

	// Update overwrites an existing comment by id.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	Update(ctx context.Context, comment models.CommentData) error

	// Delete removes a comment by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// ChangeID remaps a comment from oldID to newID.
	ChangeID(ctx context.Context, oldID, newID int64) error

	// ChangeBindingID rewrites the binding of every comment whose BindingID
	// equals oldID and whose IsReply flag matches isReply. Used to cascade an
	// id remap of the bound post (isReply=false) or parent comment (isReply=true).
	ChangeBindingID(ctx context.Context, oldID, newID int64, isReply bool) error

	// MinID returns the minimum id currently stored.
	// The second return value is false when the store is empty.
	MinID(ctx context.Context) (int64, bool, error)
}
