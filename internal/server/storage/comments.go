package storage

import (
	"context"

	"github.com/iudanet/draftsync/internal/models"
)

// CommentStorage defines interface for server-side comment persistence.
type CommentStorage interface {
	// CreateComment stores a new comment and returns it with the assigned id
	CreateComment(ctx context.Context, comment models.CommentData) (models.CommentData, error)

	// GetComment retrieves a comment by id.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	GetComment(ctx context.Context, id int64) (models.CommentData, error)

	// ListComments returns all comments ordered by id
	ListComments(ctx context.Context) ([]models.CommentData, error)

	// UpdateComment overwrites an existing comment.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	UpdateComment(ctx context.Context, comment models.CommentData) error

	// DeleteComment removes a comment by id.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	DeleteComment(ctx context.Context, id int64) error
}
