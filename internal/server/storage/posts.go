package storage

import (
	"context"

	"github.com/iudanet/draftsync/internal/models"
)

// PostStorage defines interface for server-side post persistence.
//
// The server is the id authority: CreatePost ignores any id sent by the
// client and returns the record with a freshly assigned positive id.
type PostStorage interface {
	// CreatePost stores a new post and returns it with the assigned id
	CreatePost(ctx context.Context, post models.PostData) (models.PostData, error)

	// GetPost retrieves a post by id.
	// Returns ErrPostNotFound if the post doesn't exist.
	GetPost(ctx context.Context, id int64) (models.PostData, error)

	// ListPosts returns all posts ordered by id
	ListPosts(ctx context.Context) ([]models.PostData, error)

	// UpdatePost overwrites an existing post.
	// Returns ErrPostNotFound if the post doesn't exist.
	UpdatePost(ctx context.Context, post models.PostData) error

	// DeletePost removes a post by id.
	// Returns ErrPostNotFound if the post doesn't exist.
	DeletePost(ctx context.Context, id int64) error
}
