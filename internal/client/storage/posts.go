package storage

import (
	"context"

	"github.com/iudanet/draftsync/internal/models"
)

//go:generate moq -out poststorage_mock.go . PostStorage

// PostStorage defines the local store adapter for post drafts.
//
// The local store is the single source of truth for what is pending sync:
// any record whose id is non-positive exists only on this device.
type PostStorage interface {
	// GetOne retrieves a post by id.
	// Returns ErrPostNotFound if the post doesn't exist.
	GetOne(ctx context.Context, id int64) (models.PostData, error)

	// MaybeGet retrieves a post by id, returning nil (not an error) when absent.
	MaybeGet(ctx context.Context, id int64) (*models.PostData, error)

	// GetAll returns every stored post.
	GetAll(ctx context.Context) ([]models.PostData, error)

	// Insert stores a new post. Returns ErrDuplicateID if the id is taken.
	Insert(ctx context.Context, post models.PostData) error

	// Update overwrites an existing post by id.
	// Returns ErrPostNotFound if the post doesn't exist.
	Update(ctx context.Context, post models.PostData) error

	// Delete removes a post by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// ChangeID remaps a post from oldID to newID, used when a local
	// placeholder id is replaced by the server-assigned id.
	ChangeID(ctx context.Context, oldID, newID int64) error

	// MinID returns the minimum id currently stored.
	// The second return value is false when the store is empty.
	MinID(ctx context.Context) (int64, bool, error)
}
