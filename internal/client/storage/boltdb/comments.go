package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

// CommentStore implements storage.CommentStorage on BoltDB
type CommentStore struct {
	db *bbolt.DB
}

var _ storage.CommentStorage = (*CommentStore)(nil)

// GetOne retrieves a comment by id
func (s *CommentStore) GetOne(ctx context.Context, id int64) (models.CommentData, error) {
	comment, err := s.MaybeGet(ctx, id)
	if err != nil {
		return models.CommentData{}, err
	}
	if comment == nil {
		return models.CommentData{}, storage.ErrCommentNotFound
	}
	return *comment, nil
}

// MaybeGet retrieves a comment by id, returning nil when absent
func (s *CommentStore) MaybeGet(ctx context.Context, id int64) (*models.CommentData, error) {
	var comment *models.CommentData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		data := bucket.Get(idKey(id))
		if data == nil {
			return nil
		}

		comment = &models.CommentData{}
		if err := json.Unmarshal(data, comment); err != nil {
			return fmt.Errorf("failed to unmarshal comment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// GetAll returns every stored comment
func (s *CommentStore) GetAll(ctx context.Context) ([]models.CommentData, error) {
	var comments []models.CommentData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var comment models.CommentData
			if err := json.Unmarshal(v, &comment); err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			comments = append(comments, comment)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// Insert stores a new comment
func (s *CommentStore) Insert(ctx context.Context, comment models.CommentData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		key := idKey(comment.ID)
		if bucket.Get(key) != nil {
			return storage.ErrDuplicateID
		}

		data, err := json.Marshal(comment)
		if err != nil {
			return fmt.Errorf("failed to marshal comment: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}

		return nil
	})
}

// Update overwrites an existing comment by id
func (s *CommentStore) Update(ctx context.Context, comment models.CommentData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		key := idKey(comment.ID)
		if bucket.Get(key) == nil {
			return storage.ErrCommentNotFound
		}

		data, err := json.Marshal(comment)
		if err != nil {
			return fmt.Errorf("failed to marshal comment: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update comment: %w", err)
		}

		return nil
	})
}

// Delete removes a comment by id. Deleting an absent id is a no-op.
func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		if err := bucket.Delete(idKey(id)); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		return nil
	})
}

// ChangeID remaps a comment from oldID to newID in a single transaction
func (s *CommentStore) ChangeID(ctx context.Context, oldID, newID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		oldKey := idKey(oldID)
		data := bucket.Get(oldKey)
		if data == nil {
			return storage.ErrCommentNotFound
		}

		if bucket.Get(idKey(newID)) != nil {
			return storage.ErrDuplicateID
		}

		var comment models.CommentData
		if err := json.Unmarshal(data, &comment); err != nil {
			return fmt.Errorf("failed to unmarshal comment: %w", err)
		}
		comment.ID = newID

		newData, err := json.Marshal(comment)
		if err != nil {
			return fmt.Errorf("failed to marshal comment: %w", err)
		}

		if err := bucket.Put(idKey(newID), newData); err != nil {
			return fmt.Errorf("failed to save remapped comment: %w", err)
		}

		if err := bucket.Delete(oldKey); err != nil {
			return fmt.Errorf("failed to delete old comment key: %w", err)
		}

		return nil
	})
}

// ChangeBindingID rewrites bindings from oldID to newID for comments whose
// IsReply flag matches isReply. All rewrites happen in one transaction.
func (s *CommentStore) ChangeBindingID(ctx context.Context, oldID, newID int64, isReply bool) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		// Сначала собираем подходящие записи, потом перезаписываем:
		// мутация bucket'а внутри ForEach не допускается.
		var matched []models.CommentData
		err := bucket.ForEach(func(k, v []byte) error {
			var comment models.CommentData
			if err := json.Unmarshal(v, &comment); err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			if comment.BindingID == oldID && comment.IsReply == isReply {
				matched = append(matched, comment)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, comment := range matched {
			comment.BindingID = newID

			data, err := json.Marshal(comment)
			if err != nil {
				return fmt.Errorf("failed to marshal comment: %w", err)
			}

			if err := bucket.Put(idKey(comment.ID), data); err != nil {
				return fmt.Errorf("failed to rewrite comment binding: %w", err)
			}
		}

		return nil
	})
}

// MinID returns the minimum id currently stored; found is false for an empty store
func (s *CommentStore) MinID(ctx context.Context) (int64, bool, error) {
	var (
		minID int64
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketComments)
		if bucket == nil {
			return fmt.Errorf("comments bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			id, err := strconv.ParseInt(string(k), 10, 64)
			if err != nil {
				return fmt.Errorf("malformed comment key %q: %w", k, err)
			}
			if !found || id < minID {
				minID = id
				found = true
			}
			return nil
		})
	})
	if err != nil {
		return 0, false, err
	}

	return minID, found, nil
}
