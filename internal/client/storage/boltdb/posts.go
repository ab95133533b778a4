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

// PostStore implements storage.PostStorage on BoltDB
type PostStore struct {
	db *bbolt.DB
}

var _ storage.PostStorage = (*PostStore)(nil)

// GetOne retrieves a post by id
func (s *PostStore) GetOne(ctx context.Context, id int64) (models.PostData, error) {
	post, err := s.MaybeGet(ctx, id)
	if err != nil {
		return models.PostData{}, err
	}
	if post == nil {
		return models.PostData{}, storage.ErrPostNotFound
	}
	return *post, nil
}

// MaybeGet retrieves a post by id, returning nil when absent
func (s *PostStore) MaybeGet(ctx context.Context, id int64) (*models.PostData, error) {
	var post *models.PostData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		data := bucket.Get(idKey(id))
		if data == nil {
			return nil
		}

		post = &models.PostData{}
		if err := json.Unmarshal(data, post); err != nil {
			return fmt.Errorf("failed to unmarshal post: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetAll returns every stored post
func (s *PostStore) GetAll(ctx context.Context) ([]models.PostData, error) {
	var posts []models.PostData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var post models.PostData
			if err := json.Unmarshal(v, &post); err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			posts = append(posts, post)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}

// Insert stores a new post
func (s *PostStore) Insert(ctx context.Context, post models.PostData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		key := idKey(post.ID)
		if bucket.Get(key) != nil {
			return storage.ErrDuplicateID
		}

		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save post: %w", err)
		}

		return nil
	})
}

// Update overwrites an existing post by id
func (s *PostStore) Update(ctx context.Context, post models.PostData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		key := idKey(post.ID)
		if bucket.Get(key) == nil {
			return storage.ErrPostNotFound
		}

		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		return nil
	})
}

// Delete removes a post by id. Deleting an absent id is a no-op.
func (s *PostStore) Delete(ctx context.Context, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		if err := bucket.Delete(idKey(id)); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		return nil
	})
}

// ChangeID remaps a post from oldID to newID in a single transaction
func (s *PostStore) ChangeID(ctx context.Context, oldID, newID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		oldKey := idKey(oldID)
		data := bucket.Get(oldKey)
		if data == nil {
			return storage.ErrPostNotFound
		}

		if bucket.Get(idKey(newID)) != nil {
			return storage.ErrDuplicateID
		}

		var post models.PostData
		if err := json.Unmarshal(data, &post); err != nil {
			return fmt.Errorf("failed to unmarshal post: %w", err)
		}
		post.ID = newID

		newData, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post: %w", err)
		}

		if err := bucket.Put(idKey(newID), newData); err != nil {
			return fmt.Errorf("failed to save remapped post: %w", err)
		}

		if err := bucket.Delete(oldKey); err != nil {
			return fmt.Errorf("failed to delete old post key: %w", err)
		}

		return nil
	})
}

// MinID returns the minimum id currently stored; found is false for an empty store
func (s *PostStore) MinID(ctx context.Context) (int64, bool, error) {
	var (
		minID int64
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}

		// Ключи — десятичные строки, лексикографический порядок bucket'а не
		// совпадает с числовым, поэтому сканируем все ключи.
		return bucket.ForEach(func(k, v []byte) error {
			id, err := strconv.ParseInt(string(k), 10, 64)
			if err != nil {
				return fmt.Errorf("malformed post key %q: %w", k, err)
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
