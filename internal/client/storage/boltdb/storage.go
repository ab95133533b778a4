package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketPosts    = []byte("posts")
	bucketComments = []byte("comments")
)

// Storage represents BoltDB storage implementation for the client.
// Records are stored as JSON values keyed by their decimal id.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Posts returns the local post store backed by this database
func (s *Storage) Posts() *PostStore {
	return &PostStore{db: s.db}
}

// Comments returns the local comment store backed by this database
func (s *Storage) Comments() *CommentStore {
	return &CommentStore{db: s.db}
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketPosts); err != nil {
			return fmt.Errorf("failed to create posts bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketComments); err != nil {
			return fmt.Errorf("failed to create comments bucket: %w", err)
		}

		return nil
	})
}

// idKey кодирует id записи в ключ bucket'а
func idKey(id int64) []byte {
	return strconv.AppendInt(nil, id, 10)
}
