package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/internal/server/storage"
)

// CreatePost stores a new post and returns it with the assigned id.
// The id provided by the client is ignored: AUTOINCREMENT is the authority.
func (s *Storage) CreatePost(ctx context.Context, post models.PostData) (models.PostData, error) {
	query := `
		INSERT INTO posts (title, body, create_time, modify_time)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Body,
		post.CreateTime.UnixMilli(),
		post.ModifyTime.UnixMilli(),
	)
	if err != nil {
		return models.PostData{}, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.PostData{}, fmt.Errorf("failed to get inserted id: %w", err)
	}

	post.ID = id
	return post, nil
}

// GetPost retrieves a post by id
func (s *Storage) GetPost(ctx context.Context, id int64) (models.PostData, error) {
	query := `
		SELECT id, title, body, create_time, modify_time
		FROM posts
		WHERE id = ?
	`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostData{}, storage.ErrPostNotFound
		}
		return models.PostData{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts ordered by id
func (s *Storage) ListPosts(ctx context.Context) ([]models.PostData, error) {
	query := `
		SELECT id, title, body, create_time, modify_time
		FROM posts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.PostData
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// UpdatePost overwrites an existing post
func (s *Storage) UpdatePost(ctx context.Context, post models.PostData) error {
	query := `
		UPDATE posts
		SET title = ?, body = ?, modify_time = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Body,
		post.ModifyTime.UnixMilli(),
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post by id
func (s *Storage) DeletePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// scanner абстрагирует sql.Row и sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (models.PostData, error) {
	var (
		post                   models.PostData
		createTime, modifyTime int64
	)

	if err := row.Scan(&post.ID, &post.Title, &post.Body, &createTime, &modifyTime); err != nil {
		return models.PostData{}, err
	}

	post.CreateTime = time.UnixMilli(createTime)
	post.ModifyTime = time.UnixMilli(modifyTime)
	return post, nil
}
