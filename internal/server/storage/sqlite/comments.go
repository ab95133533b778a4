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

// CreateComment stores a new comment and returns it with the assigned id
func (s *Storage) CreateComment(ctx context.Context, comment models.CommentData) (models.CommentData, error) {
	query := `
		INSERT INTO comments (content, binding_id, is_reply, create_time, modify_time)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		comment.Content,
		comment.BindingID,
		boolToInt(comment.IsReply),
		comment.CreateTime.UnixMilli(),
		comment.ModifyTime.UnixMilli(),
	)
	if err != nil {
		return models.CommentData{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.CommentData{}, fmt.Errorf("failed to get inserted id: %w", err)
	}

	comment.ID = id
	return comment, nil
}

// GetComment retrieves a comment by id
func (s *Storage) GetComment(ctx context.Context, id int64) (models.CommentData, error) {
	query := `
		SELECT id, content, binding_id, is_reply, create_time, modify_time
		FROM comments
		WHERE id = ?
	`

	comment, err := scanComment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CommentData{}, storage.ErrCommentNotFound
		}
		return models.CommentData{}, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListComments returns all comments ordered by id
func (s *Storage) ListComments(ctx context.Context) ([]models.CommentData, error) {
	query := `
		SELECT id, content, binding_id, is_reply, create_time, modify_time
		FROM comments
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.CommentData
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

// UpdateComment overwrites an existing comment
func (s *Storage) UpdateComment(ctx context.Context, comment models.CommentData) error {
	query := `
		UPDATE comments
		SET content = ?, binding_id = ?, is_reply = ?, modify_time = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		comment.Content,
		comment.BindingID,
		boolToInt(comment.IsReply),
		comment.ModifyTime.UnixMilli(),
		comment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCommentNotFound
	}

	return nil
}

// DeleteComment removes a comment by id
func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrCommentNotFound
	}

	return nil
}

func scanComment(row scanner) (models.CommentData, error) {
	var (
		comment                models.CommentData
		isReply                int
		createTime, modifyTime int64
	)

	if err := row.Scan(&comment.ID, &comment.Content, &comment.BindingID, &isReply, &createTime, &modifyTime); err != nil {
		return models.CommentData{}, err
	}

	comment.IsReply = isReply != 0
	comment.CreateTime = time.UnixMilli(createTime)
	comment.ModifyTime = time.UnixMilli(modifyTime)
	return comment, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
