package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/pkg/api"
)

//go:generate moq -out commentapi_mock.go . CommentAPI

// CommentAPI defines the remote service adapter for comments.
type CommentAPI interface {
	// GetOne fetches a comment by id, returning nil (not an error) when it
	// does not exist remotely.
	GetOne(ctx context.Context, id int64) (*models.CommentData, error)

	// Create pushes a new comment to the service; the returned record
	// carries the server-assigned positive id.
	Create(ctx context.Context, comment models.CommentData) (*models.CommentData, error)

	// Update overwrites the remote comment by id.
	Update(ctx context.Context, comment models.CommentData) error

	// Delete removes the remote comment.
	Delete(ctx context.Context, comment models.CommentData) error
}

// CommentService implements CommentAPI over the service's REST API
type CommentService struct {
	client *Client
}

var _ CommentAPI = (*CommentService)(nil)

// GetOne fetches a comment by id; nil means the comment is absent remotely
func (s *CommentService) GetOne(ctx context.Context, id int64) (*models.CommentData, error) {
	var resp api.Comment
	err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/comments/%d", id), nil, &resp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment request failed: %w", err)
	}

	comment := commentFromWire(resp)
	return &comment, nil
}

// Create pushes a new comment and returns the server-assigned record
func (s *CommentService) Create(ctx context.Context, comment models.CommentData) (*models.CommentData, error) {
	var resp api.Comment
	err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/comments", commentToWire(comment), &resp)
	if err != nil {
		return nil, fmt.Errorf("create comment request failed: %w", err)
	}

	created := commentFromWire(resp)
	return &created, nil
}

// Update overwrites the remote comment by id
func (s *CommentService) Update(ctx context.Context, comment models.CommentData) error {
	path := fmt.Sprintf("/api/v1/comments/%d", comment.ID)
	if err := s.client.doRequest(ctx, http.MethodPut, path, commentToWire(comment), nil); err != nil {
		return fmt.Errorf("update comment request failed: %w", err)
	}
	return nil
}

// Delete removes the remote comment
func (s *CommentService) Delete(ctx context.Context, comment models.CommentData) error {
	path := fmt.Sprintf("/api/v1/comments/%d", comment.ID)
	if err := s.client.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete comment request failed: %w", err)
	}
	return nil
}

func commentToWire(c models.CommentData) api.Comment {
	return api.Comment{
		ID:         c.ID,
		Content:    c.Content,
		BindingID:  c.BindingID,
		IsReply:    c.IsReply,
		CreateTime: c.CreateTime,
		ModifyTime: c.ModifyTime,
	}
}

func commentFromWire(c api.Comment) models.CommentData {
	return models.CommentData{
		ID:         c.ID,
		Content:    c.Content,
		BindingID:  c.BindingID,
		IsReply:    c.IsReply,
		CreateTime: c.CreateTime,
		ModifyTime: c.ModifyTime,
	}
}
