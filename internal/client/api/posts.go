package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/pkg/api"
)

//go:generate moq -out postapi_mock.go . PostAPI

// PostAPI defines the remote service adapter for posts.
type PostAPI interface {
	// GetOne fetches a post by id, returning nil (not an error) when it
	// does not exist remotely.
	GetOne(ctx context.Context, id int64) (*models.PostData, error)

	// Create pushes a new post to the service; the returned record carries
	// the server-assigned positive id.
	Create(ctx context.Context, post models.PostData) (*models.PostData, error)

	// Update overwrites the remote post by id.
	Update(ctx context.Context, post models.PostData) error

	// Delete removes the remote post.
	Delete(ctx context.Context, post models.PostData) error
}

// PostService implements PostAPI over the service's REST API
type PostService struct {
	client *Client
}

var _ PostAPI = (*PostService)(nil)

// GetOne fetches a post by id; nil means the post is absent remotely
func (s *PostService) GetOne(ctx context.Context, id int64) (*models.PostData, error) {
	var resp api.Post
	err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", id), nil, &resp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post request failed: %w", err)
	}

	post := postFromWire(resp)
	return &post, nil
}

// Create pushes a new post and returns the server-assigned record
func (s *PostService) Create(ctx context.Context, post models.PostData) (*models.PostData, error) {
	var resp api.Post
	err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/posts", postToWire(post), &resp)
	if err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}

	created := postFromWire(resp)
	return &created, nil
}

// Update overwrites the remote post by id
func (s *PostService) Update(ctx context.Context, post models.PostData) error {
	path := fmt.Sprintf("/api/v1/posts/%d", post.ID)
	if err := s.client.doRequest(ctx, http.MethodPut, path, postToWire(post), nil); err != nil {
		return fmt.Errorf("update post request failed: %w", err)
	}
	return nil
}

// Delete removes the remote post
func (s *PostService) Delete(ctx context.Context, post models.PostData) error {
	path := fmt.Sprintf("/api/v1/posts/%d", post.ID)
	if err := s.client.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

func postToWire(p models.PostData) api.Post {
	return api.Post{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		CreateTime: p.CreateTime,
		ModifyTime: p.ModifyTime,
	}
}

func postFromWire(p api.Post) models.PostData {
	return models.PostData{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		CreateTime: p.CreateTime,
		ModifyTime: p.ModifyTime,
	}
}
