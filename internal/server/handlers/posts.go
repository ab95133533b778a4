package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/draftsync/internal/server/storage"
	"github.com/iudanet/draftsync/internal/validation"
	"github.com/iudanet/draftsync/pkg/api"
)

// PostsHandler handles post CRUD requests
type PostsHandler struct {
	logger  *slog.Logger
	storage storage.PostStorage
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, storage storage.PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /api/v1/posts
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.storage.ListPosts(r.Context())
	if err != nil {
		h.logger.Error("failed to list posts", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	resp := api.PostList{Posts: make([]api.Post, 0, len(posts))}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, postToWire(post))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	post, err := h.storage.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "post not found", "")
			return
		}
		h.logger.Error("failed to get post", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, postToWire(post))
}

// Create обрабатывает POST /api/v1/posts
// Присланный клиентом id (обычно отрицательный placeholder) игнорируется:
// сервер выдает собственный id и возвращает его в ответе.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var wire api.Post
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePostTitle(wire.Title); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid post", err.Error())
		return
	}
	if err := validation.ValidatePostBody(wire.Body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid post", err.Error())
		return
	}

	created, err := h.storage.CreatePost(r.Context(), postFromWire(wire))
	if err != nil {
		h.logger.Error("failed to create post", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("post created", "id", created.ID, "client_id", wire.ID)
	writeJSON(w, h.logger, http.StatusCreated, postToWire(created))
}

// Update обрабатывает PUT /api/v1/posts/{id}
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	var wire api.Post
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	wire.ID = id

	if err := validation.ValidatePostTitle(wire.Title); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid post", err.Error())
		return
	}
	if err := validation.ValidatePostBody(wire.Body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid post", err.Error())
		return
	}

	if err := h.storage.UpdatePost(r.Context(), postFromWire(wire)); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "post not found", "")
			return
		}
		h.logger.Error("failed to update post", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("post updated", "id", id)
	writeJSON(w, h.logger, http.StatusOK, wire)
}

// Delete обрабатывает DELETE /api/v1/posts/{id}
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	if err := h.storage.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "post not found", "")
			return
		}
		h.logger.Error("failed to delete post", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("post deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
