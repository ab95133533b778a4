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

// CommentsHandler handles comment CRUD requests
type CommentsHandler struct {
	logger  *slog.Logger
	storage storage.CommentStorage
}

// NewCommentsHandler creates a new comments handler
func NewCommentsHandler(logger *slog.Logger, storage storage.CommentStorage) *CommentsHandler {
	return &CommentsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /api/v1/comments
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.storage.ListComments(r.Context())
	if err != nil {
		h.logger.Error("failed to list comments", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	resp := api.CommentList{Comments: make([]api.Comment, 0, len(comments))}
	for _, comment := range comments {
		resp.Comments = append(resp.Comments, commentToWire(comment))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/comments/{id}
func (h *CommentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	comment, err := h.storage.GetComment(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "comment not found", "")
			return
		}
		h.logger.Error("failed to get comment", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, commentToWire(comment))
}

// Create обрабатывает POST /api/v1/comments
// Placeholder id клиента игнорируется так же, как для постов. Binding id
// здесь обязан быть серверным: клиент сначала разрешает пост, потом комментарии.
func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var wire api.Comment
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCommentContent(wire.Content); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid comment", err.Error())
		return
	}
	if wire.BindingID <= 0 {
		writeError(w, h.logger, http.StatusBadRequest, "invalid comment", "binding_id must be a server-assigned id")
		return
	}

	created, err := h.storage.CreateComment(r.Context(), commentFromWire(wire))
	if err != nil {
		h.logger.Error("failed to create comment", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("comment created", "id", created.ID, "binding_id", created.BindingID, "is_reply", created.IsReply)
	writeJSON(w, h.logger, http.StatusCreated, commentToWire(created))
}

// Update обрабатывает PUT /api/v1/comments/{id}
func (h *CommentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	var wire api.Comment
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	wire.ID = id

	if err := validation.ValidateCommentContent(wire.Content); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid comment", err.Error())
		return
	}

	if err := h.storage.UpdateComment(r.Context(), commentFromWire(wire)); err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "comment not found", "")
			return
		}
		h.logger.Error("failed to update comment", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("comment updated", "id", id)
	writeJSON(w, h.logger, http.StatusOK, wire)
}

// Delete обрабатывает DELETE /api/v1/comments/{id}
func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid id", "id must be an integer")
		return
	}

	if err := h.storage.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "comment not found", "")
			return
		}
		h.logger.Error("failed to delete comment", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "storage error", "")
		return
	}

	h.logger.Info("comment deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
