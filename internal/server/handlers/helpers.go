package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/pkg/api"
)

// writeJSON сериализует ответ; ошибку кодирования уже некому отдать, только лог
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError отдает ошибку в wire формате
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, errText, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   errText,
		Message: message,
	})
}

// pathID разбирает {id} из паттерна маршрута
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func postToWire(post models.PostData) api.Post {
	return api.Post{
		ID:         post.ID,
		Title:      post.Title,
		Body:       post.Body,
		CreateTime: post.CreateTime,
		ModifyTime: post.ModifyTime,
	}
}

func postFromWire(post api.Post) models.PostData {
	return models.PostData{
		ID:         post.ID,
		Title:      post.Title,
		Body:       post.Body,
		CreateTime: post.CreateTime,
		ModifyTime: post.ModifyTime,
	}
}

func commentToWire(comment models.CommentData) api.Comment {
	return api.Comment{
		ID:         comment.ID,
		Content:    comment.Content,
		BindingID:  comment.BindingID,
		IsReply:    comment.IsReply,
		CreateTime: comment.CreateTime,
		ModifyTime: comment.ModifyTime,
	}
}

func commentFromWire(comment api.Comment) models.CommentData {
	return models.CommentData{
		ID:         comment.ID,
		Content:    comment.Content,
		BindingID:  comment.BindingID,
		IsReply:    comment.IsReply,
		CreateTime: comment.CreateTime,
		ModifyTime: comment.ModifyTime,
	}
}
