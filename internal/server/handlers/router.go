package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/draftsync/internal/server/storage"
)

// NewRouter собирает mux со всеми маршрутами API
func NewRouter(
	logger *slog.Logger,
	posts storage.PostStorage,
	comments storage.CommentStorage,
	version string,
) *http.ServeMux {
	postsHandler := NewPostsHandler(logger, posts)
	commentsHandler := NewCommentsHandler(logger, comments)
	healthHandler := NewHealthHandler(logger, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("GET /api/v1/posts", postsHandler.List)
	mux.HandleFunc("POST /api/v1/posts", postsHandler.Create)
	mux.HandleFunc("GET /api/v1/posts/{id}", postsHandler.Get)
	mux.HandleFunc("PUT /api/v1/posts/{id}", postsHandler.Update)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", postsHandler.Delete)

	mux.HandleFunc("GET /api/v1/comments", commentsHandler.List)
	mux.HandleFunc("POST /api/v1/comments", commentsHandler.Create)
	mux.HandleFunc("GET /api/v1/comments/{id}", commentsHandler.Get)
	mux.HandleFunc("PUT /api/v1/comments/{id}", commentsHandler.Update)
	mux.HandleFunc("DELETE /api/v1/comments/{id}", commentsHandler.Delete)

	return mux
}
