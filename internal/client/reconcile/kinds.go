package reconcile

import (
	"context"
	"log/slog"

	"github.com/iudanet/draftsync/internal/client/api"
	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

// NewPostReconciler wires the reconciler for posts. Remapping a post id
// cascades into top-level comments bound to that post (IsReply=false).
func NewPostReconciler(
	posts storage.PostStorage,
	comments storage.CommentStorage,
	remote api.PostAPI,
	logger *slog.Logger,
) *Reconciler[models.PostData] {
	rewriteCommentBindings := func(ctx context.Context, oldID, newID int64) error {
		return comments.ChangeBindingID(ctx, oldID, newID, false)
	}

	return New[models.PostData](posts, remote, logger, rewriteCommentBindings)
}

// NewCommentReconciler wires the reconciler for comments. Remapping a comment
// id cascades into replies bound to that comment (IsReply=true).
func NewCommentReconciler(
	comments storage.CommentStorage,
	remote api.CommentAPI,
	logger *slog.Logger,
) *Reconciler[models.CommentData] {
	rewriteReplyBindings := func(ctx context.Context, oldID, newID int64) error {
		return comments.ChangeBindingID(ctx, oldID, newID, true)
	}

	return New[models.CommentData](comments, remote, logger, rewriteReplyBindings)
}
