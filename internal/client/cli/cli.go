package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/draftsync/internal/client/editor"
	"github.com/iudanet/draftsync/internal/client/iocli"
	"github.com/iudanet/draftsync/internal/client/reconcile"
	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
	pkgapi "github.com/iudanet/draftsync/pkg/api"
)

// HealthChecker reports whether the remote service answers.
type HealthChecker interface {
	Health(ctx context.Context) (*pkgapi.HealthResponse, error)
}

type Cli struct {
	io           iocli.IO
	postStore    storage.PostStorage
	commentStore storage.CommentStorage
	posts        *editor.PostSession
	comments     *editor.CommentSession
	postRec      *reconcile.Reconciler[models.PostData]
	commentRec   *reconcile.Reconciler[models.CommentData]
	health       HealthChecker
}

func New(
	io iocli.IO,
	postStore storage.PostStorage,
	commentStore storage.CommentStorage,
	posts *editor.PostSession,
	comments *editor.CommentSession,
	postRec *reconcile.Reconciler[models.PostData],
	commentRec *reconcile.Reconciler[models.CommentData],
	health HealthChecker,
) *Cli {
	return &Cli{
		io:           io,
		postStore:    postStore,
		commentStore: commentStore,
		posts:        posts,
		comments:     comments,
		postRec:      postRec,
		commentRec:   commentRec,
		health:       health,
	}
}

func PrintUsage() {
	fmt.Println("DraftSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  draftsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: draftsync-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  post list                       List local post drafts")
	fmt.Println("  post create                     Create a new post draft")
	fmt.Println("  post edit <id>                  Edit a post draft")
	fmt.Println("  post delete <id>                Delete a local post draft")
	fmt.Println("  post diff <id>                  Compare local and remote versions of a post")
	fmt.Println("  post resolve <id> <local|remote>  Resolve a post conflict")
	fmt.Println("  comment list                    List local comment drafts")
	fmt.Println("  comment create                  Create a new comment draft")
	fmt.Println("  comment edit <id>               Edit a comment draft")
	fmt.Println("  comment delete <id>             Delete a local comment draft")
	fmt.Println("  comment diff <id>               Compare local and remote versions of a comment")
	fmt.Println("  comment resolve <id> <local|remote>  Resolve a comment conflict")
	fmt.Println("  status                          Show drafts waiting to be pushed")
	fmt.Println("  health                          Check that the server answers")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  draftsync post create")
	fmt.Println("  draftsync post diff 42")
	fmt.Println("  draftsync post resolve 42 local")
	fmt.Println("  draftsync comment resolve -1 remote")
	fmt.Println("  draftsync --server https://example.com health")
}
