package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	posts, err := c.postStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	comments, err := c.commentStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}

	var pendingPosts, pendingComments int
	for _, post := range posts {
		if post.IsLocalPlaceholder() {
			pendingPosts++
		}
	}
	for _, comment := range comments {
		if comment.IsLocalPlaceholder() {
			pendingComments++
		}
	}

	c.io.Printf("Posts:    %d total, %d never pushed\n", len(posts), pendingPosts)
	c.io.Printf("Comments: %d total, %d never pushed\n", len(comments), pendingComments)
	c.io.Println()

	if pendingPosts+pendingComments > 0 {
		c.io.Printf("⚠️  %d record(s) exist only on this device\n", pendingPosts+pendingComments)
		c.io.Println("Run 'draftsync post resolve <id> local' to push a draft to the server.")
	} else {
		c.io.Println("✓ Every record has a server-assigned id")
	}

	return nil
}
