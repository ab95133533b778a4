package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/draftsync/internal/client/diff"
	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

func (c *Cli) runPostList(ctx context.Context) error {
	c.io.Println("=== Post Drafts ===")
	c.io.Println()

	posts, err := c.postStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		c.io.Println("No posts found.")
		c.io.Println()
		c.io.Println("Use 'draftsync post create' to write your first draft.")
		return nil
	}

	c.io.Printf("Found %d post(s):\n", len(posts))
	c.io.Println()

	for i, post := range posts {
		c.io.Printf("%d. %s\n", i+1, post.Title)
		c.io.Printf("   ID:       %d (%s)\n", post.ID, syncState(post.ID))
		c.io.Printf("   Modified: %s\n", post.ModifyTime.Format(time.RFC3339))
		if post.Body != "" {
			c.io.Printf("   Body:     %s\n", truncate(post.Body, 60))
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runPostCreate(ctx context.Context) error {
	c.io.Println("=== New Post Draft ===")

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	body, err := c.io.ReadMultiline("Body")
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	post, err := c.posts.Create(ctx, title, body)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Draft saved with local id %d\n", post.ID)
	c.io.Printf("Run 'draftsync post resolve %d local' to push it to the server.\n", post.ID)
	return nil
}

func (c *Cli) runPostEdit(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync post edit <id>")
	if err != nil {
		return err
	}

	current, err := c.posts.Load(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return fmt.Errorf("post not found with id: %d", id)
		}
		return fmt.Errorf("failed to load post: %w", err)
	}

	c.io.Println("=== Edit Post Draft ===")
	c.io.Printf("Current title: %s\n", current.Title)

	title, err := c.io.ReadInput("New title (empty keeps current): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		title = current.Title
	}

	body, err := c.io.ReadMultiline("New body")
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	updated, changed, err := c.posts.Update(ctx, id, title, body)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if !changed {
		c.io.Println()
		c.io.Println("Content is identical to the stored draft. Nothing written.")
		return nil
	}

	c.io.Println()
	c.io.Printf("✓ Draft %d updated at %s\n", updated.ID, updated.ModifyTime.Format(time.RFC3339))
	return nil
}

func (c *Cli) runPostDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync post delete <id>")
	if err != nil {
		return err
	}

	if err := c.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	c.io.Printf("✓ Post %d deleted locally\n", id)
	if id > 0 {
		c.io.Printf("The server copy is untouched. Run 'draftsync post resolve %d local' to delete it there too.\n", id)
	}
	return nil
}

func (c *Cli) runPostDiff(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync post diff <id>")
	if err != nil {
		return err
	}

	local, remote, err := c.postRec.Snapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshots: %w", err)
	}

	category := diff.Classify(local, remote)
	c.io.Println("=== Post Diff ===")
	c.io.Printf("Post %d: %s\n", id, category)
	c.io.Println()

	c.printPostSide("Local", local)
	c.printPostSide("Remote", remote)

	switch category {
	case diff.None:
		c.io.Println("Nothing to resolve: the post exists on neither side.")
	case diff.DataDiff:
		if local.ContentHash() == remote.ContentHash() {
			c.io.Println("Content is identical on both sides.")
		} else {
			c.io.Printf("Resolve with 'draftsync post resolve %d <local|remote>'.\n", id)
		}
	default:
		c.io.Printf("Resolve with 'draftsync post resolve %d <local|remote>'.\n", id)
	}

	return nil
}

func (c *Cli) printPostSide(side string, post *models.PostData) {
	if post == nil {
		c.io.Printf("%s: absent\n", side)
		c.io.Println()
		return
	}
	c.io.Printf("%s:\n", side)
	c.io.Printf("  Title:    %s\n", post.Title)
	c.io.Printf("  Modified: %s\n", post.ModifyTime.Format(time.RFC3339))
	c.io.Printf("  Digest:   %s\n", post.ContentHash())
	c.io.Printf("  Body:     %s\n", truncate(post.Body, 200))
	c.io.Println()
}

func (c *Cli) runPostResolve(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync post resolve <id> <local|remote>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing strategy. Usage: draftsync post resolve <id> <local|remote>")
	}
	strategy := args[1]

	local, remote, err := c.postRec.Snapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshots: %w", err)
	}
	if !diff.Classify(local, remote).Actionable() {
		c.io.Printf("Post %d exists on neither side. Nothing to resolve.\n", id)
		return nil
	}

	switch strategy {
	case "local":
		err = c.postRec.ApplyLocalWins(ctx, local, remote)
	case "remote":
		err = c.postRec.ApplyRemoteWins(ctx, local, remote)
	default:
		return fmt.Errorf("unknown strategy: %s. Use 'local' or 'remote'", strategy)
	}
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	c.io.Printf("✓ Post %d resolved (%s wins)\n", id, strategy)
	return nil
}
