package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/draftsync/internal/client/diff"
	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

func (c *Cli) runCommentList(ctx context.Context) error {
	c.io.Println("=== Comment Drafts ===")
	c.io.Println()

	comments, err := c.commentStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}

	if len(comments) == 0 {
		c.io.Println("No comments found.")
		return nil
	}

	c.io.Printf("Found %d comment(s):\n", len(comments))
	c.io.Println()

	for i, comment := range comments {
		kind := "comment on post"
		if comment.IsReply {
			kind = "reply to comment"
		}
		c.io.Printf("%d. %s\n", i+1, truncate(comment.Content, 60))
		c.io.Printf("   ID:       %d (%s)\n", comment.ID, syncState(comment.ID))
		c.io.Printf("   Target:   %s %d\n", kind, comment.BindingID)
		c.io.Printf("   Modified: %s\n", comment.ModifyTime.Format(time.RFC3339))
		c.io.Println()
	}

	return nil
}

func (c *Cli) runCommentCreate(ctx context.Context) error {
	c.io.Println("=== New Comment Draft ===")

	content, err := c.io.ReadMultiline("Content")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	bindingRaw, err := c.io.ReadInput("Target id (post id, or parent comment id for a reply): ")
	if err != nil {
		return fmt.Errorf("failed to read target id: %w", err)
	}
	bindingID, err := strconv.ParseInt(bindingRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target id %q: must be an integer", bindingRaw)
	}

	replyRaw, err := c.io.ReadInput("Is this a reply to another comment? (y/N): ")
	if err != nil {
		return fmt.Errorf("failed to read reply flag: %w", err)
	}
	isReply := replyRaw == "y" || replyRaw == "Y" || replyRaw == "yes"

	comment, err := c.comments.Create(ctx, content, bindingID, isReply)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Draft saved with local id %d\n", comment.ID)
	return nil
}

func (c *Cli) runCommentEdit(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync comment edit <id>")
	if err != nil {
		return err
	}

	current, err := c.comments.Load(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			return fmt.Errorf("comment not found with id: %d", id)
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}

	c.io.Println("=== Edit Comment Draft ===")
	c.io.Printf("Current content: %s\n", truncate(current.Content, 200))

	content, err := c.io.ReadMultiline("New content")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	updated, changed, err := c.comments.Update(ctx, id, content)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
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

func (c *Cli) runCommentDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync comment delete <id>")
	if err != nil {
		return err
	}

	if err := c.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	c.io.Printf("✓ Comment %d deleted locally\n", id)
	return nil
}

func (c *Cli) runCommentDiff(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync comment diff <id>")
	if err != nil {
		return err
	}

	local, remote, err := c.commentRec.Snapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshots: %w", err)
	}

	category := diff.Classify(local, remote)
	c.io.Println("=== Comment Diff ===")
	c.io.Printf("Comment %d: %s\n", id, category)
	c.io.Println()

	c.printCommentSide("Local", local)
	c.printCommentSide("Remote", remote)

	switch category {
	case diff.None:
		c.io.Println("Nothing to resolve: the comment exists on neither side.")
	case diff.DataDiff:
		if local.ContentHash() == remote.ContentHash() {
			c.io.Println("Content is identical on both sides.")
		} else {
			c.io.Printf("Resolve with 'draftsync comment resolve %d <local|remote>'.\n", id)
		}
	default:
		c.io.Printf("Resolve with 'draftsync comment resolve %d <local|remote>'.\n", id)
	}

	return nil
}

func (c *Cli) printCommentSide(side string, comment *models.CommentData) {
	if comment == nil {
		c.io.Printf("%s: absent\n", side)
		c.io.Println()
		return
	}
	c.io.Printf("%s:\n", side)
	c.io.Printf("  Target:   %d (reply: %t)\n", comment.BindingID, comment.IsReply)
	c.io.Printf("  Modified: %s\n", comment.ModifyTime.Format(time.RFC3339))
	c.io.Printf("  Digest:   %s\n", comment.ContentHash())
	c.io.Printf("  Content:  %s\n", truncate(comment.Content, 200))
	c.io.Println()
}

func (c *Cli) runCommentResolve(ctx context.Context, args []string) error {
	id, err := parseID(args, "draftsync comment resolve <id> <local|remote>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing strategy. Usage: draftsync comment resolve <id> <local|remote>")
	}
	strategy := args[1]

	local, remote, err := c.commentRec.Snapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshots: %w", err)
	}
	if !diff.Classify(local, remote).Actionable() {
		c.io.Printf("Comment %d exists on neither side. Nothing to resolve.\n", id)
		return nil
	}

	switch strategy {
	case "local":
		err = c.commentRec.ApplyLocalWins(ctx, local, remote)
	case "remote":
		err = c.commentRec.ApplyRemoteWins(ctx, local, remote)
	default:
		return fmt.Errorf("unknown strategy: %s. Use 'local' or 'remote'", strategy)
	}
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	c.io.Printf("✓ Comment %d resolved (%s wins)\n", id, strategy)
	return nil
}
