package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "post":
		err = c.runPost(ctx, args)
	case "comment":
		err = c.runComment(ctx, args)
	case "status":
		err = c.runStatus(ctx)
	case "health":
		err = c.runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *Cli) runPost(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: draftsync post <list|create|edit|delete|diff|resolve>")
	}

	switch args[0] {
	case "list":
		return c.runPostList(ctx)
	case "create":
		return c.runPostCreate(ctx)
	case "edit":
		return c.runPostEdit(ctx, args[1:])
	case "delete":
		return c.runPostDelete(ctx, args[1:])
	case "diff":
		return c.runPostDiff(ctx, args[1:])
	case "resolve":
		return c.runPostResolve(ctx, args[1:])
	default:
		return fmt.Errorf("unknown post subcommand: %s", args[0])
	}
}

func (c *Cli) runComment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: draftsync comment <list|create|edit|delete|diff|resolve>")
	}

	switch args[0] {
	case "list":
		return c.runCommentList(ctx)
	case "create":
		return c.runCommentCreate(ctx)
	case "edit":
		return c.runCommentEdit(ctx, args[1:])
	case "delete":
		return c.runCommentDelete(ctx, args[1:])
	case "diff":
		return c.runCommentDiff(ctx, args[1:])
	case "resolve":
		return c.runCommentResolve(ctx, args[1:])
	default:
		return fmt.Errorf("unknown comment subcommand: %s", args[0])
	}
}
