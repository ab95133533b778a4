package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/draftsync/internal/client/api"
	"github.com/iudanet/draftsync/internal/client/cli"
	"github.com/iudanet/draftsync/internal/client/editor"
	"github.com/iudanet/draftsync/internal/client/iocli"
	"github.com/iudanet/draftsync/internal/client/reconcile"
	"github.com/iudanet/draftsync/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "draftsync-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	postStore := boltStorage.Posts()
	commentStore := boltStorage.Comments()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)

	app := cli.New(
		iocli.NewStdio(),
		postStore,
		commentStore,
		editor.NewPostSession(postStore, logger),
		editor.NewCommentSession(commentStore, logger),
		reconcile.NewPostReconciler(postStore, commentStore, apiClient.Posts(), logger),
		reconcile.NewCommentReconciler(commentStore, apiClient.Comments(), logger),
		apiClient,
	)

	app.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("DraftSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
