package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmonteiro/studa/internal/cli"
	"github.com/lmonteiro/studa/internal/domain"
	"github.com/lmonteiro/studa/internal/kv"
	"github.com/lmonteiro/studa/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studa/studa.db
	dbPath := os.Getenv("STUDA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studa", "studa.db")
	}

	devices, err := kv.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("opening device store: %w", err)
	}
	defer devices.Close()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	app := &cli.App{
		Subjects: store.NewSubjectStore(devices, log),
		Goals:    store.New[domain.Goal](devices, store.KeyGoals, log),
		Sessions: store.New[domain.StudySession](devices, store.KeySessions, log),
		Focus:    store.NewFocusStore(devices, log),
	}
	app.LoadAll(context.Background())

	// Interactive forms are offered only on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	err = rootCmd.Execute()
	app.Flush()
	return err
}
