package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/healthbot/internal/cli"
	"github.com/alexanderramin/healthbot/internal/config"
	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log, flush := logger.Init(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)
	defer flush()

	// Open database (migrations are applied on open)
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	store, closeStore, err := cli.OpenSessionStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer closeStore()

	app := cli.NewApp(cfg, log, database, store)

	// Detect interactive terminal for the chat, profile and progress commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
