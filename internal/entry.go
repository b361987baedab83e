// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/starford/recipebook/internal/console"
	"github.com/starford/recipebook/internal/recipes"
	"github.com/starford/recipebook/internal/storage"
)

// Run loads the recipe book and runs the interactive session until the user
// exits.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		in:  os.Stdin,
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	var logOut io.Writer = os.Stderr
	if cfg.App.LogFile != "" {
		f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("store_path", cfg.Store.Path),
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.Bool("discard_on_abandon", cfg.Edit.DiscardOnAbandon))

	// Initialize storage.
	backend, err := storage.NewFile(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Load the recipe book.
	store, err := recipes.Open(backend, logger)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}
	logger.Info("Recipe book loaded", slog.String("path", backend.Path()), slog.Int("recipes", store.Len()))

	con := console.NewTerminal(app.in, app.out, cfg.Console.ClearScreen)
	session := console.NewSession(store, con, console.NewStyles(app.out, cfg.Console.Color), logger, console.Options{
		DiscardOnAbandon: cfg.Edit.DiscardOnAbandon,
	})

	if err := session.Run(ctx); err != nil {
		logger.Error("Session error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Session ended")
	return nil
}
