package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizdeck/internal/app"
	"quizdeck/internal/config"
	"quizdeck/internal/decks"
	"quizdeck/internal/quiz"
	"quizdeck/internal/store"
)

// runApp opens the store, loads the question pool, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfgPath, err := resolveConfigPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	pool := loadPool(cmd.Context(), cfg)

	return app.Run(cfg, pool, st)
}

// loadPool picks the question source by configuration: an AI generator
// when an API key is present, a deck file when configured, and the
// built-in starter deck otherwise (or whenever the source fails).
func loadPool(ctx context.Context, cfg config.Config) []quiz.Question {
	if ctx == nil {
		ctx = context.Background()
	}

	var src decks.Source
	if apiKey := os.Getenv("QUIZDECK_API_KEY"); apiKey != "" {
		src = decks.NewAISource(cfg.AI.BaseURL, apiKey, cfg.AI.Model, cfg.AI.Category, cfg.QuestionsPerSession)
	} else if cfg.DeckPath != "" {
		src = &decks.FileSource{Path: cfg.DeckPath}
	}

	return decks.LoadOrFallback(ctx, src)
}
