package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultQuestionsPerSession is the deck slice length for one session.
const DefaultQuestionsPerSession = 5

// Config holds the player-editable settings file.
type Config struct {
	// Player is the name used for leaderboard submissions.
	Player string `yaml:"player"`

	// DeckPath points at a JSON deck file. Empty means the built-in
	// starter deck.
	DeckPath string `yaml:"deck_path"`

	// QuestionsPerSession caps how many questions a session draws
	// from the deck. 0 means DefaultQuestionsPerSession.
	QuestionsPerSession int `yaml:"questions_per_session"`

	// Leaderboard display size.
	LeaderboardSize int `yaml:"leaderboard_size"`

	// AI configures the optional OpenAI-compatible deck generator.
	AI AIConfig `yaml:"ai"`
}

// AIConfig holds deck-generation settings. The API key is never stored
// in the file; it comes from QUIZDECK_API_KEY.
type AIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	Category string `yaml:"category"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		QuestionsPerSession: DefaultQuestionsPerSession,
		LeaderboardSize:     10,
		AI: AIConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// Load reads the YAML config at path, filling gaps with defaults.
// A missing file is not an error; it yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.QuestionsPerSession <= 0 {
		cfg.QuestionsPerSession = DefaultQuestionsPerSession
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// 1. QUIZDECK_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/quizdeck/config.yaml
// 3. ~/.config/quizdeck/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZDECK_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdeck", "config.yaml"), nil
}
