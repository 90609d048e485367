package decks

import (
	"context"
	"fmt"
	"os"

	"quizdeck/internal/quiz"
)

// FileSource loads a JSON deck file from disk.
type FileSource struct {
	Path string
}

// Load reads and validates the deck at Path.
func (s *FileSource) Load(ctx context.Context) ([]quiz.Question, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read deck %s: %w", s.Path, err)
	}
	deck, err := quiz.DecodeDeck(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", s.Path, err)
	}
	return deck.Questions, nil
}
