// Package decks supplies question lists to the session engine. The engine
// itself never fetches: a Source is resolved and drained up front, and on
// failure the built-in starter deck substitutes before a session starts.
package decks

import (
	"context"

	"quizdeck/internal/quiz"
)

// Source produces a validated question list.
type Source interface {
	Load(ctx context.Context) ([]quiz.Question, error)
}

// LoadOrFallback drains src, substituting the embedded starter deck when
// src is nil or fails. The returned list is always valid and non-empty.
func LoadOrFallback(ctx context.Context, src Source) []quiz.Question {
	if src == nil {
		return Starter().Questions
	}
	questions, err := src.Load(ctx)
	if err != nil {
		return Starter().Questions
	}
	return questions
}
