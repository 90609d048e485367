package decks

import (
	"math/rand"

	"quizdeck/internal/quiz"
)

// Draw picks n questions from the pool in random order. When the pool
// holds fewer than n questions the whole pool is returned, shuffled.
// The pool itself is not reordered.
func Draw(pool []quiz.Question, n int) []quiz.Question {
	shuffled := make([]quiz.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > 0 && n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
