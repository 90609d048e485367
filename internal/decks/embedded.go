package decks

import (
	_ "embed"
	"sync"

	"quizdeck/internal/quiz"
)

//go:embed starter_deck.json
var starterJSON []byte

var (
	starterOnce sync.Once
	starterDeck *quiz.Deck
)

// Starter returns the built-in fallback deck. The embedded JSON is
// decoded once; a decode failure is a build defect and panics.
func Starter() *quiz.Deck {
	starterOnce.Do(func() {
		deck, err := quiz.DecodeDeck(starterJSON)
		if err != nil {
			panic("embedded starter deck invalid: " + err.Error())
		}
		starterDeck = deck
	})
	return starterDeck
}
