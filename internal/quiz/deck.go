package quiz

import (
	"encoding/json"
	"fmt"
)

// Deck is the on-disk JSON form of a question list.
type Deck struct {
	// Name labels the deck on the home screen, e.g. "Starter Deck".
	Name string `json:"name"`

	Questions []Question `json:"questions"`
}

// DecodeDeck parses and validates a JSON deck.
func DecodeDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if err := ValidateDeck(d.Questions); err != nil {
		return nil, err
	}
	return &d, nil
}

// EncodeDeck serializes a deck for storage.
func EncodeDeck(d *Deck) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return data, nil
}
