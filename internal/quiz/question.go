package quiz

// OptionCount is the number of options every question carries.
const OptionCount = 5

// OptionIDs lists the valid option identifiers in display order.
var OptionIDs = []string{"A", "B", "C", "D", "E"}

// Difficulty classifies how hard a question is. Display-only; the engine
// scores every question identically.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Option is a single answer choice. ID is one of OptionIDs.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is one multiple-choice question ready for display.
// Immutable once constructed; the session controller only reads it.
type Question struct {
	// ID identifies the question within its deck.
	ID int `json:"id"`

	// Category is a free-form topic label, e.g. "Astronomy".
	Category string `json:"category"`

	// Difficulty is the deck author's rating.
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question text shown to the player.
	Prompt string `json:"prompt"`

	// Options holds exactly five choices with ids A through E.
	// Slice order is display order.
	Options []Option `json:"options"`

	// CorrectOptionID names the single correct option.
	CorrectOptionID string `json:"correct_option_id"`

	// Explanation is a short rationale shown after the player answers.
	Explanation string `json:"explanation"`
}

// Option returns the option with the given id, or nil if absent.
func (q *Question) Option(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// CorrectOption returns the option matching CorrectOptionID.
func (q *Question) CorrectOption() *Option {
	return q.Option(q.CorrectOptionID)
}
