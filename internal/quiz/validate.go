package quiz

import "fmt"

// ValidationError reports a malformed question or deck. It is the only
// error surfaced to callers as a hard failure; everything else in the
// engine is a defined no-op.
type ValidationError struct {
	QuestionID int // 0 when the deck as a whole is at fault
	Reason     string
	Err        error
}

func (e *ValidationError) Error() string {
	if e.QuestionID != 0 {
		return fmt.Sprintf("invalid question %d: %s", e.QuestionID, e.Reason)
	}
	return "invalid deck: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the structural invariants of a single question:
// exactly five options whose ids form the set A-E, and a correct id
// among them. Slice order is display order and is not constrained.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return &ValidationError{QuestionID: q.ID, Reason: "empty prompt"}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			QuestionID: q.ID,
			Reason:     fmt.Sprintf("want %d options, got %d", OptionCount, len(q.Options)),
		}
	}
	seen := make(map[string]bool, OptionCount)
	for i, opt := range q.Options {
		if !validOptionID(opt.ID) {
			return &ValidationError{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("option %d has id %q, want one of A-E", i, opt.ID),
			}
		}
		if seen[opt.ID] {
			return &ValidationError{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("duplicate option id %q", opt.ID),
			}
		}
		seen[opt.ID] = true
		if opt.Text == "" {
			return &ValidationError{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("option %s has empty text", opt.ID),
			}
		}
	}
	if q.Option(q.CorrectOptionID) == nil {
		return &ValidationError{
			QuestionID: q.ID,
			Reason:     fmt.Sprintf("correct option id %q not among options", q.CorrectOptionID),
		}
	}
	return nil
}

// validOptionID reports whether id is one of the five allowed ids.
func validOptionID(id string) bool {
	for _, known := range OptionIDs {
		if id == known {
			return true
		}
	}
	return false
}

// ValidateDeck checks a full question list before a session may start.
// An empty deck is rejected here rather than tolerated downstream.
func ValidateDeck(questions []Question) error {
	if len(questions) == 0 {
		return &ValidationError{Reason: "no questions"}
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
