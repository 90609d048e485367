package session

import (
	"time"

	"quizdeck/internal/scoring"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	CorrectCount   int
	Score          int
	Accuracy       float64 // percentage, 0..100
	Rank           scoring.Rank
}

// BuildSummary creates a Summary from a finished session.
func BuildSummary(state State, result Result) *Summary {
	return &Summary{
		SessionID:      state.SessionID,
		Duration:       time.Since(state.StartedAt),
		TotalQuestions: len(state.Questions),
		CorrectCount:   state.CorrectCount,
		Score:          result.Score,
		Accuracy:       result.Accuracy,
		Rank:           scoring.RankForScore(result.Score),
	}
}
