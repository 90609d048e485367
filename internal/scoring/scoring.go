package scoring

import "quizdeck/internal/quiz"

// PointsPerCorrect is the flat award for a correct answer.
const PointsPerCorrect = 20

// IsCorrect reports whether the chosen option answers the question.
func IsCorrect(q *quiz.Question, optionID string) bool {
	return optionID != "" && optionID == q.CorrectOptionID
}

// PointsForAnswer returns the score delta for one answer.
func PointsForAnswer(correct bool) int {
	if correct {
		return PointsPerCorrect
	}
	return 0
}

// Accuracy returns the percentage of correct answers.
// Defined only for totalQuestions > 0; callers guard the empty case.
func Accuracy(correctCount, totalQuestions int) float64 {
	return float64(correctCount) / float64(totalQuestions) * 100
}

// IsNewHighScore reports whether finalScore beats the previous best.
// Ties do not count as a new high score.
func IsNewHighScore(finalScore, previousHighScore int) bool {
	return finalScore > previousHighScore
}
