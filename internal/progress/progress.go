package progress

import "time"

// PlayerProgress is the durable cross-session player record.
// The engine only computes new values; the store package owns I/O.
type PlayerProgress struct {
	// TotalXP accumulates score across all sessions, including
	// partial credit from quit sessions.
	TotalXP int

	// HighScore is the best single-session score.
	HighScore int

	// CurrentStreakDays counts consecutive calendar days played.
	CurrentStreakDays int

	// LastPlayed is the calendar day of the most recent session,
	// truncated to midnight UTC.
	LastPlayed time.Time
}

// Default returns the progress record for a player with no history.
func Default(today time.Time) PlayerProgress {
	return PlayerProgress{LastPlayed: DayOf(today)}
}

// ApplySessionResult folds a finished session into the progress record.
// Pure transform: the input is not mutated.
func ApplySessionResult(p PlayerProgress, sessionScore int, today time.Time) PlayerProgress {
	next := p
	next.TotalXP = p.TotalXP + sessionScore
	if sessionScore > p.HighScore {
		next.HighScore = sessionScore
	}
	next.CurrentStreakDays = CalculateStreak(p.LastPlayed, p.CurrentStreakDays, today)
	// A freshly-defaulted record carries streak 0 with LastPlayed set to
	// today; a completed session today is always at least a 1-day streak.
	if next.CurrentStreakDays < 1 {
		next.CurrentStreakDays = 1
	}
	next.LastPlayed = DayOf(today)
	return next
}

// ApplyPartialCredit folds a quit session's score into TotalXP without
// touching the high score or the day streak. A quit session still counts
// for XP but is not a completed play for streak purposes.
func ApplyPartialCredit(p PlayerProgress, partialScore int) PlayerProgress {
	next := p
	next.TotalXP = p.TotalXP + partialScore
	return next
}
