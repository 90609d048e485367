package progress

import "time"

// DayOf strips the time of day, leaving midnight UTC of the same calendar
// date. All streak arithmetic happens at this granularity so intra-day
// timing and timezone offsets cannot shift the day delta.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateStreak returns the day-streak after playing on today.
//
// Same-day replays keep the streak unchanged, playing on the next
// calendar day extends it by one, and anything else resets to 1 —
// including gaps of two or more days and clock skew that puts
// lastPlayed in the future.
func CalculateStreak(lastPlayed time.Time, currentStreak int, today time.Time) int {
	last := DayOf(lastPlayed)
	now := DayOf(today)

	switch now.Sub(last) {
	case 0:
		return currentStreak
	case 24 * time.Hour:
		return currentStreak + 1
	default:
		return 1
	}
}
