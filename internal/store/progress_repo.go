package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizdeck/internal/progress"
)

// dateLayout is the calendar-day storage format for last_played.
const dateLayout = "2006-01-02"

// ProgressRepo persists the single PlayerProgress record.
type ProgressRepo interface {
	// Load returns the current progress, or the documented default
	// record when none exists or the stored row is unreadable.
	Load(ctx context.Context) (progress.PlayerProgress, error)

	// Save upserts the progress record.
	Save(ctx context.Context, p progress.PlayerProgress) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context) (progress.PlayerProgress, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT total_xp, high_score, streak_days, last_played FROM player_progress WHERE id = 1`)

	var p progress.PlayerProgress
	var lastPlayed string
	err := row.Scan(&p.TotalXP, &p.HighScore, &p.CurrentStreakDays, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Default(time.Now()), nil
	}
	if err != nil {
		return progress.PlayerProgress{}, fmt.Errorf("load progress: %w", err)
	}

	day, err := time.Parse(dateLayout, lastPlayed)
	if err != nil {
		// Corrupt date: fall back to the default record rather than
		// poisoning streak arithmetic with a zero time.
		return progress.Default(time.Now()), nil
	}
	p.LastPlayed = day
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, p progress.PlayerProgress) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO player_progress (id, total_xp, high_score, streak_days, last_played)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			total_xp = excluded.total_xp,
			high_score = excluded.high_score,
			streak_days = excluded.streak_days,
			last_played = excluded.last_played`,
		p.TotalXP, p.HighScore, p.CurrentStreakDays, progress.DayOf(p.LastPlayed).Format(dateLayout))
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
