package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Player    string
	Score     int
	Accuracy  float64
	CreatedAt time.Time
}

// LeaderboardRepo records finished-session results and serves the top list.
type LeaderboardRepo interface {
	// Submit appends a result. Every submission is kept; ranking
	// happens at query time.
	Submit(ctx context.Context, player string, score int, accuracy float64) error

	// Top returns the n best entries, highest score first. Ties break
	// by accuracy, then by earliest submission.
	Top(ctx context.Context, n int) ([]LeaderboardEntry, error)
}

type leaderboardRepo struct {
	db *sql.DB
}

func (r *leaderboardRepo) Submit(ctx context.Context, player string, score int, accuracy float64) error {
	if player == "" {
		player = "anonymous"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leaderboard (player, score, accuracy) VALUES (?, ?, ?)`,
		player, score, accuracy)
	if err != nil {
		return fmt.Errorf("submit leaderboard entry: %w", err)
	}
	return nil
}

func (r *leaderboardRepo) Top(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT player, score, accuracy, created_at FROM leaderboard
		 ORDER BY score DESC, accuracy DESC, created_at ASC
		 LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Player, &e.Score, &e.Accuracy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return entries, nil
}
