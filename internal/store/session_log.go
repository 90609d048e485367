package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Session log actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
	ActionQuit  = "quit"
)

// SessionLogData is one lifecycle record to append.
type SessionLogData struct {
	SessionID    string
	Action       string // start, end or quit
	Score        int    // on end/quit
	Questions    int    // on end/quit
	Correct      int    // on end
	DurationSecs int    // on end/quit
}

// SessionRecord is a completed or abandoned session as read back for
// the history screen and the stats command.
type SessionRecord struct {
	SessionID    string
	Action       string
	Score        int
	Questions    int
	Correct      int
	DurationSecs int
	Timestamp    time.Time
}

// SessionLogRepo is an append-only log of session lifecycle events.
type SessionLogRepo interface {
	Append(ctx context.Context, data SessionLogData) error

	// Recent returns the latest end/quit records, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)
}

type sessionLogRepo struct {
	db *sql.DB
}

func (r *sessionLogRepo) Append(ctx context.Context, data SessionLogData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_log (session_id, action, score, questions, correct, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Action, data.Score, data.Questions, data.Correct, data.DurationSecs)
	if err != nil {
		return fmt.Errorf("append session log: %w", err)
	}
	return nil
}

func (r *sessionLogRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, action, score, questions, correct, duration_secs, timestamp
		 FROM session_log
		 WHERE action IN (?, ?)
		 ORDER BY id DESC
		 LIMIT ?`, ActionEnd, ActionQuit, limit)
	if err != nil {
		return nil, fmt.Errorf("query session log: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.SessionID, &rec.Action, &rec.Score, &rec.Questions,
			&rec.Correct, &rec.DurationSecs, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session log: %w", err)
	}
	return records, nil
}
