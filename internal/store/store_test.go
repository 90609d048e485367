package store

import (
	"context"
	"testing"
	"time"

	"quizdeck/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoad_DefaultWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p.TotalXP != 0 || p.HighScore != 0 || p.CurrentStreakDays != 0 {
		t.Errorf("expected zeroed default, got %+v", p)
	}
	if !p.LastPlayed.Equal(progress.DayOf(time.Now())) {
		t.Errorf("default LastPlayed = %v, want today", p.LastPlayed)
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	want := progress.PlayerProgress{
		TotalXP:           140,
		HighScore:         80,
		CurrentStreakDays: 3,
		LastPlayed:        day,
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalXP != want.TotalXP || got.HighScore != want.HighScore ||
		got.CurrentStreakDays != want.CurrentStreakDays || !got.LastPlayed.Equal(day) {
		t.Errorf("load = %+v, want %+v", got, want)
	}

	// Upsert overwrites the single row.
	want.TotalXP = 200
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (update): %v", err)
	}
	if got.TotalXP != 200 {
		t.Errorf("TotalXP after update = %d, want 200", got.TotalXP)
	}
}

func TestProgressLoad_CorruptDateFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO player_progress (id, total_xp, high_score, streak_days, last_played)
		 VALUES (1, 10, 10, 1, 'not-a-date')`)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	p, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.TotalXP != 0 || p.CurrentStreakDays != 0 {
		t.Errorf("expected default record on corrupt date, got %+v", p)
	}
}

func TestLeaderboard_SubmitAndTop(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeaderboardRepo()
	ctx := context.Background()

	submissions := []struct {
		player   string
		score    int
		accuracy float64
	}{
		{"nova", 60, 75},
		{"rigel", 100, 100},
		{"vega", 60, 100},
		{"", 20, 25},
	}
	for _, sub := range submissions {
		if err := repo.Submit(ctx, sub.player, sub.score, sub.accuracy); err != nil {
			t.Fatalf("submit %q: %v", sub.player, err)
		}
	}

	top, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}
	if top[0].Player != "rigel" {
		t.Errorf("top[0] = %q, want rigel", top[0].Player)
	}
	// Equal scores rank by accuracy.
	if top[1].Player != "vega" || top[2].Player != "nova" {
		t.Errorf("tie break order = %q, %q; want vega, nova", top[1].Player, top[2].Player)
	}
}

func TestLeaderboard_AnonymousFallback(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeaderboardRepo()
	ctx := context.Background()

	if err := repo.Submit(ctx, "", 40, 50); err != nil {
		t.Fatalf("submit: %v", err)
	}
	top, err := repo.Top(ctx, 1)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Player != "anonymous" {
		t.Errorf("top = %+v, want one anonymous entry", top)
	}
}

func TestSessionLog_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionLogRepo()
	ctx := context.Background()

	logs := []SessionLogData{
		{SessionID: "s1", Action: ActionStart},
		{SessionID: "s1", Action: ActionEnd, Score: 60, Questions: 5, Correct: 3, DurationSecs: 90},
		{SessionID: "s2", Action: ActionStart},
		{SessionID: "s2", Action: ActionQuit, Score: 20, Questions: 5, DurationSecs: 35},
	}
	for _, l := range logs {
		if err := repo.Append(ctx, l); err != nil {
			t.Fatalf("append %+v: %v", l, err)
		}
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2 (start records excluded)", len(recent))
	}
	if recent[0].SessionID != "s2" || recent[0].Action != ActionQuit {
		t.Errorf("recent[0] = %+v, want s2 quit", recent[0])
	}
	if recent[1].SessionID != "s1" || recent[1].Score != 60 {
		t.Errorf("recent[1] = %+v, want s1 end with score 60", recent[1])
	}
}
