package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quizdeck/internal/scoring"
	"quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		p, err := st.ProgressRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		rank := scoring.RankForScore(p.HighScore)
		fmt.Printf("Total XP:    %d\n", p.TotalXP)
		fmt.Printf("High score:  %d (%s %s)\n", p.HighScore, rank.Icon(), rank.DisplayName())
		fmt.Printf("Day streak:  %d\n", p.CurrentStreakDays)
		fmt.Printf("Last played: %s\n", p.LastPlayed.Format("2006-01-02"))

		records, err := st.SessionLogRepo().Recent(ctx, 10)
		if err != nil {
			return fmt.Errorf("load session history: %w", err)
		}
		if len(records) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, rec := range records {
			when := rec.Timestamp.Local().Format("Jan 2 15:04")
			if rec.Action == store.ActionQuit {
				fmt.Printf("  %-14s %4d pts  (quit early)\n", when, rec.Score)
				continue
			}
			fmt.Printf("  %-14s %4d pts  %d/%d correct\n", when, rec.Score, rec.Correct, rec.Questions)
		}
		return nil
	},
}
