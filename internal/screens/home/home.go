package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/config"
	"quizdeck/internal/decks"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/scoring"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/history"
	"quizdeck/internal/screens/leaderboard"
	sessionscreen "quizdeck/internal/screens/session"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// RefreshStatsMsg asks the home screen to reload the stats bar, sent
// after returning from a session.
type RefreshStatsMsg struct{}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	st        *store.Store
	menu      components.Menu
	totalXP   int
	highScore int
	streak    int
	rank      scoring.Rank
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. pool is the full question pool for this
// run; each session draws a fresh subset from it.
func New(cfg config.Config, pool []quiz.Question, st *store.Store) *HomeScreen {
	h := &HomeScreen{st: st}
	h.refreshStats()

	perSession := cfg.QuestionsPerSession
	if perSession <= 0 {
		perSession = config.DefaultQuestionsPerSession
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				questions := decks.Draw(pool, perSession)
				return router.PushScreenMsg{
					Screen: sessionscreen.New(questions, st, cfg),
				}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: leaderboard.New(st.LeaderboardRepo(), cfg.LeaderboardSize),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st.SessionLogRepo())}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// refreshStats reloads the durable progress record.
func (h *HomeScreen) refreshStats() {
	p, err := h.st.ProgressRepo().Load(context.Background())
	if err != nil {
		return
	}
	h.totalXP = p.TotalXP
	h.highScore = p.HighScore
	h.streak = p.CurrentStreakDays
	h.rank = scoring.RankForScore(p.HighScore)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(RefreshStatsMsg); ok {
		h.refreshStats()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Q U I Z D E C K"))
	b.WriteString("\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString(center.Foreground(theme.TextDim).Render("Five questions. Thirty seconds each. Go."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Stats bar.
	stats := fmt.Sprintf("✦ %d XP", h.totalXP)
	if h.highScore > 0 {
		stats += fmt.Sprintf("    %s Best %d", h.rank.Icon(), h.highScore)
	}
	if h.streak > 0 {
		stats += fmt.Sprintf("    ★ %d-day streak", h.streak)
	}
	statsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Foreground(theme.Text).
		Render(stats)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsBox))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
