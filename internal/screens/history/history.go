package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/ui/layout"
	"github.com/abhisek/spellit/internal/ui/theme"
)

type historyLoadedMsg struct {
	Stats  []store.WordStat
	Recent map[string][]store.CompletionRecord // word key → completions, newest first
	Err    error
}

// HistoryScreen displays per-word results of past practice.
type HistoryScreen struct {
	eventRepo store.EventRepo
	stats     []store.WordStat
	recent    map[string][]store.CompletionRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// recentPerWord caps the completions shown under an expanded word.
const recentPerWord = 5

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := s.eventRepo.WordStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Recent completions are a detail; a failure here keeps the stats.
		records, err := s.eventRepo.QueryCompletions(ctx, store.QueryOpts{Limit: 500})
		if err != nil {
			return historyLoadedMsg{Stats: stats, Recent: make(map[string][]store.CompletionRecord)}
		}

		recent := make(map[string][]store.CompletionRecord)
		for _, r := range records {
			if len(recent[r.WordKey]) < recentPerWord {
				recent[r.WordKey] = append(recent[r.WordKey], r)
			}
		}

		return historyLoadedMsg{Stats: stats, Recent: recent}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No words spelled yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, st := range s.stats {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		avg := float64(st.TotalMistakes) / float64(st.Completions)
		line := fmt.Sprintf("%s%-18s  %3d× spelled  %.1f mistakes avg  best %s",
			prefix, st.WordKey, st.Completions, avg, formatMs(st.BestMs))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, r := range s.recent[st.WordKey] {
				detail := fmt.Sprintf("    %s  %s  %d mistakes",
					r.Timestamp.Local().Format("Jan 02 15:04"), formatMs(r.DurationMs), r.Mistakes)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(mistakeColor(r.Mistakes)).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func formatMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func mistakeColor(n int) color.Color {
	switch {
	case n == 0:
		return theme.Success
	case n <= 2:
		return theme.Accent
	default:
		return theme.Error
	}
}
