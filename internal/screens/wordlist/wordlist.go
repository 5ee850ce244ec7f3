package wordlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/ui/layout"
	"github.com/abhisek/spellit/internal/ui/theme"
)

// WordListScreen lists every word with its translation and lets the user
// remove words.
type WordListScreen struct {
	trainer    *trainer.Trainer
	practice   func() screen.Screen
	selected   int
	offset     int
	confirming bool
	status     string
}

var _ screen.Screen = (*WordListScreen)(nil)
var _ screen.KeyHintProvider = (*WordListScreen)(nil)

// New creates a WordListScreen. practice builds the screen opened with p.
func New(t *trainer.Trainer, practice func() screen.Screen) *WordListScreen {
	return &WordListScreen{trainer: t, practice: practice}
}

func (s *WordListScreen) Init() tea.Cmd {
	return nil
}

func (s *WordListScreen) Title() string {
	return "Word list"
}

func (s *WordListScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Remove all"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "d", Description: "Remove"},
		{Key: "D", Description: "Remove all"},
		{Key: "p", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	ctx := context.Background()
	inv := s.trainer.Inventory()

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			n := inv.Len()
			s.trainer.RemoveAll(ctx)
			s.status = fmt.Sprintf("Removed %d words.", n)
			s.selected, s.offset = 0, 0
		default:
			s.status = ""
		}
		s.confirming = false
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < inv.Len()-1 {
			s.selected++
		}
	case "d", "delete":
		master := inv.Master()
		if s.selected >= len(master) {
			return s, nil
		}
		key := master[s.selected].Key
		s.trainer.RemoveWord(ctx, key)
		s.status = fmt.Sprintf("Removed %q.", key)
		if s.selected >= inv.Len() && s.selected > 0 {
			s.selected--
		}
	case "D":
		if inv.Len() > 0 {
			s.confirming = true
			s.status = ""
		}
	case "p":
		if s.practice != nil {
			next := s.practice()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *WordListScreen) View(width, height int) string {
	inv := s.trainer.Inventory()
	master := inv.Master()

	if len(master) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No words yet. Add some from the home menu.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fmt.Sprintf("%d words · %d left this pass", inv.Len(), inv.RemainingLen()))))
	b.WriteString("\n\n")

	rows := max(height-6, 1)
	s.scrollTo(rows)

	end := min(s.offset+rows, len(master))
	for i := s.offset; i < end; i++ {
		e := master[i]
		mark := "✓"
		if inv.IsRemaining(e.Key) {
			mark = "•"
		}
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s %-20s %s", prefix, mark, e.Key, e.Translation)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.confirming:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Remove all %d words? (y/n)", len(master)))))
	case s.status != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.status)))
	}

	return b.String()
}

// scrollTo keeps the selected row inside a window of rows lines.
func (s *WordListScreen) scrollTo(rows int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
}
