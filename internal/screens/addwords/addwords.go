package addwords

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/ui/layout"
	"github.com/abhisek/spellit/internal/ui/theme"
	"github.com/abhisek/spellit/internal/words"
)

// AddWordsScreen takes a block of "word - translation" lines and merges
// the valid ones into the word list.
type AddWordsScreen struct {
	trainer   *trainer.Trainer
	delimiter string
	area      textarea.Model

	status   string
	statusOK bool
}

var _ screen.Screen = (*AddWordsScreen)(nil)
var _ screen.KeyHintProvider = (*AddWordsScreen)(nil)

// New creates an AddWordsScreen splitting lines on delimiter.
func New(t *trainer.Trainer, delimiter string) *AddWordsScreen {
	if delimiter == "" {
		delimiter = words.DefaultDelimiter
	}

	area := textarea.New()
	area.Placeholder = fmt.Sprintf("computer %s компьютер", delimiter)
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetHeight(10)

	return &AddWordsScreen{
		trainer:   t,
		delimiter: delimiter,
		area:      area,
	}
}

func (s *AddWordsScreen) Init() tea.Cmd {
	return s.area.Focus()
}

func (s *AddWordsScreen) Title() string {
	return "Add words"
}

func (s *AddWordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddWordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "ctrl+s" {
		s.save()
		return s, nil
	}

	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	return s, cmd
}

func (s *AddWordsScreen) save() {
	text := s.area.Value()
	lines := countLines(text)
	if lines == 0 {
		s.status, s.statusOK = "Nothing to add yet.", false
		return
	}

	entries := words.ParseBulk(text, s.delimiter)
	if len(entries) == 0 {
		s.status = fmt.Sprintf("No valid lines. Use: word %s translation", s.delimiter)
		s.statusOK = false
		return
	}

	before := s.trainer.Inventory().Len()
	s.trainer.AddWords(context.Background(), entries)
	added := s.trainer.Inventory().Len() - before

	s.status = fmt.Sprintf("Accepted %d of %d lines, %d new words.", len(entries), lines, added)
	s.statusOK = true
	s.area.Reset()
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func (s *AddWordsScreen) View(width, height int) string {
	s.area.SetWidth(min(width-8, 72))

	status := ""
	if s.status != "" {
		color := theme.Error
		if s.statusOK {
			color = theme.Success
		}
		status = lipgloss.NewStyle().Foreground(color).Render(s.status)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Subtitle.Render(fmt.Sprintf("One word per line:  word %s translation", s.delimiter)),
		"",
		s.area.View(),
		"",
		status,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
