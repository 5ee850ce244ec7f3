package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/screens/addwords"
	"github.com/abhisek/spellit/internal/screens/history"
	"github.com/abhisek/spellit/internal/screens/practice"
	"github.com/abhisek/spellit/internal/screens/wordlist"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/ui/components"
	"github.com/abhisek/spellit/internal/ui/theme"
)

// Options carries the collaborators the home screen hands to the screens
// it opens.
type Options struct {
	Trainer      *trainer.Trainer
	EventRepo    store.EventRepo
	AdvanceDelay time.Duration
	Delimiter    string
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	status string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}

	items := []components.MenuItem{
		{Label: "Practice", Hint: "spell the next word", Action: func() tea.Cmd {
			return push(h.practiceScreen())
		}},
		{Label: "Add words", Hint: "paste word - translation lines", Action: func() tea.Cmd {
			return push(h.addWordsScreen())
		}},
		{Label: "Word list", Hint: "review or remove words", Action: func() tea.Cmd {
			return push(wordlist.New(opts.Trainer, h.practiceScreen))
		}},
		{Label: "History", Hint: "per-word results", Action: func() tea.Cmd {
			return push(history.New(opts.EventRepo))
		}, Disabled: opts.EventRepo == nil},
		{Label: "Reset practice", Hint: "start a new pass over every word", Action: func() tea.Cmd {
			opts.Trainer.ResetPractice(context.Background())
			_, total := opts.Trainer.Progress()
			h.status = fmt.Sprintf("Practice reset: %d words to go.", total)
			return nil
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) practiceScreen() screen.Screen {
	return practice.New(h.opts.Trainer, h.opts.AdvanceDelay, h.addWordsScreen)
}

func (h *HomeScreen) addWordsScreen() screen.Screen {
	return addwords.New(h.opts.Trainer, h.opts.Delimiter)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume clears the status line when the user comes back to the menu.
func (h *HomeScreen) Resume() tea.Cmd {
	h.status = ""
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 20

	inv := h.opts.Trainer.Inventory()
	summary := fmt.Sprintf("%d words in your list · %d left this pass", inv.Len(), inv.RemainingLen())

	sections := []string{
		renderBanner(width, compact),
		theme.Subtitle.Render(summary),
		h.menu.View(),
	}
	if h.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render(h.status))
	}

	blocks := make([]string, 0, 2*len(sections))
	for i, sec := range sections {
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, sec)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, blocks...))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
