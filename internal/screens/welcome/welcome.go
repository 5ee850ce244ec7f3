package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealEvery  = 200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// word is spelled out tile by tile on the splash.
const word = "SPELLIT"

const tagline = "Spell it, one letter at a time."

type tickMsg time.Time

// WelcomeScreen shows a short splash before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
			return w, tick()
		}
		return w, w.transition()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// revealed is how many letters of word are shown.
func (w *WelcomeScreen) revealed() int {
	return min(int(w.elapsed/revealEvery), len(word))
}

func (w *WelcomeScreen) View(width, height int) string {
	n := w.revealed()

	tiles := make([]string, 0, len(word))
	for i, r := range word {
		if i < n {
			tiles = append(tiles, theme.TileActive.Render(string(r)))
		} else {
			tiles = append(tiles, theme.TileUsed.Render("_"))
		}
	}

	sections := []string{strings.Join(tiles, " ")}

	if n == len(word) {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
