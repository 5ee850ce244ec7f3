package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/screens/home"
	"github.com/abhisek/spellit/internal/screens/practice"
	"github.com/abhisek/spellit/internal/screens/welcome"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/ui/layout"
)

// Options holds dependencies for the application.
type Options struct {
	Trainer      *trainer.Trainer
	EventRepo    store.EventRepo
	AdvanceDelay time.Duration
	Delimiter    string
	Logger       *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	trainer *trainer.Trainer
	logger  *slog.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Trainer:      opts.Trainer,
			EventRepo:    opts.EventRepo,
			AdvanceDelay: opts.AdvanceDelay,
			Delimiter:    opts.Delimiter,
		})
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory)),
		trainer: opts.Trainer,
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case practice.AdvanceMsg:
		// Handled here so a word finished just before leaving the practice
		// screen still counts.
		if m.trainer.Advance(context.Background(), msg.SessionID) {
			m.logger.Debug("advanced", "from", msg.SessionID)
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	done, total := m.trainer.Progress()
	header := layout.RenderHeader(title, done, total, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
