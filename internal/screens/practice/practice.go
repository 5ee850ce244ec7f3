package practice

import (
	"context"
	"time"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screen"
	"github.com/abhisek/spellit/internal/spelling"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/ui/components"
	"github.com/abhisek/spellit/internal/ui/layout"
)

// PracticeScreen shows the translation of the current word and lets the
// learner spell it with the tile row or the keyboard.
type PracticeScreen struct {
	trainer  *trainer.Trainer
	delay    time.Duration
	addWords func() screen.Screen

	sessionID string
	tiles     components.TileRow

	last    spelling.Result
	lastCh  rune
	hasLast bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.Resumer = (*PracticeScreen)(nil)

// New creates a PracticeScreen. addWords builds the screen opened from the
// empty state.
func New(t *trainer.Trainer, delay time.Duration, addWords func() screen.Screen) *PracticeScreen {
	if delay < 0 {
		delay = trainer.DefaultAdvanceDelay
	}
	s := &PracticeScreen{
		trainer:  t,
		delay:    delay,
		addWords: addWords,
	}
	s.sync()
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.resumeAdvance()
}

// Resume picks up changes made by other screens, such as added words.
func (s *PracticeScreen) Resume() tea.Cmd {
	s.sync()
	return s.resumeAdvance()
}

// resumeAdvance re-arms the delayed advance for a session that was
// completed while its tick was lost.
func (s *PracticeScreen) resumeAdvance() tea.Cmd {
	sess := s.trainer.Session()
	if sess == nil || !sess.Complete() {
		return nil
	}
	return scheduleAdvance(sess.ID(), s.delay)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.trainer.Session() == nil {
		return []layout.KeyHint{
			{Key: "a", Description: "Add words"},
			{Key: "r", Description: "Reset practice"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose tile"},
		{Key: "Enter", Description: "Place tile"},
		{Key: "a-z", Description: "Type"},
		{Key: "Esc", Description: "Back"},
	}
}

// sync rebuilds per-session view state when the trainer has moved on.
func (s *PracticeScreen) sync() {
	sess := s.trainer.Session()
	if sess == nil {
		s.sessionID = ""
		s.tiles = components.TileRow{}
		s.hasLast = false
		return
	}
	if sess.ID() == s.sessionID {
		return
	}
	s.sessionID = sess.ID()
	s.tiles = components.NewTileRow(sess.Tiles(), sess.Consumed)
	s.hasLast = false
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.sync()

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	sess := s.trainer.Session()
	if sess == nil {
		return s, s.handleEmptyKey(kmsg)
	}
	if sess.Complete() {
		// Waiting for the advance; the word is locked.
		return s, nil
	}

	switch kmsg.String() {
	case "left":
		s.tiles.Left()
		return s, nil
	case "right":
		s.tiles.Right()
		return s, nil
	case "enter":
		tile, ok := s.tiles.Current()
		if !ok {
			return s, nil
		}
		return s, s.submit(tile.Char, tile.ID)
	}

	if ch, ok := inputRune(kmsg); ok {
		return s, s.submit(ch, "")
	}
	return s, nil
}

func (s *PracticeScreen) handleEmptyKey(kmsg tea.KeyPressMsg) tea.Cmd {
	switch kmsg.String() {
	case "a":
		if s.addWords == nil {
			return nil
		}
		next := s.addWords()
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "r":
		s.trainer.ResetPractice(context.Background())
		s.sync()
	}
	return nil
}

func (s *PracticeScreen) submit(ch rune, tileID string) tea.Cmd {
	res := s.trainer.Submit(ch, tileID)
	s.last, s.lastCh, s.hasLast = res, ch, true

	if res.Completed {
		return scheduleAdvance(s.sessionID, s.delay)
	}
	return nil
}

// inputRune extracts a single letter or space from a key press. Anything
// else never reaches the engine.
func inputRune(kmsg tea.KeyPressMsg) (rune, bool) {
	if kmsg.String() == "space" {
		return ' ', true
	}
	r := []rune(kmsg.Text)
	if len(r) != 1 {
		return 0, false
	}
	if r[0] == ' ' || unicode.IsLetter(r[0]) {
		return r[0], true
	}
	return 0, false
}
