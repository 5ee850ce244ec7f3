package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/spellit/internal/inventory"
	"github.com/abhisek/spellit/internal/router"
	"github.com/abhisek/spellit/internal/screens/practice"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/words"
)

func newTestApp() (AppModel, *trainer.Trainer) {
	inv := inventory.New(inventory.WithDefaults([]words.Entry{
		words.NewEntry("cat", "кот"),
		words.NewEntry("dog", "собака"),
	}))
	inv.Load(context.Background())
	tr := trainer.New(inv)
	tr.Start()
	return newAppModel(Options{Trainer: tr}), tr
}

func spell(tr *trainer.Trainer) string {
	s := tr.Session()
	for _, r := range s.Target().Key {
		tr.Submit(r, "")
	}
	return s.ID()
}

func TestAppModel_AdvanceMsgFinishesWord(t *testing.T) {
	m, tr := newTestApp()
	id := spell(tr)

	m.Update(practice.AdvanceMsg{SessionID: id})

	done, total := tr.Progress()
	if done != 1 || total != 2 {
		t.Errorf("Progress = %d/%d, want 1/2", done, total)
	}
	if tr.Session().ID() == id {
		t.Error("expected a new session")
	}
}

func TestAppModel_StaleAdvanceIgnored(t *testing.T) {
	m, tr := newTestApp()
	id := spell(tr)
	m.Update(practice.AdvanceMsg{SessionID: id})
	m.Update(practice.AdvanceMsg{SessionID: id})

	if done, _ := tr.Progress(); done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m, _ := newTestApp()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}

	m.router.Push(practice.New(m.trainer, 0, nil))
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_ViewFrame(t *testing.T) {
	m, _ := newTestApp()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := updated.(AppModel).render()
	if !strings.Contains(view, "Spellit") {
		t.Error("expected header in view")
	}
	if !strings.Contains(view, "0/2") {
		t.Error("expected progress in header")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := newTestApp()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestAppModel_SplashLeadsHome(t *testing.T) {
	m, _ := newTestApp()
	if m.Init() == nil {
		t.Error("splash should start its animation")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m.Update(cmd())

	if m.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", m.router.Active().Title())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
