package home

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

func newTestHome() (*HomeScreen, *trainer.Trainer) {
	inv := inventory.New(inventory.WithDefaults([]words.Entry{
		words.NewEntry("cat", "кот"),
		words.NewEntry("dog", "собака"),
	}))
	inv.Load(context.Background())
	tr := trainer.New(inv)
	tr.Start()
	return New(Options{Trainer: tr}), tr
}

func down(h *HomeScreen, n int) {
	for range n {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func TestHomeScreen_PracticePushesPracticeScreen(t *testing.T) {
	h, _ := newTestHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("expected practice screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_HistoryDisabledWithoutRepo(t *testing.T) {
	h, _ := newTestHome()
	down(h, 3)
	item, _ := h.menu.Current()
	if item.Label == "History" {
		t.Error("history should be skipped without an event repo")
	}
	if item.Label != "Reset practice" {
		t.Errorf("expected Reset practice, got %q", item.Label)
	}
}

func TestHomeScreen_ResetPractice(t *testing.T) {
	h, tr := newTestHome()
	tr.Inventory().Finish("cat")
	tr.Inventory().Finish("dog")

	down(h, 3)
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if tr.Inventory().RemainingLen() != 2 {
		t.Errorf("RemainingLen = %d, want 2", tr.Inventory().RemainingLen())
	}
	if !strings.Contains(h.View(100, 30), "Practice reset") {
		t.Error("expected reset status")
	}

	h.Resume()
	if h.status != "" {
		t.Error("Resume should clear the status")
	}
}

func TestHomeScreen_ViewShowsCounts(t *testing.T) {
	h, _ := newTestHome()
	if !strings.Contains(h.View(100, 30), "2 words in your list") {
		t.Error("expected word count in view")
	}
}
