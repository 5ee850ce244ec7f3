package addwords

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/spellit/internal/inventory"
	"github.com/abhisek/spellit/internal/trainer"
	"github.com/abhisek/spellit/internal/words"
)

func ctrlS() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

func newTestScreen(delimiter string) (*AddWordsScreen, *trainer.Trainer) {
	inv := inventory.New(inventory.WithDefaults([]words.Entry{words.NewEntry("cat", "кот")}))
	inv.Load(context.Background())
	tr := trainer.New(inv)
	tr.Start()
	return New(tr, delimiter), tr
}

func TestAddWordsScreen_SaveMergesValidLines(t *testing.T) {
	s, tr := newTestScreen("")
	s.area.SetValue("sun - солнце\nbroken line\nmoon - луна\ncat - кошка\n")

	s.Update(ctrlS())

	master := tr.Inventory().Master()
	if len(master) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(master), master)
	}
	if master[0].Translation != "кот" {
		t.Error("existing entry should win over a duplicate key")
	}
	if !strings.Contains(s.status, "Accepted 3 of 4 lines, 2 new words") {
		t.Errorf("unexpected status %q", s.status)
	}
	if s.area.Value() != "" {
		t.Error("textarea should be cleared after saving")
	}
	if tr.Inventory().RemainingLen() != 3 {
		t.Error("adding words should refill the remaining set")
	}
}

func TestAddWordsScreen_CustomDelimiter(t *testing.T) {
	s, tr := newTestScreen("=")
	s.area.SetValue("sun = солнце\nmoon - луна")

	s.Update(ctrlS())

	if tr.Inventory().Len() != 2 {
		t.Errorf("expected 2 words, got %d", tr.Inventory().Len())
	}
}

func TestAddWordsScreen_NoValidLines(t *testing.T) {
	s, tr := newTestScreen("")
	s.area.SetValue("just words\n - missing key")

	s.Update(ctrlS())

	if tr.Inventory().Len() != 1 {
		t.Error("nothing should be added")
	}
	if s.statusOK || !strings.Contains(s.status, "No valid lines") {
		t.Errorf("unexpected status %q", s.status)
	}
	if s.area.Value() == "" {
		t.Error("input should be kept so it can be fixed")
	}
}

func TestAddWordsScreen_Empty(t *testing.T) {
	s, _ := newTestScreen("")
	s.Update(ctrlS())
	if s.status != "Nothing to add yet." {
		t.Errorf("unexpected status %q", s.status)
	}
}

func TestCountLines(t *testing.T) {
	if n := countLines("a\r\n\r\n  \nb\n"); n != 2 {
		t.Errorf("countLines = %d, want 2", n)
	}
}
