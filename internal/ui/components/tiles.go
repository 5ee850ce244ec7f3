package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/spelling"
	"github.com/abhisek/spellit/internal/ui/theme"
)

// TileRow renders the shuffled letter pool with a movable cursor.
type TileRow struct {
	Tiles  []spelling.Tile
	Cursor int
	// Used reports whether a tile currently sits in the word.
	Used func(id string) bool
}

// NewTileRow creates a tile row with the cursor on the first tile.
func NewTileRow(tiles []spelling.Tile, used func(string) bool) TileRow {
	return TileRow{Tiles: tiles, Used: used}
}

// Left moves the cursor one tile left, wrapping at the start.
func (r *TileRow) Left() {
	if len(r.Tiles) == 0 {
		return
	}
	r.Cursor = (r.Cursor - 1 + len(r.Tiles)) % len(r.Tiles)
}

// Right moves the cursor one tile right, wrapping at the end.
func (r *TileRow) Right() {
	if len(r.Tiles) == 0 {
		return
	}
	r.Cursor = (r.Cursor + 1) % len(r.Tiles)
}

// Current returns the tile under the cursor.
func (r TileRow) Current() (spelling.Tile, bool) {
	if r.Cursor < 0 || r.Cursor >= len(r.Tiles) {
		return spelling.Tile{}, false
	}
	return r.Tiles[r.Cursor], true
}

// View renders the row; used tiles are dimmed, the cursor tile highlighted.
func (r TileRow) View() string {
	cells := make([]string, 0, len(r.Tiles))
	for i, t := range r.Tiles {
		label := tileLabel(t.Char)
		switch {
		case i == r.Cursor:
			cells = append(cells, theme.TileActive.Render(label))
		case r.Used != nil && r.Used(t.ID):
			cells = append(cells, theme.TileUsed.Render(label))
		default:
			cells = append(cells, theme.TileIdle.Render(label))
		}
	}
	return strings.Join(cells, " ")
}

// WordSlots renders the typed buffer: one cell per letter of the target,
// error positions in red, a fully correct word in green.
func WordSlots(s *spelling.Session) string {
	if s == nil {
		return ""
	}
	typed := []rune(s.Typed())
	done := s.Complete()

	cells := make([]string, s.Len())
	for i := range cells {
		ch := "_"
		if i < len(typed) {
			ch = tileLabel(typed[i])
		}
		switch {
		case done:
			cells[i] = theme.SlotDone.Render(ch)
		case s.HasError(i):
			cells[i] = theme.SlotError.Render(ch)
		default:
			cells[i] = theme.Slot.Render(ch)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func tileLabel(r rune) string {
	if r == ' ' {
		return "·"
	}
	return strings.ToUpper(string(r))
}
