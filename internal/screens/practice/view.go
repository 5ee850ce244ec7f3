package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/spelling"
	"github.com/abhisek/spellit/internal/ui/components"
	"github.com/abhisek/spellit/internal/ui/layout"
	"github.com/abhisek/spellit/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	sess := s.trainer.Session()
	if sess == nil {
		return s.renderEmpty(width, height)
	}

	done, total := s.trainer.Progress()
	barWidth := min(width-8, 50)

	card := theme.Card.
		Foreground(theme.Accent).
		Bold(true).
		Render(sess.Target().Translation)

	sections := []string{
		components.NewProgressBar(done, total, barWidth).View(),
		"",
		card,
		"",
		components.WordSlots(sess),
		"",
		s.tiles.View(),
		"",
		s.renderFeedback(sess),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (s *PracticeScreen) renderFeedback(sess *spelling.Session) string {
	if sess.Complete() {
		return theme.Correct.Render("Correct!")
	}
	if !s.hasLast {
		return theme.Hint.Render("Spell the word for this translation.")
	}

	letter := strings.ToUpper(string(s.lastCh))
	if s.lastCh == ' ' {
		letter = "space"
	}

	res := s.last
	switch {
	case res.Accepted && res.Correct:
		return theme.Correct.Render(fmt.Sprintf("%s fits.", letter))
	case res.Accepted:
		return theme.Incorrect.Render(fmt.Sprintf("%s does not go in position %d.", letter, res.Position+1))
	}

	switch res.Rejection {
	case spelling.RejectNotInWord:
		return theme.Incorrect.Render(fmt.Sprintf("There is no %s in this word.", letter))
	case spelling.RejectConsumed, spelling.RejectNoTile:
		return theme.Hint.Render(fmt.Sprintf("Every %s tile is already placed.", letter))
	default:
		return theme.Hint.Render("That tile cannot be placed.")
	}
}

func (s *PracticeScreen) renderEmpty(width, height int) string {
	msg := "You have spelled every word in this pass!"
	if s.trainer.Inventory().Len() == 0 {
		msg = "Your word list is empty."
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(msg),
		"",
		layout.Centered("a: add words   r: reset practice", width, theme.TextDim),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
