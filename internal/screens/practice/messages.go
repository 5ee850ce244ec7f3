package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// AdvanceMsg fires once the post-completion delay of a session has
// elapsed. The root model hands it to Trainer.Advance, which ignores it if
// the session has been replaced in the meantime.
type AdvanceMsg struct {
	SessionID string
}

func scheduleAdvance(sessionID string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{SessionID: sessionID}
	})
}
