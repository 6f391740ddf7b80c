package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// renderInterval is the render tick period (~30 fps). The smoothing factor is
// applied once per tick, so this also sets the perceived blend rate.
const renderInterval = 33 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
