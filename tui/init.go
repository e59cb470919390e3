package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	b.progressStatus = "Loading home"
	cmds := []tea.Cmd{b.spinnerC.Tick, b.loadLanding(), tick()}

	if b.resume != "" {
		b.statesHistory.Push(homeState)
		b.progressStatus = "Resuming"
		cmds = append(cmds, b.openEpisode(b.resume, ""))
	}

	return tea.Batch(cmds...)
}
