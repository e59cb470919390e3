// Package ui holds the short-lived notification line shared by terminal views.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime of a notification on screen.
const Lifetime = 3 * time.Second

// Model shows one notification at a time next to the last line of a view.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// ClearNotificationMsg clears the notification shown at At. A newer one survives it.
type ClearNotificationMsg struct {
	At time.Time
}

// Notify returns a tea.Cmd that shows text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

// Notifyf is Notify with formatting.
func Notifyf(format string, args ...any) tea.Cmd {
	return Notify(fmt.Sprintf(format, args...))
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{At: at}
	})
}

// Update consumes string messages as notifications.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		if msg.At.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Notification is the text currently shown, if any.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	notifier := "\033[90m" + m.notification + "\033[0m"
	lines[len(lines)-1] += "  " + notifier
	return strings.Join(lines, "\n")
}
