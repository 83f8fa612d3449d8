// Package toaster shows short-lived notifications over the current view.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zehraz1/portfolio/internal/ui/overlay"
	"github.com/zehraz1/portfolio/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Kind determines the border colour and icon.
type Kind int

const (
	Success Kind = iota
	Error
	Info
)

// DismissMsg hides the toast with the matching sequence number.
// Older timers do not hide newer toasts.
type DismissMsg struct{ seq int }

// Model holds the toaster state.
type Model struct {
	message string
	kind    Kind
	seq     int
}

// New creates a hidden toaster.
func New() Model { return Model{} }

// Show displays message and returns the command that hides it after d.
func (m Model) Show(message string, kind Kind, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.kind = kind
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{seq: seq} })
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		m.message = ""
	}
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool { return m.message != "" }

// Message returns the current text.
func (m Model) Message() string { return m.message }

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	box := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	switch m.kind {
	case Error:
		return box.BorderForeground(styles.ToastBorderErrorColor).Render("✗ " + m.message)
	case Info:
		return box.BorderForeground(styles.ToastBorderInfoColor).Render("✨ " + m.message)
	default:
		return box.BorderForeground(styles.ToastBorderSuccessColor).Render("✓ " + m.message)
	}
}

// Overlay draws the toast in the bottom-right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     2,
		PadY:     1,
	}, m.View(), bg)
}
