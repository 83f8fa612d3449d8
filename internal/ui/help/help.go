// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zehraz1/portfolio/internal/keys"
	"github.com/zehraz1/portfolio/internal/ui/overlay"
	"github.com/zehraz1/portfolio/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.ListingAccentColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.ListingTextColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Mode selects which screen's bindings are listed.
type Mode int

const (
	ModeMarketplace Mode = iota
	ModeEditor
)

// section is one titled column of bindings.
type section struct {
	title    string
	bindings []key.Binding
}

// Model holds the help view state.
type Model struct {
	mode   Mode
	width  int
	height int
}

// New creates a help view for the given screen.
func New(mode Mode) Model {
	return Model{mode: mode}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Mode returns the screen the help describes.
func (m Model) Mode() Mode { return m.mode }

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) sections() (string, []section) {
	if m.mode == ModeEditor {
		k := keys.Editor
		return "Editor", []section{
			{"Explorer", []key.Binding{k.Up, k.Down, k.Open, k.ToggleSidebar}},
			{"Tabs", []key.Binding{k.NextTab, k.PrevTab, k.CloseTab}},
			{"View", []key.Binding{k.PageUp, k.PageDown, k.LineNumbers, k.Preview}},
			{"General", []key.Binding{k.Back, keys.Common.Help, keys.Common.Quit}},
		}
	}
	k := keys.Marketplace
	return "Marketplace", []section{
		{"Listing", []key.Binding{k.Download, k.GitHub, k.LinkedIn, k.ScrollUp, k.ScrollDown}},
		{"Contact", []key.Binding{k.Contact, k.NextField, k.PrevField, k.Send, k.Blur}},
		{"General", []key.Binding{keys.Common.Help, keys.Common.Quit}},
	}
}

func (m Model) renderContent() string {
	title, sections := m.sections()

	// every column but the last gets a right margin
	columnStyle := lipgloss.NewStyle().MarginRight(4)
	cols := make([]string, len(sections))
	for i, s := range sections {
		var col strings.Builder
		col.WriteString(sectionStyle.Render(s.title))
		col.WriteString("\n")
		for _, b := range s.bindings {
			col.WriteString(renderBinding(b))
		}
		cols[i] = col.String()
		if i < len(sections)-1 {
			cols[i] = columnStyle.Render(cols[i])
		}
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	boxWidth := lipgloss.Width(columns) + 4
	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render(title + " Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
