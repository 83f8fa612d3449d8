package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/ui/markdown"
	"github.com/zehraz1/portfolio/internal/ui/styles"
)

// Zone ids, prefixed per model so several editors can share a manager.
const (
	zoneBack   = "back"
	zoneToggle = "toggle"
	zoneFile   = "file:"
	zoneTab    = "tab:"
	zoneClose  = "close:"
)

const maxTabLabel = 20

// ZoneID returns the mouse zone id of an element for this editor.
// Elements: "back", "toggle", "file:<id>", "tab:<id>", "close:<id>".
func (m Model) ZoneID(element string) string {
	return m.prefix + element
}

func (m Model) mark(id, s string) string {
	return m.zones.Mark(m.prefix+id, s)
}

func (m Model) hit(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(m.prefix + id)
	return z != nil && z.InBounds(msg)
}

// View renders the editor. The caller is expected to run the output
// through the zone manager's Scan.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := m.geometry()

	columns := []string{m.renderActivityBar(g)}
	if g.sidebar > 0 {
		columns = append(columns, m.renderSidebar(g))
	}
	columns = append(columns, lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabStrip(g.main),
		m.viewport.View(),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	back := m.mark(zoneBack, styles.TitleBarStyle.Bold(true).Render(" ‹ Back "))
	rest := max(m.width-lipgloss.Width(back), 0)
	title := styles.TitleBarStyle.
		Width(rest).
		Align(lipgloss.Center).
		Render(styles.Truncate(m.title, rest))
	return back + title
}

func (m Model) renderActivityBar(g geometry) string {
	style := styles.ActivityBarStyle
	if g.sidebar > 0 {
		style = styles.ActivityActiveStyle
	}
	rows := make([]string, g.body)
	rows[0] = m.mark(zoneToggle, style.Width(activityWidth).Render(" ≡ "))
	for i := 1; i < len(rows); i++ {
		rows[i] = styles.ActivityBarStyle.Width(activityWidth).Render("")
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderSidebar(g geometry) string {
	w := g.sidebar
	line := func(style lipgloss.Style, s string) string {
		return style.Width(w).Render(styles.Truncate(s, w))
	}

	rows := []string{
		line(styles.SidebarHeaderStyle, " EXPLORER"),
		line(styles.SidebarHeaderStyle, " ▾ "+strings.ToUpper(m.title)),
	}
	active := m.mgr.State().Active
	for i, f := range m.mgr.Registry().Files() {
		style := styles.SidebarStyle
		if i == m.cursor {
			style = styles.SidebarSelectedStyle
		}
		if f.ID == active {
			style = style.Bold(true)
		}
		rows = append(rows, m.mark(zoneFile+f.ID, line(style, "   "+content.Icon(f.Label)+" "+f.Label)))
	}

	if len(rows) > g.body {
		rows = rows[:g.body]
	}
	for len(rows) < g.body {
		rows = append(rows, line(styles.SidebarStyle, ""))
	}
	return strings.Join(rows, "\n")
}

// tabSegment is the plain text of one tab, used for width accounting.
type tabSegment struct {
	tab   tabs.Tab
	label string
	close string
}

func (s tabSegment) width() int {
	return lipgloss.Width(s.label) + lipgloss.Width(s.close)
}

func segments(ts []tabs.Tab) ([]tabSegment, []int) {
	segs := make([]tabSegment, len(ts))
	widths := make([]int, len(ts))
	for i, t := range ts {
		segs[i] = tabSegment{
			tab:   t,
			label: " " + content.Icon(t.Label) + " " + styles.Truncate(t.Label, maxTabLabel) + " ",
			close: "✕ ",
		}
		widths[i] = segs[i].width()
	}
	return segs, widths
}

func (m Model) renderTabStrip(width int) string {
	ts := m.mgr.Tabs()
	segs, widths := segments(ts)
	w := fitStrip(widths, m.stripStart, activeIndex(ts), width)

	var b strings.Builder
	if w.left {
		b.WriteString(styles.TabScrollHintStyle.Render("<"))
	}
	for _, s := range segs[w.start:w.end] {
		base := styles.TabStyle
		if s.tab.Active {
			base = styles.TabActiveStyle
		}
		closeStyle := styles.TabCloseDisabledStyle.Inherit(base)
		if s.tab.Closable {
			closeStyle = styles.TabCloseStyle.Inherit(base)
		}
		b.WriteString(m.mark(zoneTab+s.tab.ID, base.Render(s.label)))
		b.WriteString(m.mark(zoneClose+s.tab.ID, closeStyle.Render(s.close)))
	}
	if w.right {
		b.WriteString(styles.TabScrollHintStyle.Render(">"))
	}

	strip := b.String()
	if pad := width - lipgloss.Width(strip); pad > 0 {
		strip += styles.TabStyle.Render(strings.Repeat(" ", pad))
	}
	return strip
}

func activeIndex(ts []tabs.Tab) int {
	for i, t := range ts {
		if t.Active {
			return i
		}
	}
	return 0
}

func (m Model) renderStatusBar() string {
	active := m.mgr.Active()
	left := fmt.Sprintf(" %s %s", content.Icon(active.Label), active.Label)
	mode := fmt.Sprintf("wrap %d", m.budget)
	if m.previewOn && m.preview != nil && markdown.IsMarkdown(active.Label) {
		mode = "preview"
	}
	right := fmt.Sprintf("%d lines  %s  %3.0f%% ", m.lineCount, mode, m.viewport.ScrollPercent()*100)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.StatusBarStyle.Render(styles.PadRight(left+strings.Repeat(" ", gap)+right, m.width))
}
