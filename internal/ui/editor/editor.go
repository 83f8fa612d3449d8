// Package editor contains the code-editor view: explorer sidebar, tab
// strip and a gutter of wrapped lines.
package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/zehraz1/portfolio/internal/keys"
	"github.com/zehraz1/portfolio/internal/layout"
	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/ui/markdown"
	"github.com/zehraz1/portfolio/internal/ui/styles"
	"github.com/zehraz1/portfolio/internal/wrap"
)

// Layout constants.
const (
	activityWidth   = 3
	sidebarMin      = 18
	sidebarMax      = 28
	mainMin         = 16 // sidebar is hidden when the main pane would get narrower
	gutterGap       = 2
	scrollStep      = 3
	defaultMinChars = 10
)

// Messages emitted by the editor for the app to handle.

// BackMsg requests a return to the marketplace listing.
type BackMsg struct{}

// SettingsMsg reports a view toggle the app may want to persist.
type SettingsMsg struct {
	LineNumbers bool
	Preview     bool
}

// NoticeMsg asks the app to show a short message.
type NoticeMsg struct {
	Text string
}

// Config holds the editor's view options.
type Config struct {
	Title       string
	LineNumbers bool
	Preview     bool
	MinChars    int
	Previewer   *markdown.Previewer
	Zones       *zone.Manager
}

// Model holds the editor view state.
type Model struct {
	mgr     *tabs.Manager
	zones   *zone.Manager
	prefix  string
	preview *markdown.Previewer

	title       string
	lineNumbers bool
	previewOn   bool
	minChars    int

	width  int
	height int

	cursor     int // explorer selection
	stripStart int
	viewport   viewport.Model
	budget     int
	lineCount  int
	shownID    string
}

// New creates an editor over mgr.
func New(mgr *tabs.Manager, cfg Config) Model {
	zones := cfg.Zones
	if zones == nil {
		zones = zone.New()
	}
	minChars := cfg.MinChars
	if minChars < 1 {
		minChars = defaultMinChars
	}
	m := Model{
		mgr:         mgr,
		zones:       zones,
		prefix:      zones.NewPrefix(),
		preview:     cfg.Previewer,
		title:       cfg.Title,
		lineNumbers: cfg.LineNumbers,
		previewOn:   cfg.Preview,
		minChars:    minChars,
		viewport:    viewport.New(0, 0),
	}
	m.cursor = m.fileIndex(mgr.State().Active)
	return m
}

// SetSize updates dimensions and re-wraps the active file.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.refresh()
}

// Manager returns the tab manager backing the view.
func (m Model) Manager() *tabs.Manager { return m.mgr }

// Budget returns the character budget the active file was wrapped at.
func (m Model) Budget() int { return m.budget }

// LineNumbers reports whether the gutter is shown.
func (m Model) LineNumbers() bool { return m.lineNumbers }

// Previewing reports whether markdown files render as a preview.
func (m Model) Previewing() bool { return m.previewOn }

// Cursor returns the explorer selection index.
func (m Model) Cursor() int { return m.cursor }

// Reload re-reads the active file, e.g. after the registry was rebound.
func (m Model) Reload() Model {
	m.shownID = ""
	m.cursor = clamp(m.cursor, 0, max(m.mgr.Registry().Len()-1, 0))
	return m.refresh()
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := keys.Editor
	switch {
	case key.Matches(msg, k.Back):
		return m, back
	case key.Matches(msg, k.ToggleSidebar):
		return m.apply(tabs.ToggleSidebar{}), nil
	case key.Matches(msg, k.Up):
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case key.Matches(msg, k.Down):
		m.cursor = min(m.cursor+1, max(m.mgr.Registry().Len()-1, 0))
		return m, nil
	case key.Matches(msg, k.Open):
		files := m.mgr.Registry().Files()
		if m.cursor < len(files) {
			return m.apply(tabs.OpenFile{ID: files[m.cursor].ID}), nil
		}
		return m, nil
	case key.Matches(msg, k.CloseTab):
		return m.closeTab(m.mgr.State().Active)
	case key.Matches(msg, k.NextTab):
		return m.apply(tabs.CycleTab{Delta: 1}), nil
	case key.Matches(msg, k.PrevTab):
		return m.apply(tabs.CycleTab{Delta: -1}), nil
	case key.Matches(msg, k.PageUp):
		m.viewport.ScrollUp(max(m.viewport.Height-1, 1))
		return m, nil
	case key.Matches(msg, k.PageDown):
		m.viewport.ScrollDown(max(m.viewport.Height-1, 1))
		return m, nil
	case key.Matches(msg, k.LineNumbers):
		m.lineNumbers = !m.lineNumbers
		m.shownID = ""
		return m.refresh(), m.settings()
	case key.Matches(msg, k.Preview):
		m.previewOn = !m.previewOn
		m.shownID = ""
		return m.refresh(), m.settings()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.ScrollUp(scrollStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.ScrollDown(scrollStep)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.hit(zoneBack, msg) {
		return m, back
	}
	if m.hit(zoneToggle, msg) {
		return m.apply(tabs.ToggleSidebar{}), nil
	}
	for i, f := range m.mgr.Registry().Files() {
		if m.hit(zoneFile+f.ID, msg) {
			m.cursor = i
			return m.apply(tabs.OpenFile{ID: f.ID}), nil
		}
	}
	for _, t := range m.mgr.Tabs() {
		if m.hit(zoneClose+t.ID, msg) {
			return m.closeTab(t.ID)
		}
		if m.hit(zoneTab+t.ID, msg) {
			return m.apply(tabs.SelectTab{ID: t.ID}), nil
		}
	}
	return m, nil
}

func (m Model) closeTab(id string) (Model, tea.Cmd) {
	if !m.mgr.State().CanClose(id) {
		return m, notice("Can't close the last tab")
	}
	return m.apply(tabs.CloseTab{ID: id}), nil
}

func (m Model) apply(e tabs.Event) Model {
	if err := m.mgr.Apply(e); err != nil {
		log.ErrorErr(log.CatUI, "tab event rejected", err)
		return m
	}
	if id := m.mgr.State().Active; m.mgr.Registry().Has(id) {
		m.cursor = m.fileIndex(id)
	}
	return m.refresh()
}

func (m Model) fileIndex(id string) int {
	for i, f := range m.mgr.Registry().Files() {
		if f.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) settings() tea.Cmd {
	s := SettingsMsg{LineNumbers: m.lineNumbers, Preview: m.previewOn}
	return func() tea.Msg { return s }
}

func back() tea.Msg { return BackMsg{} }

func notice(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text} }
}

// geometry splits the screen. Rows: title bar, body, status bar.
type geometry struct {
	sidebar  int // 0 when hidden
	main     int
	body     int
	contentH int
}

func (m Model) geometry() geometry {
	g := geometry{body: max(m.height-2, 1)}
	g.contentH = max(g.body-1, 1)
	rest := max(m.width-activityWidth, 1)
	if m.mgr.State().SidebarOpen {
		sw := clamp(m.width/4, sidebarMin, sidebarMax)
		if rest-sw >= mainMin {
			g.sidebar = sw
		}
	}
	g.main = max(rest-g.sidebar, 1)
	return g
}

// refresh wraps the active file at the current budget and loads it into
// the viewport.
func (m Model) refresh() Model {
	if m.width <= 0 || m.height <= 0 {
		return m
	}
	g := m.geometry()
	active := m.mgr.Active()

	var rows []string
	if m.previewOn && m.preview != nil && markdown.IsMarkdown(active.Label) {
		rows = m.previewRows(active, g.main)
	} else {
		rows = m.codeRows(active, g.main)
	}

	ts := m.mgr.Tabs()
	_, widths := segments(ts)
	m.stripStart = fitStrip(widths, m.stripStart, activeIndex(ts), g.main).start

	m.viewport.Width = g.main
	m.viewport.Height = g.contentH
	offset := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(rows, "\n"))
	if m.shownID != active.ID {
		m.viewport.GotoTop()
	} else {
		m.viewport.SetYOffset(offset)
	}
	m.shownID = active.ID
	return m
}

func (m *Model) codeRows(f tabs.File, width int) []string {
	// Gutter width depends on the line count, which depends on the budget.
	gw := 0
	var lines []string
	for pass := 0; pass < 3; pass++ {
		reserved := 1
		if m.lineNumbers {
			reserved += gw + gutterGap
		}
		m.setBudget(max(m.minChars, layout.Budget(layout.Cells{Columns: width, Reserved: reserved})))
		// the budget is in cells, so wide characters count twice
		lines = wrap.LinesFunc(f.Content, m.budget, uniseg.StringWidth)
		if !m.lineNumbers || len(strconv.Itoa(len(lines))) == gw {
			break
		}
		gw = len(strconv.Itoa(len(lines)))
	}
	m.lineCount = len(lines)

	gutter := wrap.Gutter(len(lines))
	rows := make([]string, len(lines))
	for i, line := range lines {
		row := " " + styles.CodeStyle.Render(line)
		if m.lineNumbers {
			row = styles.GutterStyle.Render(gutter[i]) + strings.Repeat(" ", gutterGap) + styles.CodeStyle.Render(line)
		}
		rows[i] = styles.Truncate(row, width)
	}
	return rows
}

func (m *Model) previewRows(f tabs.File, width int) []string {
	out, err := m.preview.Preview(context.Background(), f.ID, f.Content, max(width-1, 1))
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown preview failed", err, "file", f.ID)
		return []string{styles.ErrorStyle.Render(fmt.Sprintf("preview unavailable: %v", err))}
	}
	rows := strings.Split(out, "\n")
	m.lineCount = len(rows)
	return rows
}

// setBudget records the wrap budget. The last computed width wins.
func (m *Model) setBudget(b int) {
	if b != m.budget {
		log.Debug(log.CatWrap, "budget changed", "from", m.budget, "to", b, "width", m.width)
		m.budget = b
	}
}
