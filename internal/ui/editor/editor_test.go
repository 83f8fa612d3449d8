package editor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/ui/markdown"
)

func testRegistry() *tabs.Registry {
	return tabs.NewRegistry(
		tabs.File{ID: "a.md", Label: "a.md", Content: "# Title\n\nhello world"},
		tabs.File{ID: "b", Label: "b", Content: "second file"},
		tabs.File{ID: "c", Label: "c", Content: "third file"},
	)
}

func newTestModel(t *testing.T, opts ...tabs.Option) (Model, *zone.Manager) {
	t.Helper()
	z := zone.New()
	t.Cleanup(z.Close)
	mgr := tabs.NewManager(testRegistry(), opts...)
	m := New(mgr, Config{Title: "demo", LineNumbers: true, Zones: z})
	return m.SetSize(100, 30), z
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// zoneFor renders the model and waits for the zone to be registered.
func zoneFor(t *testing.T, z *zone.Manager, m Model, element string) *zone.ZoneInfo {
	t.Helper()
	var info *zone.ZoneInfo
	for retries := 0; retries < 10; retries++ {
		_ = z.Scan(m.View())
		info = z.Get(m.ZoneID(element))
		if info != nil && !info.IsZero() {
			break
		}
		// Zone registration is asynchronous via a channel worker in bubblezone.
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, info, "zone %q should be registered after View()", element)
	require.False(t, info.IsZero(), "zone %q should not be zero", element)
	return info
}

func clickOn(info *zone.ZoneInfo) tea.MouseMsg {
	return tea.MouseMsg{
		X:      info.StartX + (info.EndX-info.StartX)/2,
		Y:      info.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}
}

func TestEditor_BudgetFollowsWidth(t *testing.T) {
	m, _ := newTestModel(t)

	// 100 cols: activity 3, sidebar 25, main 72, gutter 1 + gap 2 + margin 1
	require.Equal(t, 68, m.Budget())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.False(t, m.Manager().State().SidebarOpen)
	require.Equal(t, 93, m.Budget())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	require.Equal(t, 33, m.Budget())
}

func TestEditor_NarrowTerminalHidesSidebar(t *testing.T) {
	m, _ := newTestModel(t)
	m = m.SetSize(30, 20)

	g := m.geometry()
	require.Zero(t, g.sidebar)
	require.True(t, m.Manager().State().SidebarOpen, "state keeps the sidebar open")
	require.NotContains(t, m.View(), "EXPLORER")
}

func TestEditor_MinCharsFloor(t *testing.T) {
	mgr := tabs.NewManager(testRegistry())
	z := zone.New()
	t.Cleanup(z.Close)

	m := New(mgr, Config{Title: "demo", MinChars: 30, Zones: z}).SetSize(20, 10)
	require.Equal(t, 30, m.Budget())
}

func TestEditor_OpenAndCloseWithKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(runeKey('j'))
	require.Equal(t, 1, m.Cursor())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s := m.Manager().State()
	require.Equal(t, []string{"a.md", "b"}, s.Open)
	require.Equal(t, "b", s.Active)
	require.Contains(t, m.View(), "second file")

	m, cmd := m.Update(runeKey('w'))
	require.Nil(t, cmd)
	s = m.Manager().State()
	require.Equal(t, []string{"a.md"}, s.Open)
	require.Equal(t, "a.md", s.Active)
	require.Equal(t, 0, m.Cursor())
}

func TestEditor_CloseLastTabIsRefused(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := m.Update(runeKey('w'))
	require.NotNil(t, cmd)
	notice, ok := cmd().(NoticeMsg)
	require.True(t, ok)
	require.Contains(t, notice.Text, "last tab")
	require.Equal(t, []string{"a.md"}, m.Manager().State().Open)
}

func TestEditor_CycleTabsWraps(t *testing.T) {
	m, _ := newTestModel(t)
	for _, id := range []string{"b", "c"} {
		require.NoError(t, m.Manager().Apply(tabs.OpenFile{ID: id}))
	}
	m = m.Reload()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "a.md", m.Manager().State().Active)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "c", m.Manager().State().Active)
}

func TestEditor_BackEmitsMessage(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, BackMsg{}, cmd())
}

func TestEditor_TogglesReportSettings(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.Budget()

	m, cmd := m.Update(runeKey('n'))
	require.NotNil(t, cmd)
	require.Equal(t, SettingsMsg{LineNumbers: false, Preview: false}, cmd())
	require.False(t, m.LineNumbers())
	require.Greater(t, m.Budget(), before)

	m, cmd = m.Update(runeKey('p'))
	require.Equal(t, SettingsMsg{LineNumbers: false, Preview: true}, cmd())
	require.True(t, m.Previewing())
}

func TestEditor_WrapsContentWithGutter(t *testing.T) {
	long := strings.Repeat("word ", 40)
	mgr := tabs.NewManager(tabs.NewRegistry(tabs.File{ID: "long", Label: "long", Content: long}))
	z := zone.New()
	t.Cleanup(z.Close)

	m := New(mgr, Config{Title: "demo", LineNumbers: true, Zones: z}).SetSize(40, 20)
	view := m.View()

	require.Greater(t, m.lineCount, 1)
	require.Contains(t, view, "1  word")
	require.Contains(t, view, fmt.Sprintf("%d  word", m.lineCount))
}

func TestEditor_WideCharactersAreNotCut(t *testing.T) {
	wide := strings.Repeat("界", 40) + "END"
	mgr := tabs.NewManager(tabs.NewRegistry(tabs.File{ID: "wide", Label: "wide", Content: wide}))
	z := zone.New()
	t.Cleanup(z.Close)

	m := New(mgr, Config{Title: "demo", LineNumbers: true, Zones: z}).SetSize(60, 20)
	view := m.View()

	require.Equal(t, 40, strings.Count(view, "界"))
	require.Contains(t, view, "END")
	require.NotContains(t, view, "界…")
	require.Greater(t, m.lineCount, 1)
}

func TestEditor_OrphanTabShowsPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, tabs.WithState(tabs.State{
		Open:        []string{"a.md", "ghost"},
		Active:      "ghost",
		SidebarOpen: true,
	}))

	view := m.View()
	require.Contains(t, view, "ghost is not part of this portfolio.")
	require.Contains(t, view, "ghost")
}

func TestEditor_PreviewRendersMarkdown(t *testing.T) {
	mgr := tabs.NewManager(testRegistry())
	z := zone.New()
	t.Cleanup(z.Close)

	m := New(mgr, Config{
		Title:     "demo",
		Preview:   true,
		Previewer: markdown.NewPreviewer("ascii", nil),
		Zones:     z,
	}).SetSize(100, 30)

	view := m.View()
	require.Contains(t, view, "hello world")
	require.Contains(t, view, "preview")
}

func TestEditor_MouseWheelScrolls(t *testing.T) {
	mgr := tabs.NewManager(tabs.NewRegistry(tabs.File{
		ID: "tall", Label: "tall", Content: strings.Repeat("line\n", 100),
	}))
	z := zone.New()
	t.Cleanup(z.Close)
	m := New(mgr, Config{Title: "demo", Zones: z}).SetSize(80, 20)

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.Equal(t, scrollStep, m.viewport.YOffset)

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	require.Zero(t, m.viewport.YOffset)
}

func TestEditor_ClickFileOpensIt(t *testing.T) {
	m, z := newTestModel(t)

	m, _ = m.Update(clickOn(zoneFor(t, z, m, "file:c")))

	s := m.Manager().State()
	require.Equal(t, []string{"a.md", "c"}, s.Open)
	require.Equal(t, "c", s.Active)
	require.Equal(t, 2, m.Cursor())
}

func TestEditor_ClickTabSelectsIt(t *testing.T) {
	m, z := newTestModel(t)
	m, _ = m.Update(runeKey('j'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "b", m.Manager().State().Active)

	m, _ = m.Update(clickOn(zoneFor(t, z, m, "tab:a.md")))
	require.Equal(t, "a.md", m.Manager().State().Active)
	require.Equal(t, []string{"a.md", "b"}, m.Manager().State().Open)
}

func TestEditor_ClickCloseMark(t *testing.T) {
	m, z := newTestModel(t)
	require.NoError(t, m.Manager().Apply(tabs.OpenFile{ID: "b"}))
	m = m.Reload()

	m, cmd := m.Update(clickOn(zoneFor(t, z, m, "close:b")))
	require.Nil(t, cmd)
	require.Equal(t, []string{"a.md"}, m.Manager().State().Open)
}

func TestEditor_ClickToggleCollapsesSidebar(t *testing.T) {
	m, z := newTestModel(t)

	m, _ = m.Update(clickOn(zoneFor(t, z, m, "toggle")))
	require.False(t, m.Manager().State().SidebarOpen)
	require.NotContains(t, m.View(), "EXPLORER")
}

func TestEditor_ClickBack(t *testing.T) {
	m, z := newTestModel(t)

	_, cmd := m.Update(clickOn(zoneFor(t, z, m, "back")))
	require.NotNil(t, cmd)
	require.IsType(t, BackMsg{}, cmd())
}

func TestEditor_TabStripScrollsToActive(t *testing.T) {
	var files []tabs.File
	for i := range 8 {
		id := fmt.Sprintf("file-%d.txt", i)
		files = append(files, tabs.File{ID: id, Label: id, Content: id})
	}
	mgr := tabs.NewManager(tabs.NewRegistry(files...))
	for _, f := range files[1:] {
		require.NoError(t, mgr.Apply(tabs.OpenFile{ID: f.ID}))
	}
	require.NoError(t, mgr.Apply(tabs.SetSidebar{Open: false}))
	z := zone.New()
	t.Cleanup(z.Close)

	m := New(mgr, Config{Title: "demo", Zones: z}).SetSize(60, 12)
	strip := m.renderTabStrip(m.geometry().main)

	require.True(t, strings.HasPrefix(strip, "<"), "hidden tabs on the left are hinted")
	require.Contains(t, strip, "file-7.txt")
	require.NotContains(t, strip, "file-0.txt")
}
