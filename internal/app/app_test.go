package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/contact"
	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/pubsub"
	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/ui/editor"
	"github.com/zehraz1/portfolio/internal/ui/marketplace"
	"github.com/zehraz1/portfolio/internal/ui/toaster"
)

func testServices(t *testing.T) Services {
	t.Helper()
	live, err := content.NewLive("")
	require.NoError(t, err)
	t.Cleanup(live.Close)

	downloads := counter.NewDownloads(counter.NewMemoryStore())
	t.Cleanup(func() { _ = downloads.Close() })

	return Services{
		Content:   live,
		Downloads: downloads,
		UI:        config.UIConfig{LineNumbers: true, MinChars: 10},
	}
}

func createTestModel(t *testing.T, svc Services) Model {
	t.Helper()
	m, err := New(svc)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// run feeds msg to the model and then every message its commands
// produce, skipping timers and subscription waits.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 20; steps++ {
		next, cmd := m.Update(queue[0])
		m = next.(Model)
		queue = append(queue[1:], drain(cmd)...)
	}
	return m
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, drain(c)...)
			}
			return out
		case toaster.DismissMsg:
			return nil
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func TestApp_StartsOnMarketplace(t *testing.T) {
	m := createTestModel(t, testServices(t))
	require.Equal(t, ScreenMarketplace, m.Screen())
	require.Contains(t, m.View(), "Zehra's Portfolio")
}

func TestApp_NewRequiresContent(t *testing.T) {
	_, err := New(Services{})
	require.Error(t, err)
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	require.Equal(t, 120, m.width)
	require.Equal(t, 50, m.height)
}

func TestApp_DownloadOpensEditor(t *testing.T) {
	svc := testServices(t)
	m := createTestModel(t, svc)

	m = run(t, m, marketplace.DownloadMsg{})

	require.Equal(t, ScreenEditor, m.Screen())
	require.False(t, m.Installing())
	require.Equal(t, int64(1), m.Marketplace().Downloads())

	total, err := svc.Downloads.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Contains(t, m.View(), "EXPLORER")
}

func TestApp_AnimatedInstallShowsSpinner(t *testing.T) {
	svc := testServices(t)
	svc.UI.Animate = true
	m := createTestModel(t, svc)

	next, cmd := m.Update(marketplace.DownloadMsg{})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Installing())
	require.Contains(t, m.View(), "Installing Zehra's Portfolio")

	// keys other than quit and help wait for the install
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = next.(Model)
	require.False(t, m.Marketplace().Typing())

	next, _ = m.Update(installDoneMsg{})
	m = next.(Model)
	require.False(t, m.Installing())
	require.Equal(t, ScreenEditor, m.Screen())
}

func TestApp_BackReturnsToMarketplace(t *testing.T) {
	m := createTestModel(t, testServices(t))
	m = run(t, m, marketplace.DownloadMsg{})
	require.Equal(t, ScreenEditor, m.Screen())

	m = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ScreenMarketplace, m.Screen())
}

func TestApp_QuitUnlessTyping(t *testing.T) {
	m := createTestModel(t, testServices(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = next.(Model)
	require.True(t, m.Marketplace().Typing())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	require.Equal(t, "q", m.Marketplace().Form().Name)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_HelpOverlay(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	require.Contains(t, m.View(), "Keybindings")

	// the listing does not see keys while help is open
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = next.(Model)
	require.False(t, m.Marketplace().Typing())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.NotContains(t, m.View(), "Keybindings")
}

func TestApp_CounterEventUpdatesBadge(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, cmd := m.Update(pubsub.Event[int64]{Type: pubsub.UpdatedEvent, Payload: 1260})
	m = next.(Model)
	require.NotNil(t, cmd, "keeps listening")
	require.Contains(t, m.View(), "1.3K+ downloads")
}

func TestApp_ContentReloadRebindsEditor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, content.DefaultYAML(), 0o644))

	live, err := content.NewLive(path)
	require.NoError(t, err)
	t.Cleanup(live.Close)

	svc := testServices(t)
	svc.Content = live
	m := createTestModel(t, svc)

	updated := bytes.Replace(content.DefaultYAML(), []byte("Experience content..."), []byte("Shipped things."), 1)
	require.NoError(t, os.WriteFile(path, updated, 0o644))
	require.NoError(t, live.Reload())

	next, cmd := m.Update(pubsub.Event[*content.Portfolio]{Type: pubsub.ReloadedEvent, Payload: live.Current()})
	m = next.(Model)
	require.NotNil(t, cmd)

	require.NoError(t, m.Editor().Manager().Apply(tabs.OpenFile{ID: "experience"}))
	m.editor = m.editor.Reload()
	require.Contains(t, m.Editor().View(), "Shipped things.")
	require.Contains(t, m.toaster.Message(), "reloaded")
}

func TestApp_SettingsAreSaved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  line_numbers: true\n"), 0o644))

	svc := testServices(t)
	svc.ConfigPath = path
	m := createTestModel(t, svc)

	m = run(t, m, editor.SettingsMsg{LineNumbers: false, Preview: true})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "line_numbers: false")
	require.Contains(t, string(data), "preview: true")
}

func TestApp_SettingsWithoutPathAreKeptInMemory(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, cmd := m.Update(editor.SettingsMsg{LineNumbers: false})
	m = next.(Model)
	require.Nil(t, cmd)
	require.False(t, m.svc.UI.LineNumbers)
}

func TestApp_NoticeBecomesToast(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, _ := m.Update(editor.NoticeMsg{Text: "Can't close the last tab"})
	m = next.(Model)
	require.Contains(t, m.View(), "Can't close the last tab")
}

func TestApp_ContactWithoutSenderShowsAddress(t *testing.T) {
	m := createTestModel(t, testServices(t))

	draft := contact.Compose("zehraahmedzaidi@gmail.com", contact.Form{Name: "Ada"})
	next, cmd := m.Update(marketplace.ContactMsg{Draft: draft})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Contains(t, m.toaster.Message(), "zehraahmedzaidi@gmail.com")
}

func TestApp_ContactUsesSender(t *testing.T) {
	var opened string
	svc := testServices(t)
	svc.Sender = &contact.Sender{
		Open: func(_ context.Context, url string) error {
			opened = url
			return nil
		},
	}
	m := createTestModel(t, svc)

	draft := contact.Compose("zehraahmedzaidi@gmail.com", contact.Form{Name: "Ada"})
	m = run(t, m, marketplace.ContactMsg{Draft: draft})

	require.True(t, strings.HasPrefix(opened, "mailto:zehraahmedzaidi@gmail.com"))
	require.Contains(t, m.toaster.Message(), "email app")
}

func TestApp_ContactFailureShowsError(t *testing.T) {
	svc := testServices(t)
	svc.Sender = &contact.Sender{
		Open: func(context.Context, string) error { return errors.New("no handler") },
		Copy: func(string) error { return errors.New("no clipboard") },
	}
	m := createTestModel(t, svc)

	m = run(t, m, marketplace.ContactMsg{Draft: contact.Compose("a@b.c", contact.Form{})})
	require.Contains(t, m.toaster.Message(), "No mail app")
}

func TestApp_LinkWithoutSenderShowsURL(t *testing.T) {
	m := createTestModel(t, testServices(t))

	next, _ := m.Update(marketplace.OpenLinkMsg{Name: "GitHub", URL: "https://github.com/zehraz1"})
	m = next.(Model)
	require.Contains(t, m.toaster.Message(), "https://github.com/zehraz1")
}

func TestApp_Program(t *testing.T) {
	m, err := New(testServices(t))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Download"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("EXPLORER"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.Equal(t, ScreenEditor, final.Screen())
	require.Equal(t, int64(1), final.Marketplace().Downloads())
}
