// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/contact"
	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/keys"
	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/pubsub"
	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/ui/editor"
	"github.com/zehraz1/portfolio/internal/ui/help"
	"github.com/zehraz1/portfolio/internal/ui/markdown"
	"github.com/zehraz1/portfolio/internal/ui/marketplace"
	"github.com/zehraz1/portfolio/internal/ui/overlay"
	"github.com/zehraz1/portfolio/internal/ui/styles"
	"github.com/zehraz1/portfolio/internal/ui/toaster"
)

// InstallDuration is how long the simulated install spinner runs.
const InstallDuration = 1200 * time.Millisecond

// Screen is the page currently shown.
type Screen int

const (
	ScreenMarketplace Screen = iota
	ScreenEditor
)

func (s Screen) String() string {
	if s == ScreenEditor {
		return "editor"
	}
	return "marketplace"
}

// Services are shared by every session of the program.
type Services struct {
	Content   *content.Live
	Downloads *counter.Downloads
	Previewer *markdown.Previewer
	// Sender opens drafts and links on this machine. Nil over SSH, where
	// the visitor's machine is out of reach and links are shown instead.
	Sender *contact.Sender
	UI     config.UIConfig
	// ConfigPath receives view toggles. Empty disables saving.
	ConfigPath string
	Debug      bool
}

// Messages produced by the app's own commands.
type (
	countLoadedMsg struct {
		total int64
		err   error
	}
	downloadedMsg struct {
		total int64
		err   error
	}
	installDoneMsg   struct{}
	settingsSavedMsg struct{ err error }
	contactSentMsg   struct {
		outcome contact.Outcome
		err     error
	}
	linkOpenedMsg struct {
		name string
		err  error
	}
)

// Model is the root application state.
type Model struct {
	svc    Services
	ctx    context.Context
	cancel context.CancelFunc
	zones  *zone.Manager

	screen     Screen
	market     marketplace.Model
	editor     editor.Model
	help       help.Model
	showHelp   bool
	toaster    toaster.Model
	spinner    spinner.Model
	installing bool

	counterListener *pubsub.ContinuousListener[int64]
	contentListener *pubsub.ContinuousListener[*content.Portfolio]
	logListener     *log.Listener
	lastLog         string

	width  int
	height int
}

// New creates the root model. Call Close when the program exits to end
// the subscriptions.
func New(svc Services) (Model, error) {
	if svc.Content == nil {
		return Model{}, fmt.Errorf("app: content is required")
	}
	p := svc.Content.Current()
	registry, err := p.Registry()
	if err != nil {
		return Model{}, fmt.Errorf("building file registry: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	zones := zone.New()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	m := Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		zones:   zones,
		screen:  ScreenMarketplace,
		toaster: toaster.New(),
		spinner: s,
		market: marketplace.New(marketplace.Config{
			Portfolio: p,
			Animate:   svc.UI.Animate,
			Zones:     zones,
		}),
		editor: editor.New(tabs.NewManager(registry), editor.Config{
			Title:       p.Editor.Title,
			LineNumbers: svc.UI.LineNumbers,
			Preview:     svc.UI.Preview,
			MinChars:    svc.UI.MinChars,
			Previewer:   svc.Previewer,
			Zones:       zones,
		}),
		help:            help.New(help.ModeMarketplace),
		contentListener: pubsub.NewContinuousListener[*content.Portfolio](ctx, svc.Content),
	}
	if svc.Downloads != nil {
		m.counterListener = pubsub.NewContinuousListener[int64](ctx, svc.Downloads)
	}
	if svc.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m, nil
}

// Close ends the model's subscriptions and releases its mouse zones.
func (m Model) Close() {
	m.cancel()
	m.zones.Close()
}

// Screen returns the page currently shown.
func (m Model) Screen() Screen { return m.screen }

// Installing reports whether the install spinner is running.
func (m Model) Installing() bool { return m.installing }

// Editor returns the editor view.
func (m Model) Editor() editor.Model { return m.editor }

// Marketplace returns the listing view.
func (m Model) Marketplace() marketplace.Model { return m.market }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.market.Init(),
		m.loadCount(),
		m.contentListener.Listen(),
		m.counterListener.Listen(),
		m.logListener.Listen(),
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCount() tea.Cmd {
	d := m.svc.Downloads
	if d == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		total, err := d.Count(ctx)
		return countLoadedMsg{total: total, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleGlobalKey(msg); handled {
			return model, cmd
		}

	case tea.MouseMsg:
		if m.showHelp || m.installing {
			return m, nil
		}

	case spinner.TickMsg:
		if !m.installing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case countLoadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatCounter, "loading download count failed", msg.err)
			return m, nil
		}
		m.market = m.market.SetDownloads(msg.total)
		return m, nil

	case pubsub.Event[int64]:
		m.market = m.market.SetDownloads(msg.Payload)
		return m, m.counterListener.Listen()

	case pubsub.Event[*content.Portfolio]:
		return m.applyContent(msg.Payload)

	case pubsub.Event[string]:
		m.lastLog = strings.TrimRight(msg.Payload, "\n")
		return m, m.logListener.Listen()

	case marketplace.DownloadMsg:
		return m.startInstall()

	case downloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatCounter, "download failed", msg.err)
			return m.toast("Couldn't record the download", toaster.Error)
		}
		m.market = m.market.SetDownloads(msg.total)
		return m, nil

	case installDoneMsg:
		m.installing = false
		return m.switchTo(ScreenEditor), nil

	case marketplace.ContactMsg:
		return m.sendDraft(msg.Draft)

	case contactSentMsg:
		if msg.err != nil {
			return m.toast("No mail app or clipboard available", toaster.Error)
		}
		if msg.outcome == contact.Copied {
			return m.toast("Mail link copied to clipboard", toaster.Success)
		}
		return m.toast("Opening your email app…", toaster.Success)

	case marketplace.OpenLinkMsg:
		return m.openLink(msg)

	case linkOpenedMsg:
		if msg.err != nil {
			return m.toast("Couldn't open "+msg.name, toaster.Error)
		}
		return m, nil

	case editor.BackMsg:
		return m.switchTo(ScreenMarketplace), nil

	case editor.NoticeMsg:
		return m.toast(msg.Text, toaster.Info)

	case editor.SettingsMsg:
		m.svc.UI.LineNumbers = msg.LineNumbers
		m.svc.UI.Preview = msg.Preview
		return m, m.saveSettings()

	case settingsSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "saving ui settings failed", msg.err)
		}
		return m, nil
	}

	return m.delegate(msg)
}

func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenEditor:
		m.editor, cmd = m.editor.Update(msg)
	default:
		m.market, cmd = m.market.Update(msg)
	}
	return m, cmd
}

// handleGlobalKey handles quit, help and the modal states. The listing's
// contact form gets every key but ctrl+c while it has focus.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit, true
	}
	typing := m.screen == ScreenMarketplace && m.market.Typing()
	if typing {
		return m, nil, false
	}

	if m.showHelp {
		if key.Matches(msg, keys.Common.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		} else if key.Matches(msg, keys.Common.Quit) {
			return m, tea.Quit, true
		}
		return m, nil, true
	}

	switch {
	case key.Matches(msg, keys.Common.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, keys.Common.Help):
		m.showHelp = true
		return m, nil, true
	case m.installing:
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) startInstall() (tea.Model, tea.Cmd) {
	if m.installing {
		return m, nil
	}
	log.Info(log.CatUI, "install started")

	var cmds []tea.Cmd
	if d := m.svc.Downloads; d != nil {
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			total, err := d.Download(ctx)
			return downloadedMsg{total: total, err: err}
		})
	}
	if !m.svc.UI.Animate {
		cmds = append(cmds, func() tea.Msg { return installDoneMsg{} })
		return m, tea.Batch(cmds...)
	}

	m.installing = true
	cmds = append(cmds,
		m.spinner.Tick,
		tea.Tick(InstallDuration, func(time.Time) tea.Msg { return installDoneMsg{} }),
	)
	return m, tea.Batch(cmds...)
}

func (m Model) switchTo(s Screen) Model {
	log.Info(log.CatUI, "switching screen", "from", m.screen, "to", s)
	m.screen = s
	mode := help.ModeMarketplace
	if s == ScreenEditor {
		mode = help.ModeEditor
	}
	m.help = help.New(mode).SetSize(m.width, m.height)
	return m
}

func (m Model) applyContent(p *content.Portfolio) (tea.Model, tea.Cmd) {
	next := m.contentListener.Listen()
	registry, err := p.Registry()
	if err != nil {
		log.ErrorErr(log.CatContent, "reloaded content has no usable files", err)
		model, cmd := m.toast("Content reload failed", toaster.Error)
		return model, tea.Batch(cmd, next)
	}

	m.editor.Manager().Rebind(registry)
	if m.svc.Previewer != nil {
		m.svc.Previewer.Invalidate(m.ctx)
	}
	m.editor = m.editor.Reload()
	m.market = m.market.SetPortfolio(p)

	model, cmd := m.toast("Content reloaded", toaster.Info)
	return model, tea.Batch(cmd, next)
}

func (m Model) sendDraft(d contact.Draft) (tea.Model, tea.Cmd) {
	if m.svc.Sender == nil {
		return m.toast("Write to "+d.To, toaster.Info)
	}
	sender, ctx := m.svc.Sender, m.ctx
	return m, func() tea.Msg {
		outcome, err := sender.Send(ctx, d)
		return contactSentMsg{outcome: outcome, err: err}
	}
}

func (m Model) openLink(l marketplace.OpenLinkMsg) (tea.Model, tea.Cmd) {
	if m.svc.Sender == nil || m.svc.Sender.Open == nil {
		return m.toast(l.Name+": "+l.URL, toaster.Info)
	}
	open, ctx := m.svc.Sender.Open, m.ctx
	return m, func() tea.Msg {
		return linkOpenedMsg{name: l.Name, err: open(ctx, l.URL)}
	}
}

func (m Model) saveSettings() tea.Cmd {
	if m.svc.ConfigPath == "" {
		return nil
	}
	path, ui := m.svc.ConfigPath, m.svc.UI
	return func() tea.Msg {
		return settingsSavedMsg{err: config.SaveUI(path, ui)}
	}
}

func (m Model) toast(text string, kind toaster.Kind) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, kind, toaster.DefaultDuration)
	return m, cmd
}

func (m *Model) resize() {
	h := m.contentHeight()
	m.market = m.market.SetSize(m.width, h)
	m.editor = m.editor.SetSize(m.width, h)
	m.help = m.help.SetSize(m.width, h)
}

// contentHeight leaves a row for the log footer in debug mode.
func (m Model) contentHeight() int {
	if m.svc.Debug {
		return max(m.height-1, 1)
	}
	return m.height
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var view string
	switch m.screen {
	case ScreenEditor:
		view = m.editor.View()
	default:
		view = m.market.View()
	}

	h := m.contentHeight()
	if m.installing {
		view = overlay.Place(overlay.Config{Width: m.width, Height: h, Position: overlay.Center}, m.renderInstall(), view)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, h)

	if m.svc.Debug {
		view += "\n" + styles.ListingMutedStyle.Render(styles.PadRight(m.lastLog, m.width))
	}
	return m.zones.Scan(view)
}

var installBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.ListingBorderColor).
	Padding(1, 3)

func (m Model) renderInstall() string {
	name := m.svc.Content.Current().Listing.Name
	return installBoxStyle.Render(m.spinner.View() + " Installing " + name + "…")
}
