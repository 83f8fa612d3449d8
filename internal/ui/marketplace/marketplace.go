// Package marketplace contains the extension-listing page: the animated
// title, download badge and button, the about panels and the contact form.
package marketplace

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/zehraz1/portfolio/internal/contact"
	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/keys"
	"github.com/zehraz1/portfolio/internal/log"
)

// RevealInterval is the delay between title characters.
const RevealInterval = 45 * time.Millisecond

const scrollStep = 3

// Messages emitted by the listing for the app to handle.

// DownloadMsg requests the simulated install.
type DownloadMsg struct{}

// ContactMsg carries a composed draft to hand to the mail client.
type ContactMsg struct {
	Draft contact.Draft
}

// OpenLinkMsg requests opening a profile link.
type OpenLinkMsg struct {
	Name string
	URL  string
}

type revealTickMsg struct{}

// Field is the focused part of the contact form.
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldEmail
	FieldMessage
	FieldSend
)

// Config holds the listing's inputs.
type Config struct {
	Portfolio *content.Portfolio
	Downloads int64
	Animate   bool
	Zones     *zone.Manager
}

// Model holds the listing state.
type Model struct {
	portfolio *content.Portfolio
	zones     *zone.Manager
	prefix    string

	downloads int64
	title     []string // graphemes of the listing name
	revealed  int

	focus   Field
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	viewport viewport.Model
	width    int
	height   int
}

// New creates the listing.
func New(cfg Config) Model {
	zones := cfg.Zones
	if zones == nil {
		zones = zone.New()
	}
	p := cfg.Portfolio
	if p == nil {
		p = content.Default()
	}

	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Name"
	name.CharLimit = 100

	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "Email"
	email.CharLimit = 254

	msg := textarea.New()
	msg.Prompt = ""
	msg.Placeholder = "Message"
	msg.ShowLineNumbers = false
	msg.CharLimit = 2000
	msg.SetHeight(4)

	m := Model{
		portfolio: p,
		zones:     zones,
		prefix:    zones.NewPrefix(),
		downloads: cfg.Downloads,
		name:      name,
		email:     email,
		message:   msg,
		viewport:  viewport.New(0, 0),
	}
	m.title = graphemes(p.Listing.Name)
	m.revealed = len(m.title)
	if cfg.Animate {
		m.revealed = 0
	}
	return m
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Init starts the title reveal.
func (m Model) Init() tea.Cmd {
	if m.revealed < len(m.title) {
		return revealTick()
	}
	return nil
}

func revealTick() tea.Cmd {
	return tea.Tick(RevealInterval, func(time.Time) tea.Msg { return revealTickMsg{} })
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	inputW := max(m.pageWidth()-6, 8)
	m.name.Width = inputW
	m.email.Width = inputW
	m.message.SetWidth(inputW)
	return m.refresh()
}

// SetDownloads updates the downloads badge.
func (m Model) SetDownloads(n int64) Model {
	m.downloads = n
	return m.refresh()
}

// SetPortfolio swaps the copy after a content reload.
func (m Model) SetPortfolio(p *content.Portfolio) Model {
	m.portfolio = p
	m.title = graphemes(p.Listing.Name)
	m.revealed = len(m.title)
	return m.refresh()
}

// Downloads returns the displayed total.
func (m Model) Downloads() int64 { return m.downloads }

// Focus returns the focused form field.
func (m Model) Focus() Field { return m.focus }

// Typing reports whether key presses go to the contact form.
func (m Model) Typing() bool { return m.focus != FieldNone }

// Revealed reports whether the title animation has finished.
func (m Model) Revealed() bool { return m.revealed >= len(m.title) }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case revealTickMsg:
		if m.revealed < len(m.title) {
			m.revealed++
			if m.revealed < len(m.title) {
				cmd = revealTick()
			}
		}
	case tea.KeyMsg:
		if m.focus != FieldNone {
			m, cmd = m.handleFormKey(msg)
		} else {
			m, cmd = m.handleKey(msg)
		}
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	default:
		// cursor blink and other input internals
		m, cmd = m.updateInputs(msg)
	}
	return m.refresh(), cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := keys.Marketplace
	switch {
	case key.Matches(msg, k.Download):
		return m, download
	case key.Matches(msg, k.Contact):
		return m.focusField(FieldName)
	case key.Matches(msg, k.GitHub):
		return m, m.openLink("GitHub", m.portfolio.Links.GitHub)
	case key.Matches(msg, k.LinkedIn):
		return m, m.openLink("LinkedIn", m.portfolio.Links.LinkedIn)
	case key.Matches(msg, k.ScrollUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, k.ScrollDown):
		m.viewport.ScrollDown(1)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := keys.Marketplace
	switch {
	case key.Matches(msg, k.Blur):
		return m.focusField(FieldNone)
	case key.Matches(msg, k.Send):
		return m.send()
	case key.Matches(msg, k.NextField):
		return m.focusField(m.focus%FieldSend + 1)
	case key.Matches(msg, k.PrevField):
		prev := m.focus - 1
		if prev == FieldNone {
			prev = FieldSend
		}
		return m.focusField(prev)
	case m.focus == FieldSend && msg.Type == tea.KeyEnter:
		return m.send()
	}
	return m.updateInputs(msg)
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

	switch {
	case m.hit(zoneDownload, msg):
		return m, download
	case m.hit(zoneGitHub, msg):
		return m, m.openLink("GitHub", m.portfolio.Links.GitHub)
	case m.hit(zoneLinkedIn, msg):
		return m, m.openLink("LinkedIn", m.portfolio.Links.LinkedIn)
	case m.hit(zoneName, msg):
		return m.focusField(FieldName)
	case m.hit(zoneEmail, msg):
		return m.focusField(FieldEmail)
	case m.hit(zoneMessage, msg):
		return m.focusField(FieldMessage)
	case m.hit(zoneSend, msg):
		return m.send()
	}
	return m, nil
}

func (m Model) focusField(f Field) (Model, tea.Cmd) {
	m.focus = f
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	var cmd tea.Cmd
	switch f {
	case FieldName:
		cmd = m.name.Focus()
	case FieldEmail:
		cmd = m.email.Focus()
	case FieldMessage:
		cmd = m.message.Focus()
	}
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldName:
		m.name, cmd = m.name.Update(msg)
	case FieldEmail:
		m.email, cmd = m.email.Update(msg)
	case FieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// Form returns what has been typed so far.
func (m Model) Form() contact.Form {
	return contact.Form{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
}

func (m Model) send() (Model, tea.Cmd) {
	draft := contact.Compose(m.portfolio.ContactEmail, m.Form())
	log.Debug(log.CatContact, "draft composed", "subject", draft.Subject)

	m.name.Reset()
	m.email.Reset()
	m.message.Reset()
	m, _ = m.focusField(FieldNone)
	return m, func() tea.Msg { return ContactMsg{Draft: draft} }
}

func (m Model) openLink(name, url string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg { return OpenLinkMsg{Name: name, URL: url} }
}

func download() tea.Msg { return DownloadMsg{} }

// refresh re-renders the page into the viewport, keeping the scroll offset.
func (m Model) refresh() Model {
	if m.width <= 0 || m.height <= 0 {
		return m
	}
	m.viewport.SetContent(m.render())
	return m
}

// View renders the visible part of the page.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.viewport.View()
}
