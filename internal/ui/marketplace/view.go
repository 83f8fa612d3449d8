package marketplace

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/ui/styles"
	"github.com/zehraz1/portfolio/internal/wrap"
)

const (
	zoneDownload = "download"
	zoneGitHub   = "github"
	zoneLinkedIn = "linkedin"
	zoneName     = "name"
	zoneEmail    = "email"
	zoneMessage  = "message"
	zoneSend     = "send"
)

const (
	maxPageWidth = 100
	twoColumnMin = 80 // below this the about panels stack
	panelGap     = 2
)

var avatarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.ListingBorderColor).
	Padding(1, 3)

// ZoneID returns the mouse zone id of a listing element: "download",
// "github", "linkedin", "name", "email", "message" or "send".
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

func (m Model) pageWidth() int {
	return max(min(m.width-2, maxPageWidth), 20)
}

// render builds the whole page. It is taller than the screen on small
// terminals and scrolls in the viewport.
func (m Model) render() string {
	w := m.pageWidth()
	sections := []string{
		m.renderHeader(w),
		"",
		m.renderHero(),
		"",
		styles.ListingMutedStyle.Render(styles.Truncate(m.portfolio.Listing.CallToAction, w)),
		"",
		m.renderAbout(w),
		"",
		m.renderLinks(),
		"",
		m.renderContact(w),
		"",
		m.renderFooter(w),
	}
	page := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().PaddingLeft(1).Render(page)
}

func (m Model) renderHeader(w int) string {
	dots := lipgloss.NewStyle().Foreground(styles.DotRedColor).Render("●") + " " +
		lipgloss.NewStyle().Foreground(styles.DotYellowColor).Render("●") + " " +
		lipgloss.NewStyle().Foreground(styles.DotGreenColor).Render("●")
	left := dots + "  " + styles.ListingTitleStyle.Render(m.portfolio.Listing.Name)
	right := styles.ListingMutedStyle.Render(m.portfolio.Listing.Handle)
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderHero() string {
	l := m.portfolio.Listing
	avatar := avatarStyle.Render(l.Icon)

	title := strings.Join(m.title[:m.revealed], "")
	if !m.Revealed() {
		title += "▍"
	}

	meta := strings.Join([]string{l.Publisher, "v" + l.Version, l.Category}, " • ")
	badges := styles.BadgeStyle.Render("★ "+l.Rating) + " " +
		styles.BadgeStyle.Render(counter.FormatCompact(m.downloads)+" downloads")
	button := m.mark(zoneDownload, styles.PrimaryButtonStyle.Render("Download"))

	info := lipgloss.JoinVertical(lipgloss.Left,
		styles.ListingTitleStyle.Render(title),
		styles.ListingMutedStyle.Render(meta),
		"",
		badges,
		"",
		button,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", info)
}

// panelLines wraps paragraphs to the panel's inner width with a one-cell
// left margin. Paragraphs are separated by a blank line.
func panelLines(paragraphs []string, width int) []string {
	inner := max(width-4, 1)
	var out []string
	for i, p := range paragraphs {
		if i > 0 {
			out = append(out, "")
		}
		for _, line := range wrap.Lines(p, inner) {
			out = append(out, " "+styles.ListingTextStyle.Render(line))
		}
	}
	return out
}

func (m Model) renderAbout(w int) string {
	l := m.portfolio.Listing
	aboutText := append([]string{l.Greeting}, l.About...)

	if w < twoColumnMin {
		about := panelLines(aboutText, w)
		hobbies := panelLines(l.Highlights, w)
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Panel(about, "About Me", w, 0, styles.ListingBorderColor, styles.ListingAccentColor),
			styles.Panel(hobbies, "Hobbies & Interests", w, 0, styles.ListingBorderColor, styles.ListingAccentColor),
		)
	}

	colW := (w - panelGap) / 2
	about := panelLines(aboutText, colW)
	hobbies := panelLines(l.Highlights, colW)
	h := max(len(about), len(hobbies)) + 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel(about, "About Me", colW, h, styles.ListingBorderColor, styles.ListingAccentColor),
		strings.Repeat(" ", panelGap),
		styles.Panel(hobbies, "Hobbies & Interests", colW, h, styles.ListingBorderColor, styles.ListingAccentColor),
	)
}

func (m Model) renderLinks() string {
	var links []string
	if m.portfolio.Links.GitHub != "" {
		links = append(links, m.mark(zoneGitHub, styles.LinkStyle.Render("GitHub ↗")))
	}
	if m.portfolio.Links.LinkedIn != "" {
		links = append(links, m.mark(zoneLinkedIn, styles.LinkStyle.Render("LinkedIn ↗")))
	}
	if len(links) == 0 {
		return ""
	}
	parts := make([]string, 0, len(links)*2)
	for i, l := range links {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, l)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderContact(w int) string {
	label := func(f Field, s string) string {
		if m.focus == f {
			return styles.ListingAccentText.Render("› " + s)
		}
		return styles.ListingMutedStyle.Render("  " + s)
	}

	button := styles.PrimaryButtonStyle.Render("Send email")
	if m.focus == FieldSend {
		button = styles.PrimaryButtonFocusedStyle.Render("Send email")
	}

	var lines []string
	lines = append(lines, label(FieldName, "Name"))
	lines = append(lines, m.mark(zoneName, "  "+m.name.View()))
	lines = append(lines, label(FieldEmail, "Email"))
	lines = append(lines, m.mark(zoneEmail, "  "+m.email.View()))
	lines = append(lines, label(FieldMessage, "Message"))
	rows := strings.Split(m.message.View(), "\n")
	for i := range rows {
		rows[i] = "  " + rows[i]
	}
	lines = append(lines, strings.Split(m.mark(zoneMessage, strings.Join(rows, "\n")), "\n")...)
	lines = append(lines, "", "  "+m.mark(zoneSend, button))
	lines = append(lines, styles.ListingMutedStyle.Render("  Sends via your email app to "+m.portfolio.ContactEmail))

	return styles.Panel(lines, "Contact me", w, 0, styles.ListingBorderColor, styles.ListingAccentColor)
}

func (m Model) renderFooter(w int) string {
	hint := "d download • c contact • g github • ? help • q quit"
	if m.focus != FieldNone {
		hint = "tab next field • ctrl+s send • esc leave form"
	}
	return styles.ListingMutedStyle.Render(styles.Truncate(hint, w))
}
