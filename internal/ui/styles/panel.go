package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	edgeHorizontal    = "─"
	edgeVertical      = "│"
)

// Panel renders lines inside a rounded box with the title set into the
// top edge: ╭─ About Me ─────╮. A height of 0 fits the content.
func Panel(lines []string, title string, width, height int, border, titleColor lipgloss.TerminalColor) string {
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	inner := max(width-2, 1)
	rows := len(lines)
	if height > 0 {
		rows = max(height-2, 1)
	}

	var b strings.Builder
	b.WriteString(topEdge(title, inner, borderStyle, titleStyle))
	for i := 0; i < rows; i++ {
		var line string
		if i < len(lines) {
			line = Truncate(lines[i], inner)
		}
		if pad := inner - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(edgeVertical) + line + borderStyle.Render(edgeVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(cornerBottomLeft + strings.Repeat(edgeHorizontal, inner) + cornerBottomRight))
	return b.String()
}

func topEdge(title string, inner int, borderStyle, titleStyle lipgloss.Style) string {
	// room for "─ " + title + " "
	if title == "" || inner < 4 {
		return borderStyle.Render(cornerTopLeft + strings.Repeat(edgeHorizontal, inner) + cornerTopRight)
	}
	title = Truncate(title, inner-4)
	rest := max(inner-3-lipgloss.Width(title), 0)
	return borderStyle.Render(cornerTopLeft+edgeHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(edgeHorizontal, rest)+cornerTopRight)
}
