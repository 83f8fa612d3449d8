package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "", Truncate("abc", 0))
	require.Equal(t, "abc", Truncate("abc", 3))
	require.Equal(t, "ab…", Truncate("abcdef", 3))
	require.Equal(t, "…", Truncate("abcdef", 1))
	require.LessOrEqual(t, lipgloss.Width(Truncate("📝 aboutme.md", 5)), 5)
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "ab  ", PadRight("ab", 4))
	require.Equal(t, "abc…", PadRight("abcdefgh", 4))
}

func TestPanel(t *testing.T) {
	out := Panel([]string{"hello", "a much longer line than fits"}, "About Me", 16, 0, BorderDefaultColor, OverlayTitleColor)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		require.Equal(t, 16, lipgloss.Width(l), "line %q", l)
	}
	require.Contains(t, lines[0], "About Me")
	require.Contains(t, lines[1], "hello")
}

func TestPanel_FixedHeight(t *testing.T) {
	out := Panel([]string{"one"}, "", 10, 5, BorderDefaultColor, OverlayTitleColor)
	require.Len(t, strings.Split(out, "\n"), 5)
}
