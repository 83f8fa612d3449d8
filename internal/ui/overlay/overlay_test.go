package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(w, h int) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Positions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "center",
			cfg:  Config{Width: 5, Height: 3, Position: Center},
			want: []string{".....", ".XX..", "....."},
		},
		{
			name: "top with padding",
			cfg:  Config{Width: 5, Height: 3, Position: Top, PadY: 1},
			want: []string{".....", ".XX..", "....."},
		},
		{
			name: "bottom",
			cfg:  Config{Width: 5, Height: 3, Position: Bottom},
			want: []string{".....", ".....", ".XX.."},
		},
		{
			name: "bottom right",
			cfg:  Config{Width: 5, Height: 3, Position: BottomRight, PadX: 1},
			want: []string{".....", ".....", "..XX."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.cfg, "XX", grid(5, 3))
			assert.Equal(t, tt.want, strings.Split(got, "\n"))
		})
	}
}

func TestPlace_OversizedForegroundClampsToOrigin(t *testing.T) {
	got := Place(Config{Width: 3, Height: 2}, "XXXXX", grid(3, 2))
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "XXXXX", lines[0])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	got := Place(Config{Width: 4, Height: 3, Position: Bottom}, "ab", "..")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " ab ", lines[2])
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	bg := style.Render("abcdef")
	got := Place(Config{Width: 6, Height: 1}, "XX", bg)
	assert.Equal(t, 6, lipgloss.Width(got))
	assert.Contains(t, got, "XX")
}
