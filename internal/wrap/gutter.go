package wrap

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Gutter returns right-aligned 1-based line numbers for n lines.
func Gutter(n int) []string {
	if n <= 0 {
		return nil
	}
	width := len(strconv.Itoa(n))
	out := make([]string, n)
	for i := range out {
		out[i] = runewidth.FillLeft(strconv.Itoa(i+1), width)
	}
	return out
}

// Numbered prefixes each line with its gutter number and a separator.
func Numbered(lines []string) []string {
	gutter := Gutter(len(lines))
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = gutter[i]
			continue
		}
		out[i] = gutter[i] + "  " + line
	}
	return out
}
