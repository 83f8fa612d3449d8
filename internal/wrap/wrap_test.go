package wrap

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{"blank paragraph kept", "a\n\nb", 10, []string{"a", "", "b"}},
		{"simple break", "hello world", 5, []string{"hello", "world"}},
		{"hard split", "supercalifragilistic", 5, []string{"super", "calif", "ragil", "istic"}},
		{"hard split with tail", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"empty input", "", 10, []string{""}},
		{"only newlines", "\n", 4, []string{"", ""}},
		{"whitespace paragraph", "a\n   \nb", 4, []string{"a", "", "b"}},
		{"exact fit", "abcde", 5, []string{"abcde"}},
		{"pack greedily", "a b c d e", 3, []string{"a b", "c d", "e"}},
		{"collapse spaces", "a    b", 10, []string{"a b"}},
		{"leading and trailing spaces", "  hi there  ", 20, []string{"hi there"}},
		{"flush before oversized word", "hi abcdefgh yo", 4, []string{"hi", "abcd", "efgh", "yo"}},
		{"chunk does not merge with next word", "abcdefg h", 3, []string{"abc", "def", "g", "h"}},
		{"clamps zero width", "ab", 0, []string{"a", "b"}},
		{"clamps negative width", "ab c", -5, []string{"a", "b", "c"}},
		{"crlf normalised", "a\r\nb\rc", 10, []string{"a", "b", "c"}},
		{"graphemes count once", "café ok", 7, []string{"café ok"}},
		{"grapheme split", "ééé", 2, []string{"éé", "é"}},
		{"tab word dropped", "ab \t", 2, []string{"ab"}},
		{"nbsp word dropped", "a \u00a0 b", 10, []string{"a b"}},
		{"blank chunk dropped", "ab\t\t", 2, []string{"ab"}},
		{"inner tab kept", "a\tb c", 10, []string{"a\tb c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Lines(tt.text, tt.maxChars))
		})
	}
}

func TestLines_OversizedChunksCoverWord(t *testing.T) {
	word := "supercalifragilistic"
	got := Lines(word, 5)
	require.Equal(t, []string{word[0:5], word[5:10], word[10:15], word[15:20]}, got)
	require.Equal(t, word, strings.Join(got, ""))
}

func TestLinesFunc_CellWidth(t *testing.T) {
	text := strings.Repeat("界", 40) + "END"
	got := LinesFunc(text, 38, uniseg.StringWidth)

	require.Equal(t, []string{
		strings.Repeat("界", 19),
		strings.Repeat("界", 19),
		"界界END",
	}, got)
	require.Equal(t, text, strings.Join(got, ""))
}

func TestLinesFunc_PacksByCells(t *testing.T) {
	got := LinesFunc("日本 語 ok", 5, uniseg.StringWidth)
	require.Equal(t, []string{"日本", "語 ok"}, got)
}

func TestLinesFunc_WideGraphemeOverBudget(t *testing.T) {
	got := LinesFunc("界界", 1, uniseg.StringWidth)
	require.Equal(t, []string{"界", "界"}, got)
}

func TestGutter(t *testing.T) {
	require.Nil(t, Gutter(0))
	require.Equal(t, []string{"1", "2", "3"}, Gutter(3))

	g := Gutter(12)
	require.Equal(t, " 1", g[0])
	require.Equal(t, "12", g[11])
}

func TestNumbered(t *testing.T) {
	got := Numbered([]string{"hello", "", "world"})
	require.Equal(t, []string{"1  hello", "2", "3  world"}, got)
}

// textGen draws paragraphs made of short and long words, runs of spaces,
// tabs, non-breaking spaces and blank lines.
func textGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return rapid.StringOfN(rapid.SampledFrom([]rune("ab cdé xyz\n  \t\u00a0")), 0, 200, -1).Draw(t, "text")
	})
}

func TestLines_NoLineExceedsBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen().Draw(t, "text")
		maxChars := rapid.IntRange(1, 40).Draw(t, "maxChars")

		for i, line := range Lines(text, maxChars) {
			if w := Width(line); w > maxChars {
				t.Fatalf("line %d %q has width %d > %d", i, line, w, maxChars)
			}
		}
	})
}

func TestLines_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen().Draw(t, "text")
		maxChars := rapid.IntRange(1, 40).Draw(t, "maxChars")

		first := Lines(text, maxChars)
		second := Lines(strings.Join(first, "\n"), maxChars)
		if len(first) != len(second) {
			t.Fatalf("rewrap drifted: %q -> %q", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("line %d drifted: %q -> %q", i, first[i], second[i])
			}
		}
	})
}

func TestLines_PreservesWords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen().Draw(t, "text")
		maxChars := rapid.IntRange(1, 40).Draw(t, "maxChars")

		squash := func(s string) string {
			return strings.Join(strings.Fields(s), "")
		}
		got := squash(strings.Join(Lines(text, maxChars), " "))
		if got != squash(text) {
			t.Fatalf("characters changed: %q vs %q", got, squash(text))
		}
	})
}

func TestLines_ParagraphCountLowerBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen().Draw(t, "text")
		maxChars := rapid.IntRange(1, 40).Draw(t, "maxChars")

		paragraphs := strings.Count(text, "\n") + 1
		if got := len(Lines(text, maxChars)); got < paragraphs {
			t.Fatalf("got %d lines for %d paragraphs", got, paragraphs)
		}
	})
}
