// Package wrap lays text out into fixed-width editor lines.
//
// Text is split into newline-delimited paragraphs that are wrapped
// independently. Words are packed greedily; a word wider than the budget is
// hard-split into budget-sized chunks. Widths are counted in user-perceived
// characters (grapheme clusters), so "é" written as e + U+0301 counts once.
package wrap

import (
	"strings"

	"github.com/rivo/uniseg"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lines wraps text so that no returned line is longer than maxChars
// characters. maxChars below 1 is treated as 1.
//
// A blank or whitespace-only paragraph yields exactly one empty line.
// Runs of spaces collapse: a paragraph is split on single spaces and
// tokens holding only whitespace are dropped.
func Lines(text string, maxChars int) []string {
	return LinesFunc(text, maxChars, Width)
}

// LinesFunc is Lines with widths measured by width. Terminals pass a cell
// width such as uniseg.StringWidth so that wide characters count twice.
// A single grapheme wider than maxChars still gets a line of its own.
func LinesFunc(text string, maxChars int, width func(string) int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	var out []string
	for _, para := range strings.Split(newlines.Replace(text), "\n") {
		out = appendParagraph(out, para, maxChars, width)
	}
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func appendParagraph(out []string, para string, maxChars int, width func(string) int) []string {
	if blank(para) {
		return append(out, "")
	}

	var (
		buf    strings.Builder
		bufLen int
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, buf.String())
			buf.Reset()
			bufLen = 0
		}
	}

	for _, word := range strings.Split(para, " ") {
		if blank(word) {
			continue
		}
		n := width(word)

		if n > maxChars {
			flush()
			for _, c := range chunks(word, maxChars, width) {
				// a blank chunk would re-wrap to an empty line
				if !blank(c) {
					out = append(out, c)
				}
			}
			continue
		}

		candidate := n
		if buf.Len() > 0 {
			candidate = bufLen + 1 + n
		}
		if candidate <= maxChars {
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(word)
			bufLen = candidate
			continue
		}

		flush()
		buf.WriteString(word)
		bufLen = n
	}
	flush()
	return out
}

// chunks splits word into pieces at most size wide; every piece but the
// last is as wide as the next grapheme allows.
func chunks(word string, size int, width func(string) int) []string {
	var (
		out   []string
		start int
		count int
	)
	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		w := width(gr.Str())
		if count > 0 && count+w > size {
			from, _ := gr.Positions()
			out = append(out, word[start:from])
			start = from
			count = 0
		}
		count += w
	}
	if start < len(word) {
		out = append(out, word[start:])
	}
	return out
}

// Width returns the number of characters Lines counts for s.
func Width(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
