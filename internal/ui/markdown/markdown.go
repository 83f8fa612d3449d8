// Package markdown renders .md editor files as a styled preview.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/zehraz1/portfolio/internal/cachemanager"
	"github.com/zehraz1/portfolio/internal/log"
)

// noMarginStyle strips the document margin so the preview lines up with
// the gutter.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// DefaultStyle is used when no style is configured.
const DefaultStyle = "dark"

// Render renders md with a glamour standard style at the given width.
func Render(style, md string, width int) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(max(width, 1)),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// Previewer renders files and remembers results per file, width and style.
// One Previewer is shared by all sessions.
type Previewer struct {
	style string
	rt    *cachemanager.ReadThrough[string, request]
}

type request struct {
	md    string
	width int
}

// NewPreviewer creates a previewer backed by cache. A nil cache renders
// every time.
func NewPreviewer(style string, cache cachemanager.Cache[string]) *Previewer {
	p := &Previewer{style: style}
	p.rt = cachemanager.NewReadThrough[string, request](cache, 0, func(_ context.Context, r request) (string, error) {
		log.Debug(log.CatUI, "rendering markdown", "width", r.width, "style", p.style)
		return Render(p.style, r.md, r.width)
	})
	return p
}

// Preview renders the file's markdown. fileID identifies the content;
// call Invalidate when content is reloaded.
func (p *Previewer) Preview(ctx context.Context, fileID, md string, width int) (string, error) {
	key := cachemanager.Key(p.style, width, fileID)
	return p.rt.Get(ctx, key, request{md: md, width: width})
}

// Invalidate drops every cached preview.
func (p *Previewer) Invalidate(ctx context.Context) {
	p.rt.Invalidate(ctx)
}

// Style returns the glamour style name in use.
func (p *Previewer) Style() string { return p.style }

// IsMarkdown reports whether a file label should get a preview.
func IsMarkdown(label string) bool {
	return strings.HasSuffix(strings.ToLower(label), ".md")
}
