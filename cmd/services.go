package cmd

import (
	"context"
	"time"

	"github.com/zehraz1/portfolio/internal/app"
	"github.com/zehraz1/portfolio/internal/cachemanager"
	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/ui/markdown"
)

const watchDebounce = 200 * time.Millisecond

// buildServices wires the content, counter and markdown previewer shared
// by the TUI and both servers. The returned cleanup closes them.
func buildServices(ctx context.Context, c config.Config) (app.Services, func(), error) {
	var fixups []func(*content.Portfolio)
	// contact.email only wins over the content file when it was changed
	if email := c.Contact.Email; email != "" && email != config.Defaults().Contact.Email {
		fixups = append(fixups, func(p *content.Portfolio) { p.ContactEmail = email })
	}

	live, err := content.NewLive(c.Content.Path, fixups...)
	if err != nil {
		return app.Services{}, nil, err
	}
	if c.Content.Watch && c.Content.Path != "" {
		if err := live.Watch(ctx, watchDebounce); err != nil {
			log.ErrorErr(log.CatWatcher, "watching content failed, reload disabled", err, "path", c.Content.Path)
		}
	}

	var store counter.Store
	if c.Counter.Ephemeral {
		store = counter.NewMemoryStore()
	} else {
		sq, err := counter.OpenSQLite(c.Counter.Path)
		if err != nil {
			live.Close()
			return app.Services{}, nil, err
		}
		store = sq
	}
	downloads := counter.NewDownloads(store)

	cache := cachemanager.NewMemory[string]("markdown", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	previewer := markdown.NewPreviewer(c.UI.MarkdownStyle, cache)

	cleanup := func() {
		if err := downloads.Close(); err != nil {
			log.ErrorErr(log.CatCounter, "closing counter store failed", err)
		}
		live.Close()
	}
	return app.Services{
		Content:   live,
		Downloads: downloads,
		Previewer: previewer,
		UI:        c.UI,
	}, cleanup, nil
}
