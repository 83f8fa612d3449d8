package content

import (
	"context"
	"sync"
	"time"

	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/pubsub"
	"github.com/zehraz1/portfolio/internal/watcher"
)

// Live is the current portfolio shared by every session. Reloads are
// broadcast as pubsub.ReloadedEvent.
type Live struct {
	mu      sync.RWMutex
	path    string
	current *Portfolio
	broker  *pubsub.Broker[*Portfolio]
	fixups  []func(*Portfolio)
}

var _ pubsub.Subscriber[*Portfolio] = (*Live)(nil)

// NewLive loads path (empty for the built-in content). fixups run on every
// load, e.g. to apply a contact address from the config file.
func NewLive(path string, fixups ...func(*Portfolio)) (*Live, error) {
	l := &Live{path: path, broker: pubsub.NewBroker[*Portfolio](), fixups: fixups}
	p, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = p
	return l, nil
}

func (l *Live) load() (*Portfolio, error) {
	p, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	for _, fix := range l.fixups {
		fix(p)
	}
	return p, nil
}

// Current returns the latest successfully loaded portfolio.
func (l *Live) Current() *Portfolio {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Path returns the content file, or "" for the built-in content.
func (l *Live) Path() string { return l.path }

// Reload re-reads the file. A broken file keeps the previous content.
func (l *Live) Reload() error {
	p, err := l.load()
	if err != nil {
		log.ErrorErr(log.CatContent, "reload failed, keeping previous content", err, "path", l.path)
		return err
	}
	l.mu.Lock()
	l.current = p
	l.mu.Unlock()
	l.broker.Publish(pubsub.ReloadedEvent, p)
	return nil
}

// Subscribe delivers reloaded portfolios until ctx is cancelled.
func (l *Live) Subscribe(ctx context.Context) <-chan pubsub.Event[*Portfolio] {
	return l.broker.Subscribe(ctx)
}

// Watch reloads whenever the file changes, until ctx is cancelled.
// It returns once the watch is established.
func (l *Live) Watch(ctx context.Context, debounce time.Duration) error {
	w, err := watcher.New(watcher.Config{Path: l.path, Debounce: debounce})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				_ = l.Reload()
			}
		}
	}()
	return nil
}

// Close ends every subscription.
func (l *Live) Close() {
	l.broker.Close()
}
