package tabs

import (
	"fmt"

	"github.com/zehraz1/portfolio/internal/log"
)

// UnknownFileError is returned in strict mode when an event names a file
// that is not in the registry.
type UnknownFileError struct {
	ID string
}

func (e *UnknownFileError) Error() string {
	return fmt.Sprintf("unknown file %q", e.ID)
}

// Tab is a rendered view of one open tab.
type Tab struct {
	ID       string
	Label    string
	Active   bool
	Closable bool
	Orphan   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithStrict rejects events that reference unregistered files.
func WithStrict() Option {
	return func(m *Manager) { m.strict = true }
}

// WithState starts the manager from s instead of the initial state.
// Used by the web handlers, which carry the state in the query string.
// Repeated ids keep their first position.
func WithState(s State) Option {
	return func(m *Manager) {
		open := dedupe(s.Open)
		if len(open) == 0 {
			return
		}
		m.state = State{Open: open, Active: s.Active, SidebarOpen: s.SidebarOpen}
		if !m.state.IsOpen(s.Active) {
			m.state.Active = open[len(open)-1]
		}
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Manager owns the tab state of one session.
// It is not safe for concurrent use.
type Manager struct {
	registry *Registry
	state    State
	strict   bool
}

// NewManager creates a manager with the registry's first file open.
func NewManager(registry *Registry, opts ...Option) *Manager {
	m := &Manager{registry: registry, state: Initial(registry.Default())}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply runs e through Reduce. In strict mode an unknown id leaves the
// state unchanged and returns *UnknownFileError.
func (m *Manager) Apply(e Event) error {
	if m.strict {
		if id, ok := eventID(e); ok && !m.registry.Has(id) {
			log.Warn(log.CatTabs, "rejected unknown file", "event", fmt.Sprintf("%T", e), "id", id)
			return &UnknownFileError{ID: id}
		}
	}

	prev := m.state
	m.state = Reduce(m.state, e, m.registry.Default())
	log.Debug(log.CatTabs, "transition",
		"event", fmt.Sprintf("%T", e),
		"active", prev.Active+"->"+m.state.Active,
		"open", len(m.state.Open))
	return nil
}

func eventID(e Event) (string, bool) {
	switch e := e.(type) {
	case OpenFile:
		return e.ID, true
	case CloseTab:
		return e.ID, true
	case SelectTab:
		return e.ID, true
	}
	return "", false
}

// Rebind swaps the registry after a content reload. Open ids that no longer
// exist become orphans.
func (m *Manager) Rebind(registry *Registry) {
	m.registry = registry
	log.Info(log.CatTabs, "registry rebound", "files", registry.Len())
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	s := m.state
	s.Open = append([]string(nil), s.Open...)
	return s
}

// Registry returns the current registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Active returns the active file. Orphans get a placeholder body.
func (m *Manager) Active() File {
	return m.file(m.state.Active)
}

func (m *Manager) file(id string) File {
	if f, ok := m.registry.Lookup(id); ok {
		return f
	}
	return File{ID: id, Label: id, Content: fmt.Sprintf("// %s is not part of this portfolio.", id)}
}

// Tabs returns the tab strip in order.
func (m *Manager) Tabs() []Tab {
	out := make([]Tab, 0, len(m.state.Open))
	for _, id := range m.state.Open {
		out = append(out, Tab{
			ID:       id,
			Label:    m.registry.Label(id),
			Active:   id == m.state.Active,
			Closable: m.state.CanClose(id),
			Orphan:   !m.registry.Has(id),
		})
	}
	return out
}
