package tabs

import "slices"

// State is the tab strip and explorer state of one editor session.
//
// Open is never empty and Active is always a member of Open once the state
// has passed through Reduce.
type State struct {
	Open        []string
	Active      string
	SidebarOpen bool
}

// Initial returns the state at mount: only defaultID open and active.
func Initial(defaultID string) State {
	return State{Open: []string{defaultID}, Active: defaultID, SidebarOpen: true}
}

// IsOpen reports whether id has a tab.
func (s State) IsOpen(id string) bool {
	return slices.Contains(s.Open, id)
}

// CanClose reports whether closing id would change anything.
func (s State) CanClose(id string) bool {
	return s.IsOpen(id) && !(len(s.Open) == 1 && s.Open[0] == id)
}

// Index returns the position of the active tab, or -1.
func (s State) Index() int {
	return slices.Index(s.Open, s.Active)
}

// Event is a user action on the tab state.
type Event interface {
	event()
}

// OpenFile opens id (if needed) and makes it active.
type OpenFile struct{ ID string }

// CloseTab removes id from the tab strip.
type CloseTab struct{ ID string }

// SelectTab activates an already open tab.
type SelectTab struct{ ID string }

// ToggleSidebar flips the explorer panel.
type ToggleSidebar struct{}

// SetSidebar expands or collapses the explorer panel.
type SetSidebar struct{ Open bool }

// CycleTab moves the active tab by Delta positions, wrapping around.
type CycleTab struct{ Delta int }

func (OpenFile) event()      {}
func (CloseTab) event()      {}
func (SelectTab) event()     {}
func (ToggleSidebar) event() {}
func (SetSidebar) event()    {}
func (CycleTab) event()      {}

// Reduce applies e to s and returns the new state. s is not modified.
// defaultID is the tab restored when nothing else is left open.
func Reduce(s State, e Event, defaultID string) State {
	next := State{
		Open:        slices.Clone(s.Open),
		Active:      s.Active,
		SidebarOpen: s.SidebarOpen,
	}

	switch e := e.(type) {
	case OpenFile:
		if !slices.Contains(next.Open, e.ID) {
			next.Open = append(next.Open, e.ID)
		}
		next.Active = e.ID
		next.SidebarOpen = true

	case CloseTab:
		if len(next.Open) == 1 && next.Open[0] == e.ID {
			return next
		}
		next.Open = slices.DeleteFunc(next.Open, func(id string) bool { return id == e.ID })
		if next.Active == e.ID {
			if n := len(next.Open); n > 0 {
				next.Active = next.Open[n-1]
			} else {
				next.Active = defaultID
			}
		}
		if len(next.Open) == 0 {
			next.Open = []string{defaultID}
		}

	case SelectTab:
		if slices.Contains(next.Open, e.ID) {
			next.Active = e.ID
		}

	case ToggleSidebar:
		next.SidebarOpen = !next.SidebarOpen

	case SetSidebar:
		next.SidebarOpen = e.Open

	case CycleTab:
		n := len(next.Open)
		if n == 0 {
			break
		}
		i := slices.Index(next.Open, next.Active)
		if i < 0 {
			i = 0
		}
		next.Active = next.Open[((i+e.Delta)%n+n)%n]
	}

	return next
}
