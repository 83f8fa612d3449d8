package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInitial(t *testing.T) {
	s := Initial("aboutme")
	require.Equal(t, []string{"aboutme"}, s.Open)
	require.Equal(t, "aboutme", s.Active)
	require.True(t, s.SidebarOpen)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		start State
		event Event
		want  State
	}{
		{
			name:  "open appends and activates",
			start: State{Open: []string{"a"}, Active: "a"},
			event: OpenFile{ID: "b"},
			want:  State{Open: []string{"a", "b"}, Active: "b", SidebarOpen: true},
		},
		{
			name:  "open existing only activates",
			start: State{Open: []string{"a", "b"}, Active: "b", SidebarOpen: true},
			event: OpenFile{ID: "a"},
			want:  State{Open: []string{"a", "b"}, Active: "a", SidebarOpen: true},
		},
		{
			name:  "open expands sidebar",
			start: State{Open: []string{"a"}, Active: "a", SidebarOpen: false},
			event: OpenFile{ID: "a"},
			want:  State{Open: []string{"a"}, Active: "a", SidebarOpen: true},
		},
		{
			name:  "last tab cannot close",
			start: Initial("a"),
			event: CloseTab{ID: "a"},
			want:  Initial("a"),
		},
		{
			name:  "close active picks last remaining",
			start: State{Open: []string{"A", "B", "C"}, Active: "B"},
			event: CloseTab{ID: "B"},
			want:  State{Open: []string{"A", "C"}, Active: "C"},
		},
		{
			name:  "close inactive keeps active",
			start: State{Open: []string{"A", "B", "C"}, Active: "A"},
			event: CloseTab{ID: "C"},
			want:  State{Open: []string{"A", "B"}, Active: "A"},
		},
		{
			name:  "close unknown id is a no-op",
			start: State{Open: []string{"A", "B"}, Active: "A"},
			event: CloseTab{ID: "Z"},
			want:  State{Open: []string{"A", "B"}, Active: "A"},
		},
		{
			name:  "close active with one other left",
			start: State{Open: []string{"x", "y"}, Active: "y"},
			event: CloseTab{ID: "y"},
			want:  State{Open: []string{"x"}, Active: "x"},
		},
		{
			name:  "empty result resets to default",
			start: State{Open: []string{"x", "x"}, Active: "x"},
			event: CloseTab{ID: "x"},
			want:  State{Open: []string{"home"}, Active: "home"},
		},
		{
			name:  "select open tab",
			start: State{Open: []string{"a", "b"}, Active: "b"},
			event: SelectTab{ID: "a"},
			want:  State{Open: []string{"a", "b"}, Active: "a"},
		},
		{
			name:  "select closed tab ignored",
			start: State{Open: []string{"a", "b"}, Active: "b"},
			event: SelectTab{ID: "c"},
			want:  State{Open: []string{"a", "b"}, Active: "b"},
		},
		{
			name:  "toggle sidebar",
			start: State{Open: []string{"a"}, Active: "a", SidebarOpen: true},
			event: ToggleSidebar{},
			want:  State{Open: []string{"a"}, Active: "a", SidebarOpen: false},
		},
		{
			name:  "set sidebar",
			start: State{Open: []string{"a"}, Active: "a"},
			event: SetSidebar{Open: true},
			want:  State{Open: []string{"a"}, Active: "a", SidebarOpen: true},
		},
		{
			name:  "cycle forward wraps",
			start: State{Open: []string{"a", "b", "c"}, Active: "c"},
			event: CycleTab{Delta: 1},
			want:  State{Open: []string{"a", "b", "c"}, Active: "a"},
		},
		{
			name:  "cycle backward wraps",
			start: State{Open: []string{"a", "b", "c"}, Active: "a"},
			event: CycleTab{Delta: -1},
			want:  State{Open: []string{"a", "b", "c"}, Active: "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Reduce(tt.start, tt.event, "home"))
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	start := State{Open: []string{"a", "b", "c"}, Active: "b"}
	_ = Reduce(start, CloseTab{ID: "b"}, "a")
	_ = Reduce(start, OpenFile{ID: "d"}, "a")
	require.Equal(t, []string{"a", "b", "c"}, start.Open)
	require.Equal(t, "b", start.Active)
}

func TestCanClose(t *testing.T) {
	s := State{Open: []string{"a", "b"}, Active: "a"}
	require.True(t, s.CanClose("a"))
	require.False(t, s.CanClose("z"))
	require.False(t, Initial("a").CanClose("a"))
}

func eventGen(ids []string) *rapid.Generator[Event] {
	return rapid.Custom(func(t *rapid.T) Event {
		id := rapid.SampledFrom(ids).Draw(t, "id")
		switch rapid.IntRange(0, 5).Draw(t, "kind") {
		case 0:
			return OpenFile{ID: id}
		case 1:
			return CloseTab{ID: id}
		case 2:
			return SelectTab{ID: id}
		case 3:
			return ToggleSidebar{}
		case 4:
			return SetSidebar{Open: rapid.Bool().Draw(t, "open")}
		default:
			return CycleTab{Delta: rapid.IntRange(-3, 3).Draw(t, "delta")}
		}
	})
}

func TestReduce_Invariants(t *testing.T) {
	ids := []string{"aboutme", "experience", "projects", "skills", "contact", "ghost"}

	rapid.Check(t, func(t *rapid.T) {
		s := Initial(ids[0])
		events := rapid.SliceOfN(eventGen(ids), 1, 60).Draw(t, "events")

		for _, e := range events {
			prev := s
			s = Reduce(s, e, ids[0])

			if len(s.Open) == 0 {
				t.Fatalf("open tabs empty after %#v", e)
			}
			if !s.IsOpen(s.Active) {
				t.Fatalf("active %q not open in %v after %#v", s.Active, s.Open, e)
			}
			seen := map[string]bool{}
			for _, id := range s.Open {
				if seen[id] {
					t.Fatalf("duplicate tab %q in %v", id, s.Open)
				}
				seen[id] = true
			}
			if c, ok := e.(CloseTab); ok && len(prev.Open) == 1 && prev.Open[0] == c.ID {
				if s.Active != prev.Active || len(s.Open) != 1 {
					t.Fatalf("last tab closed: %v -> %v", prev, s)
				}
			}
			if o, ok := e.(OpenFile); ok && s.Active != o.ID {
				t.Fatalf("open %q left active %q", o.ID, s.Active)
			}
		}
	})
}
