// Package tabs tracks which editor files have open tabs and which one is
// active.
//
// The transition logic is the pure Reduce function; Manager wraps it with a
// file registry for the UI.
package tabs

// File is one entry in the editor explorer.
type File struct {
	ID      string
	Label   string
	Content string
}

// Registry is an ordered, read-only set of files. It is safe to share
// between sessions.
type Registry struct {
	files []File
	index map[string]int
}

// NewRegistry builds a registry. Later duplicates of an id are ignored.
func NewRegistry(files ...File) *Registry {
	r := &Registry{index: make(map[string]int, len(files))}
	for _, f := range files {
		if _, dup := r.index[f.ID]; dup {
			continue
		}
		r.index[f.ID] = len(r.files)
		r.files = append(r.files, f)
	}
	return r
}

// Files returns a copy of the files in registry order.
func (r *Registry) Files() []File {
	if r == nil {
		return nil
	}
	out := make([]File, len(r.files))
	copy(out, r.files)
	return out
}

// Len returns the number of files.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.files)
}

// Lookup returns the file with the given id.
func (r *Registry) Lookup(id string) (File, bool) {
	if r == nil {
		return File{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return File{}, false
	}
	return r.files[i], true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// Default returns the id of the first file, or "" for an empty registry.
func (r *Registry) Default() string {
	if r.Len() == 0 {
		return ""
	}
	return r.files[0].ID
}

// Label returns the display label for id. Unknown ids display as themselves.
func (r *Registry) Label(id string) string {
	if f, ok := r.Lookup(id); ok && f.Label != "" {
		return f.Label
	}
	return id
}
