// Package content holds the static portfolio copy and the files shown in
// the editor view.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zehraz1/portfolio/internal/tabs"
)

// SourceProfile marks a file whose body is the profile rendered as JSON.
const SourceProfile = "profile"

var (
	// ErrNoFiles is returned when a portfolio defines no editor files.
	ErrNoFiles = errors.New("content: no files defined")
	// ErrUnknownSource is returned for a file source other than "profile".
	ErrUnknownSource = errors.New("content: unknown file source")
)

// Profile is the about-me record. Field order is the JSON output order.
type Profile struct {
	Name        string      `yaml:"name" json:"name"`
	Title       string      `yaml:"title" json:"title"`
	Bio         string      `yaml:"bio" json:"bio"`
	Interests   []string    `yaml:"interests" json:"interests"`
	Hobbies     []string    `yaml:"hobbies" json:"hobbies"`
	Goals       []string    `yaml:"goals" json:"goals"`
	Personality Personality `yaml:"personality" json:"personality"`
}

type Personality struct {
	LovesChange     bool   `yaml:"loves_change" json:"lovesChange"`
	GetsBoredEasily bool   `yaml:"gets_bored_easily" json:"getsBoredEasily"`
	Note            string `yaml:"note" json:"note"`
}

// Listing is the marketplace page copy.
type Listing struct {
	Name         string   `yaml:"name"`
	Publisher    string   `yaml:"publisher"`
	Handle       string   `yaml:"handle"`
	Version      string   `yaml:"version"`
	Rating       string   `yaml:"rating"`
	Category     string   `yaml:"category"`
	Icon         string   `yaml:"icon"`
	Mark         string   `yaml:"mark"`
	Greeting     string   `yaml:"greeting"`
	About        []string `yaml:"about"`
	CallToAction string   `yaml:"call_to_action"`
	Highlights   []string `yaml:"highlights"`
}

type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

type Editor struct {
	Title string `yaml:"title"`
}

// FileSpec describes one editor file. Either Content or Source is set.
type FileSpec struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Content string `yaml:"content,omitempty"`
	Source  string `yaml:"source,omitempty"`
}

// Portfolio is everything the UI and web surfaces render.
type Portfolio struct {
	Profile      Profile    `yaml:"profile"`
	Listing      Listing    `yaml:"listing"`
	Links        Links      `yaml:"links"`
	ContactEmail string     `yaml:"contact_email"`
	Editor       Editor     `yaml:"editor"`
	Files        []FileSpec `yaml:"files"`
}

// Validate checks the file list: at least one file, unique non-empty ids
// and known sources.
func (p *Portfolio) Validate() error {
	if len(p.Files) == 0 {
		return ErrNoFiles
	}
	seen := make(map[string]bool, len(p.Files))
	for i, f := range p.Files {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return fmt.Errorf("content: file %d has an empty id", i)
		}
		if seen[id] {
			return fmt.Errorf("content: duplicate file id %q", id)
		}
		seen[id] = true
		if f.Source != "" && f.Source != SourceProfile {
			return fmt.Errorf("%w %q for file %q", ErrUnknownSource, f.Source, id)
		}
	}
	return nil
}

// ProfileJSON renders the profile as 2-space indented JSON.
func (p *Portfolio) ProfileJSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.Profile); err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Registry builds the editor file registry in declaration order.
func (p *Portfolio) Registry() (*tabs.Registry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	files := make([]tabs.File, 0, len(p.Files))
	for _, f := range p.Files {
		body := f.Content
		if f.Source == SourceProfile {
			js, err := p.ProfileJSON()
			if err != nil {
				return nil, err
			}
			body = js
		}
		label := f.Label
		if label == "" {
			label = f.ID
		}
		files = append(files, tabs.File{ID: f.ID, Label: label, Content: body})
	}
	return tabs.NewRegistry(files...), nil
}

// Icon returns the explorer glyph for a file label.
func Icon(label string) string {
	if strings.HasSuffix(label, ".md") {
		return "📝"
	}
	return "📄"
}
