package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zehraz1/portfolio/internal/log"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded content document, e.g. for
// `portfolio` users who want a starting point to edit.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p, err := Parse(defaultYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return p
}

// Parse decodes data on top of base. Sections missing from data keep base
// values; a nil base starts from an empty portfolio.
func Parse(data []byte, base *Portfolio) (*Portfolio, error) {
	p := &Portfolio{}
	if base != nil {
		*p = *base
		p.Files = append([]FileSpec(nil), base.Files...)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a content override from path. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied content path
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn(log.CatContent, "content file missing, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	p, err := Parse(data, Default())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info(log.CatContent, "loaded", "path", path, "files", len(p.Files))
	return p, nil
}
