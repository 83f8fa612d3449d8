// Package config provides configuration types and defaults for the portfolio.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/zehraz1/portfolio/internal/log"
)

// Config holds all configuration options.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	UI      UIConfig      `mapstructure:"ui"`
	Counter CounterConfig `mapstructure:"counter"`
	Contact ContactConfig `mapstructure:"contact"`
	SSH     SSHConfig     `mapstructure:"ssh"`
	Web     WebConfig     `mapstructure:"web"`
	Debug   bool          `mapstructure:"debug"`
}

// ContentConfig points at an optional content override file.
type ContentConfig struct {
	Path  string `mapstructure:"path"`  // YAML file; empty uses the built-in content
	Watch bool   `mapstructure:"watch"` // reload when the file changes
}

// UIConfig holds terminal UI options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style"`
	LineNumbers   bool   `mapstructure:"line_numbers" yaml:"line_numbers"`
	MinChars      int    `mapstructure:"min_chars" yaml:"min_chars"` // floor for the wrap budget
	Animate       bool   `mapstructure:"animate" yaml:"animate"`     // title reveal and install spinner
	Preview       bool   `mapstructure:"preview" yaml:"preview"`     // render .md files instead of wrapping source
}

type CounterConfig struct {
	Path      string `mapstructure:"path"`
	Ephemeral bool   `mapstructure:"ephemeral"` // keep counts in memory only
}

type ContactConfig struct {
	Email string `mapstructure:"email"`
}

type SSHConfig struct {
	Addr        string        `mapstructure:"addr"`
	HostKey     string        `mapstructure:"host_key"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	MaxTimeout  time.Duration `mapstructure:"max_timeout"`
}

type WebConfig struct {
	Addr string `mapstructure:"addr"`
}

// MarkdownStyles are the glamour styles accepted for ui.markdown_style.
var MarkdownStyles = []string{"dark", "light", "dracula", "tokyo-night", "pink", "ascii", "notty"}

// DefaultDir returns ~/.config/portfolio, or .portfolio when the home
// directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".portfolio"
	}
	return filepath.Join(home, ".config", "portfolio")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	dir := DefaultDir()
	return Config{
		UI: UIConfig{
			MarkdownStyle: "dark",
			LineNumbers:   true,
			MinChars:      10,
			Animate:       true,
		},
		Counter: CounterConfig{
			Path: filepath.Join(dir, "counter.db"),
		},
		Contact: ContactConfig{
			Email: "zehraahmedzaidi@gmail.com",
		},
		SSH: SSHConfig{
			Addr:        ":23234",
			HostKey:     filepath.Join(dir, "ssh_host_ed25519"),
			IdleTimeout: 10 * time.Minute,
			MaxTimeout:  time.Hour,
		},
		Web: WebConfig{
			Addr: ":8080",
		},
	}
}

// Validate rejects values the program cannot run with.
func Validate(c Config) error {
	var errs []error
	if !slices.Contains(MarkdownStyles, c.UI.MarkdownStyle) {
		errs = append(errs, fmt.Errorf("ui.markdown_style: %q is not one of %v", c.UI.MarkdownStyle, MarkdownStyles))
	}
	if c.UI.MinChars < 1 {
		errs = append(errs, fmt.Errorf("ui.min_chars: must be at least 1, got %d", c.UI.MinChars))
	}
	if !c.Counter.Ephemeral && c.Counter.Path == "" {
		errs = append(errs, errors.New("counter.path: required unless counter.ephemeral is set"))
	}
	if c.Contact.Email == "" {
		errs = append(errs, errors.New("contact.email: required"))
	}
	if err := validateAddr("ssh.addr", c.SSH.Addr); err != nil {
		errs = append(errs, err)
	}
	if err := validateAddr("web.addr", c.Web.Addr); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.IdleTimeout < 0 || c.SSH.MaxTimeout < 0 {
		errs = append(errs, errors.New("ssh timeouts: must not be negative"))
	}
	return errors.Join(errs...)
}

func validateAddr(key, addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s: %q is not host:port: %w", key, addr, err)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Portfolio configuration

# Content override. Leave path empty to use the built-in portfolio.
# Generate a starting point with: portfolio content > content.yaml
content:
  # path: ~/.config/portfolio/content.yaml
  watch: false          # reload the TUI when the content file changes

ui:
  markdown_style: dark  # dark, light, dracula, tokyo-night, pink, ascii, notty
  line_numbers: true    # show the editor gutter
  min_chars: 10         # never wrap narrower than this
  animate: true         # title reveal and install spinner
  preview: false        # render .md files in the editor with glamour

counter:
  # path: ~/.config/portfolio/counter.db
  ephemeral: false      # keep download counts in memory only

contact:
  email: zehraahmedzaidi@gmail.com

# portfolio serve
ssh:
  addr: ":23234"
  # host_key: ~/.config/portfolio/ssh_host_ed25519
  idle_timeout: 10m
  max_timeout: 1h

# portfolio web
web:
  addr: ":8080"

debug: false
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
