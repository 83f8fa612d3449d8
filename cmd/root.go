package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zehraz1/portfolio/internal/app"
	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/contact"
	"github.com/zehraz1/portfolio/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the contact form.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".portfolio/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Zehra's portfolio, dressed up as an editor extension",
	Long: `A terminal portfolio styled as an editor marketplace listing. Press
Download to "install" it and browse the portfolio files in an editor view.

Run without a subcommand to open the TUI locally, or use 'serve' and 'web'
to share it over SSH and HTTP.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/portfolio/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (path from PORTFOLIO_LOG, default debug.log)")
	rootCmd.PersistentFlags().String("content", "",
		"YAML file overriding the built-in portfolio content")
	rootCmd.Flags().Bool("no-animate", false,
		"skip the title reveal and install spinner")

	_ = viper.BindPFlag("content.path", rootCmd.PersistentFlags().Lookup("content"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("content.path", defaults.Content.Path)
	viper.SetDefault("content.watch", defaults.Content.Watch)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.line_numbers", defaults.UI.LineNumbers)
	viper.SetDefault("ui.min_chars", defaults.UI.MinChars)
	viper.SetDefault("ui.animate", defaults.UI.Animate)
	viper.SetDefault("ui.preview", defaults.UI.Preview)
	viper.SetDefault("counter.path", defaults.Counter.Path)
	viper.SetDefault("counter.ephemeral", defaults.Counter.Ephemeral)
	viper.SetDefault("contact.email", defaults.Contact.Email)
	viper.SetDefault("ssh.addr", defaults.SSH.Addr)
	viper.SetDefault("ssh.host_key", defaults.SSH.HostKey)
	viper.SetDefault("ssh.idle_timeout", defaults.SSH.IdleTimeout)
	viper.SetDefault("ssh.max_timeout", defaults.SSH.MaxTimeout)
	viper.SetDefault("web.addr", defaults.Web.Addr)
	viper.SetDefault("debug", defaults.Debug)

	// PORTFOLIO_UI_MIN_CHARS=20 overrides ui.min_chars
	viper.SetEnvPrefix("PORTFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .portfolio/config.yaml (current directory)
		// 2. ~/.config/portfolio/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(config.DefaultDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			defaultPath := filepath.Join(config.DefaultDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// debugEnabled reports whether --debug, PORTFOLIO_DEBUG or debug: true is set.
func debugEnabled() bool {
	return debugFlag || cfg.Debug || os.Getenv("PORTFOLIO_DEBUG") != ""
}

// setupFileLogging opens the debug log for the TUI, which owns the terminal.
func setupFileLogging(prefix string) (func(), error) {
	if !debugEnabled() {
		return func() {}, nil
	}
	logPath := os.Getenv("PORTFOLIO_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "portfolio starting", "version", version, "config", viper.ConfigFileUsed())
	return cleanup, nil
}

// setupServerLogging sends log lines to stderr for the servers.
func setupServerLogging(cmd *cobra.Command) {
	level := log.LevelInfo
	if debugEnabled() {
		level = log.LevelDebug
	}
	log.InitWriter(cmd.ErrOrStderr(), level)
	log.Info(log.CatConfig, "portfolio starting", "version", version, "config", viper.ConfigFileUsed())
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanupLog, err := setupFileLogging("portfolio")
	if err != nil {
		return err
	}
	defer cleanupLog()

	if noAnimate, _ := cmd.Flags().GetBool("no-animate"); noAnimate {
		cfg.UI.Animate = false
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	svc, cleanup, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// Store the config file path for saving editor toggles
	svc.ConfigPath = viper.ConfigFileUsed()
	svc.Sender = contact.NewSender()
	svc.Debug = debugEnabled()

	model, err := app.New(svc)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
