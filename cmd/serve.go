package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/sshserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the TUI over SSH",
	Long: `Serve the portfolio TUI to anyone who connects over SSH. Every session
gets its own program; the download counter is shared between them.

A host key is generated on first start.

Example:
  portfolio serve                   # listen on :23234
  portfolio serve --addr :2222
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "address to listen on (overrides ssh.addr)")
	serveCmd.Flags().String("host-key", "", "host key file (overrides ssh.host_key)")
	_ = viper.BindPFlag("ssh.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("ssh.host_key", serveCmd.Flags().Lookup("host-key"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupServerLogging(cmd)
	_ = viper.Unmarshal(&cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &sshserver.Server{
		Addr:        cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		MaxTimeout:  cfg.SSH.MaxTimeout,
		Services:    svc,
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving over SSH on %s\n", cfg.SSH.Addr)
	return srv.ListenAndServe(ctx)
}
