package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zehraz1/portfolio/internal/config"
	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/web"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the portfolio over HTTP",
	Long: `Serve the listing and the editor as HTML pages.

Variables in a .env file in the working directory are loaded first, so
PORTFOLIO_* settings and PORT can live there. PORT wins over web.addr, for
hosts that assign the port.`,
	RunE: runWeb,
}

func init() {
	rootCmd.AddCommand(webCmd)

	webCmd.Flags().String("addr", "", "address to listen on (overrides web.addr)")
	_ = viper.BindPFlag("web.addr", webCmd.Flags().Lookup("addr"))
}

func runWeb(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	// re-read so PORTFOLIO_* values from .env apply
	_ = viper.Unmarshal(&cfg)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Web.Addr = ":" + port
	}

	setupServerLogging(cmd)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !debugEnabled() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := web.New(web.Config{Addr: cfg.Web.Addr, Content: svc.Content, Downloads: svc.Downloads})
	if err != nil {
		log.ErrorErr(log.CatWeb, "building server failed", err)
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving HTTP on %s\n", cfg.Web.Addr)
	return srv.ListenAndServe(ctx)
}
