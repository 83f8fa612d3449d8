// Package web serves the portfolio as HTML pages with gin. The editor
// keeps its tab state in the query string and runs the same tab reducer
// and line wrapper as the terminal UI.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/log"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Config holds the server's collaborators.
type Config struct {
	Addr      string
	Content   *content.Live
	Downloads *counter.Downloads
}

// Server is the HTTP surface.
type Server struct {
	addr      string
	content   *content.Live
	downloads *counter.Downloads
	engine    *gin.Engine
}

// New builds the router. Downloads may be nil, in which case the badge
// shows zero and downloads are not counted.
func New(cfg Config) (*Server, error) {
	if cfg.Content == nil {
		return nil, errors.New("web: content is required")
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{addr: cfg.Addr, content: cfg.Content, downloads: cfg.Downloads}

	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.index)
	r.POST("/download", s.download)
	r.GET("/editor", s.editor)
	r.GET("/editor/open/:id", s.fileAction(openEvent))
	r.GET("/editor/close/:id", s.fileAction(closeEvent))
	r.GET("/editor/select/:id", s.fileAction(selectEvent))
	r.POST("/sidebar", s.toggleSidebar)
	r.POST("/contact", s.contact)
	r.GET("/healthz", s.healthz)

	s.engine = r
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info(log.CatWeb, "listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug(log.CatWeb, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start).Round(time.Microsecond))
	}
}
