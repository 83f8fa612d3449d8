// Package sshserver serves the portfolio TUI to anyone who connects over SSH.
package sshserver

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	gliderssh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/zehraz1/portfolio/internal/app"
	"github.com/zehraz1/portfolio/internal/log"
)

// Server exposes the portfolio over SSH. Every session runs its own Bubble
// Tea program over the same Services, so the download counter and content
// reloads are shared between visitors.
type Server struct {
	Addr        string
	HostKeyPath string
	// Listener is used instead of Addr when set.
	Listener    net.Listener
	IdleTimeout time.Duration
	MaxTimeout  time.Duration
	Services    app.Services
}

// ListenAndServe starts the SSH server and shuts down on context cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	signer, err := EnsureHostKey(s.HostKeyPath)
	if err != nil {
		return err
	}
	if s.Services.Content == nil {
		return errors.New("sshserver: content is required")
	}

	// The process's own stdout says nothing about visitors' terminals.
	// Styles render in true colour and each session downsamples.
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)

	// No auth handlers: the portfolio is public and gliderlabs/ssh then
	// accepts every client.
	server := &gliderssh.Server{
		Addr:        s.Addr,
		Handler:     s.handleSession,
		IdleTimeout: s.IdleTimeout,
		MaxTimeout:  s.MaxTimeout,
	}
	server.AddHostKey(signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	log.Info(log.CatSSH, "listening", "addr", s.addr())

	select {
	case <-ctx.Done():
		_ = server.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, gliderssh.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) addr() string {
	if s.Listener != nil {
		return s.Listener.Addr().String()
	}
	return s.Addr
}

func remoteAddr(sess gliderssh.Session) string {
	if sess.RemoteAddr() == nil {
		return ""
	}
	return sess.RemoteAddr().String()
}

func (s *Server) handleSession(sess gliderssh.Session) {
	id := uuid.NewString()
	fields := []any{"session", id, "user", sess.User(), "remote", remoteAddr(sess)}

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info(log.CatSSH, "session rejected", append(fields, "reason", "pty required")...)
		_, _ = io.WriteString(sess, "This portfolio needs an interactive terminal. Try: ssh -t <host>\n")
		_ = sess.Exit(1)
		return
	}

	// The visitor's machine is out of reach: no mail client, no browser and
	// no writable config.
	svc := s.Services
	svc.Sender = nil
	svc.ConfigPath = ""
	svc.Debug = false

	m, err := app.New(svc)
	if err != nil {
		log.ErrorErr(log.CatSSH, "creating session model failed", err, fields...)
		_, _ = io.WriteString(sess, "portfolio unavailable\n")
		_ = sess.Exit(1)
		return
	}
	defer m.Close()

	env := append(sess.Environ(), "TERM="+pty.Term)
	out := sessionOutput(sess, env)
	log.Info(log.CatSSH, "session opened", append(fields,
		"term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height, "profile", out.Profile.String())...)

	ctx := sess.Context()
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(sess),
		tea.WithOutput(out),
		tea.WithEnvironment(env),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	go forwardWindows(ctx, p, pty.Window, winCh)

	started := time.Now()
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.ErrorErr(log.CatSSH, "session ended with error", err, fields...)
	}
	log.Info(log.CatSSH, "session closed", append(fields, "duration", time.Since(started).Round(time.Second))...)
	_ = sess.Exit(0)
}

// forwardWindows sends the initial size and every pty resize to p. The
// program cannot ask the remote terminal for its size itself.
func forwardWindows(ctx context.Context, p *tea.Program, initial gliderssh.Window, winCh <-chan gliderssh.Window) {
	p.Send(tea.WindowSizeMsg{Width: initial.Width, Height: initial.Height})
	for {
		select {
		case <-ctx.Done():
			return
		case win, ok := <-winCh:
			if !ok {
				return
			}
			p.Send(tea.WindowSizeMsg{Width: win.Width, Height: win.Height})
		}
	}
}

// sessionOutput downsamples rendered frames to the colours the client's
// TERM, COLORTERM and NO_COLOR allow. A pty always gets cursor control, so
// the profile never drops below Ascii.
func sessionOutput(w io.Writer, env []string) *colorprofile.Writer {
	profile := colorprofile.Env(env)
	if profile < colorprofile.Ascii {
		profile = colorprofile.Ascii
	}
	return &colorprofile.Writer{Forward: w, Profile: profile}
}
