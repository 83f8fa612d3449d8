package contact

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/zehraz1/portfolio/internal/log"
)

// Outcome says how a draft reached the visitor.
type Outcome int

const (
	// Opened means the OS mail handler was launched.
	Opened Outcome = iota
	// Copied means the mailto link was put on the clipboard instead.
	Copied
)

func (o Outcome) String() string {
	if o == Copied {
		return "copied"
	}
	return "opened"
}

// Opener launches a URL with the OS default handler.
type Opener func(ctx context.Context, url string) error

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// Sender hands drafts to the local mail client, falling back to the
// clipboard when no handler is available (headless boxes, SSH sessions).
type Sender struct {
	Open Opener
	Copy Clipboard
}

// NewSender returns a Sender using the OS opener and system clipboard.
func NewSender() *Sender {
	return &Sender{Open: OpenURL, Copy: clipboard.WriteAll}
}

// ErrUnavailable is returned when neither opening nor copying worked.
var ErrUnavailable = errors.New("contact: no mail handler or clipboard available")

// Send opens the draft in the mail client or copies its link.
func (s *Sender) Send(ctx context.Context, d Draft) (Outcome, error) {
	link := d.MailtoURL()

	if s.Open != nil {
		err := s.Open(ctx, link)
		if err == nil {
			log.Info(log.CatContact, "opened mail handler", "to", d.To)
			return Opened, nil
		}
		log.ErrorErr(log.CatContact, "mail handler failed, trying clipboard", err)
	}

	if s.Copy == nil {
		return Copied, ErrUnavailable
	}
	if err := s.Copy(link); err != nil {
		return Copied, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Info(log.CatContact, "copied mailto link", "to", d.To)
	return Copied, nil
}

// OpenURL runs the platform's "open this URL" command.
func OpenURL(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
