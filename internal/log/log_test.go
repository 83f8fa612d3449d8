package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zehraz1/portfolio/internal/pubsub"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 10, 19, 10, 45, 0, 0, time.UTC)

	line := Format(ts, LevelError, CatTabs, "close ignored", "id", "aboutme.md", "open", 1)
	require.Equal(t, "2026-10-19T10:45:00 [ERROR] [tabs] close ignored id=aboutme.md open=1", line)

	line = Format(ts, LevelInfo, CatWrap, "odd", "width")
	require.Equal(t, "2026-10-19T10:45:00 [INFO] [wrap] odd width=<missing>", line)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitWriter_RespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelWarn)
	t.Cleanup(Reset)

	Info(CatUI, "hidden")
	Warn(CatUI, "shown", "k", "v")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[WARN] [ui] shown k=v")
}

func TestSetEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	t.Cleanup(Reset)

	SetEnabled(false)
	Error(CatSSH, "muted")
	require.Empty(t, buf.String())

	SetEnabled(true)
	ErrorErr(CatSSH, "loud", nil)
	require.Contains(t, buf.String(), "loud error=<nil>")
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(Reset)

	Debug(CatConfig, "loaded", "file", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [config] loaded file=config.yaml")
}

func TestNoLogger_IsNoop(t *testing.T) {
	Reset()
	require.NotPanics(t, func() {
		Info(CatWeb, "nobody listening")
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	t.Cleanup(Reset)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatCounter, "download", "total", 3)

	msg := listener.Listen()()
	event, ok := msg.(pubsub.Event[string])
	require.True(t, ok)
	require.Contains(t, event.Payload, "[INFO] [counter] download total=3")
}
