package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("element pair", "index", 1)
	logger.Info("derived element pairs", "pairs", 12)

	out := buf.String()
	if strings.Contains(out, "element pair ") {
		t.Errorf("debug line written at info level:\n%s", out)
	}
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("line does not start with an HH:MM:SS.ms timestamp: %q", out)
	}
	if !strings.Contains(out, "derived element pairs") || !strings.Contains(out, "pairs=12") {
		t.Errorf("missing message or key/value: %q", out)
	}
}

func TestProgressRoundsToMicroseconds(t *testing.T) {
	var buf bytes.Buffer
	p := &progress{logger: newLogger(&buf, log.InfoLevel), start: time.Now().Add(-2 * time.Second)}

	p.done("Generated 12 element pairs, 48 wires")

	// Unrounded durations print up to nine fractional digits.
	re := regexp.MustCompile(`Generated 12 element pairs, 48 wires \(2(\.\d{1,6})?s\)`)
	if !re.MatchString(buf.String()) {
		t.Errorf("progress line = %q, want elapsed time rounded to µs", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)
	var nilCtx context.Context

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"nil context", nilCtx, log.Default()},
		{"no logger attached", context.Background(), log.Default()},
		{"attached", withLogger(context.Background(), custom), custom},
		{"attached to nil context", withLogger(nilCtx, custom), custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestGenerateLogsProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LPDA.txt")

	_, stderr, err := runCLI(t, "generate", "-q", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"derived element pairs", "projected wires", "Generated 12 element pairs, 48 wires"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}
