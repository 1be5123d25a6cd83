package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newCaptureAdapter() (*HertzSlogAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewHertzSlogAdapter(slog.New(h)), &buf
}

func TestHertzSlogAdapterLevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		log       func(a *HertzSlogAdapter)
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "trace collapses onto debug",
			log:       func(a *HertzSlogAdapter) { a.Trace("handshake") },
			wantLevel: "level=DEBUG",
			wantMsg:   "handshake",
		},
		{
			name:      "notice collapses onto info",
			log:       func(a *HertzSlogAdapter) { a.Noticef("listening on %s", ":8080") },
			wantLevel: "level=INFO",
			wantMsg:   "listening on :8080",
		},
		{
			name:      "warn stays warn",
			log:       func(a *HertzSlogAdapter) { a.Warnf("slow request: %dms", 1200) },
			wantLevel: "level=WARN",
			wantMsg:   "slow request: 1200ms",
		},
		{
			name:      "fatal collapses onto error",
			log:       func(a *HertzSlogAdapter) { a.Fatal("listener gone") },
			wantLevel: "level=ERROR",
			wantMsg:   "listener gone",
		},
		{
			name:      "ctx variant keeps the level",
			log:       func(a *HertzSlogAdapter) { a.CtxErrorf(context.Background(), "upstream: %v", "timeout") },
			wantLevel: "level=ERROR",
			wantMsg:   "upstream: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newCaptureAdapter()
			tt.log(adapter)

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("output %q missing %q", out, tt.wantLevel)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output %q missing message %q", out, tt.wantMsg)
			}
		})
	}
}

func TestJoinMessage(t *testing.T) {
	if got := joinMessage(); got != "" {
		t.Errorf("joinMessage() = %q, want empty", got)
	}
	if got := joinMessage("plain"); got != "plain" {
		t.Errorf("joinMessage(plain) = %q", got)
	}
	if got := joinMessage("a", 1, true); got != "a1 true" {
		t.Errorf("joinMessage variadic = %q", got)
	}
}
