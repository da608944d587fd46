package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func record(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC), level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	if err := h.Handle(context.Background(), record(slog.LevelInfo, "msg", slog.String("k", "v"))); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("output missing level: %q", out)
	}
	if !strings.Contains(out, "msg") || !strings.Contains(out, "k=v") {
		t.Errorf("output missing content: %q", out)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	derived := h.WithAttrs([]slog.Attr{slog.String("base", "attr")})

	if err := derived.Handle(context.Background(), record(slog.LevelInfo, "msg")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(buf.String(), "base=attr") {
		t.Errorf("derived handler dropped attrs: %q", buf.String())
	}

	// The original handler must be unaffected.
	buf.Reset()
	if err := h.Handle(context.Background(), record(slog.LevelInfo, "msg")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if strings.Contains(buf.String(), "base=attr") {
		t.Error("WithAttrs leaked into the original handler")
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("multi handler should be enabled if any child is")
	}

	if err := h.Handle(context.Background(), record(slog.LevelInfo, "routed")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(a.String(), "routed") {
		t.Error("debug-level child missed the record")
	}
	if b.Len() != 0 {
		t.Errorf("error-level child should have filtered the record: %q", b.String())
	}
}
