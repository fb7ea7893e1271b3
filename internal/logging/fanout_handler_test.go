package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerNilHandlers(t *testing.T) {
	h := newFanoutHandler(nil, nil)
	if _, ok := h.(NoopHandler); !ok {
		t.Errorf("expected NoopHandler for all nil handlers, got %T", h)
	}
}

func TestNewFanoutHandlerFiltersNil(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)

	if h := newFanoutHandler(nil, inner, nil); h != inner {
		t.Error("expected single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsEachLevel(t *testing.T) {
	var console, file bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected fanout enabled when any handler accepts debug")
	}

	logger := slog.New(h)
	logger.Debug("aligned", "captions", 3)
	logger.Warn("secondary track missing")

	if strings.Contains(console.String(), "aligned") {
		t.Errorf("warn-level handler received debug record: %q", console.String())
	}
	if !strings.Contains(console.String(), "secondary track missing") {
		t.Errorf("warn-level handler missed warning: %q", console.String())
	}
	if !strings.Contains(file.String(), "aligned") || !strings.Contains(file.String(), "secondary track missing") {
		t.Errorf("debug-level handler missed records: %q", file.String())
	}
}

func TestFanoutHandlerWithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := newFanoutHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))

	logger := slog.New(h).With(FieldLoadID, "abc").WithGroup("query")
	logger.Info("active", "t", 1.5)

	for i, out := range []string{buf1.String(), buf2.String()} {
		if !strings.Contains(out, `"load_id":"abc"`) {
			t.Errorf("handler %d missing load id: %s", i, out)
		}
		if !strings.Contains(out, `"query":{"t":1.5}`) {
			t.Errorf("handler %d missing grouped attr: %s", i, out)
		}
	}
}
