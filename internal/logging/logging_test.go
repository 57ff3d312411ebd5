package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

type lines struct {
	got []string
}

func (l *lines) WriteLineBytes(b []byte) { l.got = append(l.got, string(b)) }

func TestNopDisabled(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if Nop().Enabled(context.Background(), level) {
			t.Errorf("Nop().Enabled(%v) = true, want false", level)
		}
	}
	if OrNop(nil) != Nop() {
		t.Errorf("OrNop(nil) did not return Nop()")
	}
}

func TestWriterSplitsLines(t *testing.T) {
	var sink lines
	w := Writer(&sink)
	w.Write([]byte("first\nsec"))
	w.Write([]byte("ond\n"))
	w.Write([]byte("partial"))

	if len(sink.got) != 2 || sink.got[0] != "first" || sink.got[1] != "second" {
		t.Fatalf("lines=%q; want [first second]", sink.got)
	}
}

func TestNewWritesThroughSink(t *testing.T) {
	var sink lines
	l := New(Writer(&sink), slog.LevelWarn)
	l.Info("hidden")
	l.Warn("malformed record", "line", 3)

	if len(sink.got) != 1 {
		t.Fatalf("got %d lines; want 1: %q", len(sink.got), sink.got)
	}
	if !strings.Contains(sink.got[0], "malformed record") || !strings.Contains(sink.got[0], "line=3") {
		t.Fatalf("unexpected line %q", sink.got[0])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{in: "debug", want: slog.LevelDebug, ok: true},
		{in: "", want: slog.LevelInfo, ok: true},
		{in: "WARN", want: slog.LevelWarn, ok: true},
		{in: "error", want: slog.LevelError, ok: true},
		{in: "trace", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseLevel(%q) err=%v; want ok=%v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v; want %v", tt.in, got, tt.want)
		}
	}
}
