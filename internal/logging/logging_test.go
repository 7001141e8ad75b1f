package logging

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "board", "w")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("output %q contains info record at warn level", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "board=w") {
		t.Fatalf("output %q missing warn record", out)
	}
}

func TestOpen_CreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "threds.log")

	logger, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("first")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	logger, err = Open(path, "info")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("second")
	_ = logger.Close()

	if logger.Path() != path {
		t.Fatalf("Path() = %q, want %q", logger.Path(), path)
	}
	lines, err := Tail(path, 0)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Fatalf("log lines = %q, want first then second", lines)
	}
}

func TestOpen_RejectsUnknownLevel(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("Open returned nil error, want level error")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	if l.Path() != "" {
		t.Fatalf("Path() = %q, want empty", l.Path())
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil", err)
	}
}

func TestTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tail() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Tail(missing) = %v, %v; want nil, nil", lines, err)
	}
}
