//go:build unit

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"go-admin-dashboard/internal/config"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]interface{}
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("failed to unmarshal log line as json: %v\nline: %s", err, line)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	New(config.LogConfig{Level: "info", Format: "console"}, &buf).Info("Server started")

	output := buf.String()
	if !strings.Contains(output, "Server started") {
		t.Errorf("expected log output to contain the message, got %q", output)
	}
	if strings.Contains(output, "{") {
		t.Errorf("expected console format, got json-like output: %s", output)
	}
}

func TestLogger_JSONError(t *testing.T) {
	var buf bytes.Buffer
	New(config.LogConfig{Level: "error", Format: "json"}, &buf).Error(errors.New("disk full"), "Failed to save FAQ")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one line, got %d", len(entries))
	}
	e := entries[0]
	if e["level"] != "error" || e["message"] != "Failed to save FAQ" || e["error"] != "disk full" {
		t.Errorf("unexpected entry %v", e)
	}
	if e["app"] != "dashboard" {
		t.Errorf("expected app=dashboard, got %v", e["app"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "WARN", Format: "json"}, &buf)

	log.Info("this should be ignored")
	log.Warn("this should appear")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "this should appear" {
		t.Errorf("expected only the warning, got %v", entries)
	}
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "chatty", Format: "json"}, &buf)
	log.Debug("hidden")
	log.Info("shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected the fallback warning and one info line, got %v", entries)
	}
	if entries[0]["level"] != "warn" || entries[0]["level"] == entries[1]["level"] {
		t.Errorf("expected a warning about the level first, got %v", entries[0])
	}
	if entries[1]["message"] != "shown" {
		t.Errorf("unexpected entry %v", entries[1])
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.With(map[string]interface{}{"key": "faq", "id": 42}).Info("record saved")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one line, got %d", len(entries))
	}
	if entries[0]["key"] != "faq" || entries[0]["id"] != float64(42) {
		t.Errorf("expected key=faq id=42, got %v", entries[0])
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("discarded")
	log.With(map[string]interface{}{"a": 1}).Error(errors.New("x"), "discarded")
}
