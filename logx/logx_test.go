package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.fernwave.dev/settingsx/core/log"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log output is not JSON: %q: %v", line, err)
	}
	return entry
}

func TestNew_InfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Info("settings resolved", log.Int("keys", 3), log.Str("owner", "acme"))

	entry := logLine(t, &buf)
	if entry["message"] != "settings resolved" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["keys"] != float64(3) {
		t.Errorf("keys = %v", entry["keys"])
	}
	if entry["owner"] != "acme" {
		t.Errorf("owner = %v", entry["owner"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithLevel("warn"))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn should be emitted at warn level")
	}
}

func TestNew_ErrorAttachesErr(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Error(errors.New("boom"), "resolve failed")

	entry := logLine(t, &buf)
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestWith_AttachesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf)).With(log.Str("component", "settingsx"))

	logger.Info("hello")

	entry := logLine(t, &buf)
	if entry["component"] != "settingsx" {
		t.Errorf("component = %v", entry["component"])
	}
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithService("demo"))

	logger.Info("hello")

	entry := logLine(t, &buf)
	if entry["service"] != "demo" {
		t.Errorf("service = %v", entry["service"])
	}
}

func TestPairs_FlatSequence(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	// Flat alternating key/value form is accepted alongside helper pairs.
	logger.Info("hello", "key", "value")

	entry := logLine(t, &buf)
	if entry["key"] != "value" {
		t.Errorf("key = %v", entry["key"])
	}
}
