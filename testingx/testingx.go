// Package testingx provides testing utilities for the settingsx packages.
//
// Overview:
//   - Responsibility: Testing helpers and mocks
//   - Key Types: MockLogger capturing structured log entries
//   - Concurrency Model: Thread-safe where needed
//   - Error Semantics: Test failures via testing.T
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	list := settingsx.NewList(settingsx.Options{Logger: logger})
package testingx

import (
	"strings"
	"sync"
	"testing"

	"go.fernwave.dev/settingsx/core/log"
)

// MockLogger is a mock logger that records every entry for inspection.
type MockLogger struct {
	t       *testing.T
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single recorded log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t *testing.T) *MockLogger {
	return &MockLogger{
		t:       t,
		entries: make([]LogEntry, 0),
	}
}

// With returns the logger itself; field accumulation is not recorded.
func (m *MockLogger) With(kv ...any) log.Logger {
	return m
}

// Debug records a debug entry.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.record("DEBUG", msg, nil, kv)
}

// Info records an info entry.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.record("INFO", msg, nil, kv)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.record("WARN", msg, nil, kv)
}

// Error records an error entry.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.record("ERROR", msg, err, kv)
}

func (m *MockLogger) record(level, msg string, err error, kv []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  kv,
		Error:   err,
	})
}

// Entries returns a copy of all recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasEntry reports whether an entry at the given level contains substr in
// its message.
func (m *MockLogger) HasEntry(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
