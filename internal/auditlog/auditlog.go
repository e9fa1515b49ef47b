// Package auditlog appends human-readable action lines to a plain text
// log file. It is unrelated to the user table: the audit log is
// append-only and never reloaded into memory.
package auditlog

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Log writes timestamped action lines. Failures are logged and swallowed;
// an unwritable audit log must never abort the action being recorded.
type Log struct {
	path   string
	logger *slog.Logger
}

// New creates an audit log backed by the file at path. The file is
// created on first write.
func New(path string, logger *slog.Logger) *Log {
	return &Log{
		path:   path,
		logger: logger.With("component", "auditlog", "path", path),
	}
}

// Record appends one timestamped action line.
func (l *Log) Record(action string) {
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(time.RFC3339), action)
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger.Warn("audit log open failed", "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		l.logger.Warn("audit log write failed", "error", err)
	}
}
