package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	std     = newDiscardLogger()
	logFile *os.File
	mu      sync.Mutex
	enabled = true
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
	levelEnv   = "BURROW_LOG_LEVEL"
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Dir returns the directory holding burrow's log and config files.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "burrow"), nil
}

// Init opens ~/.config/burrow/burrow.log and points the package logger at it.
// The terminal belongs to the UI, so nothing is ever written to stdout/stderr.
func Init(level string) error {
	logDir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	return InitFile(filepath.Join(logDir, "burrow.log"), level)
}

// InitFile is Init with an explicit log path.
func InitFile(logPath, level string) error {
	// Rotate once the file grows past maxLogSize
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}
	logFile = file

	l := logrus.New()
	l.SetOutput(file)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(ParseLevel(level))
	std = l
	return nil
}

// ParseLevel resolves the effective level. BURROW_LOG_LEVEL beats the
// configured value; anything unparsable falls back to info.
func ParseLevel(configured string) logrus.Level {
	levelStr := "info"
	if env := strings.TrimSpace(os.Getenv(levelEnv)); env != "" {
		levelStr = env
	} else if configured != "" {
		levelStr = configured
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	std = newDiscardLogger()
}

// Disable disables logging (useful for tests)
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// Enable enables logging
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// WithField returns an entry carrying a structured field. When logging is
// disabled the entry writes nowhere.
func WithField(key string, value any) *logrus.Entry {
	return current().WithField(key, value)
}

// WithFields is WithField for several fields at once.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return current().WithFields(fields)
}

// WithError returns an entry carrying err.
func WithError(err error) *logrus.Entry {
	return current().WithError(err)
}

// SetLevel changes the level of the active logger; see ParseLevel.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	std.SetLevel(ParseLevel(level))
}

// Error logs an error message
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Info logs an informational message
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

var discard = newDiscardLogger()

func current() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return discard
	}
	return std
}
