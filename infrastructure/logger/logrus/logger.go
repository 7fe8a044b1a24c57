// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Supports level and format selection plus optional rotating file output via lumberjack

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects where and how log entries are written
type Config struct {
	// Level is one of debug, info, warn or error
	Level string

	// Format is text or json
	Format string

	// File enables rotating file output when set. Stderr is used otherwise.
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays control file rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig returns info level text output on stderr
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "text",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// New creates a logger from cfg
func New(cfg Config) (*Logger, error) {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	base := logrus.New()
	base.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	l := &Logger{entry: logrus.NewEntry(base)}

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		base.SetOutput(rotating)
		l.closer = rotating
	} else {
		base.SetOutput(os.Stderr)
	}

	return l, nil
}

// NewWithWriter creates a logger that writes JSON entries to w.
// Used by tests that inspect output.
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{entry: logrus.NewEntry(base)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
