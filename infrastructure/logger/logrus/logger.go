// ABOUTME: Logrus-backed logger implementation
// ABOUTME: Provides leveled structured logging in text or JSON format

package logrus

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config controls the logger's level and output format
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Format is text or json. Unknown values mean text.
	Format string
}

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	logger *log.Logger
}

// NewLogrusLogger creates a new logrus-backed logger
func NewLogrusLogger(cfg Config) *LogrusLogger {
	logger := log.New()
	logger.SetOutput(os.Stdout)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return &LogrusLogger{logger: logger}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
