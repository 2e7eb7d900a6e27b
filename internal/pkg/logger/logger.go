package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// AppLogger is the application logger with JSON output and optional file tee
type AppLogger struct {
	*logrus.Logger
	file *os.File
}

// NewAppLogger creates a new application logger from config
func NewAppLogger(cfg models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	app := &AppLogger{Logger: l}

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		app.file = f
		l.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	return app, nil
}

// Close releases the log file, if one was opened
func (a *AppLogger) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}

// Info logs an info message with structured fields
func (a *AppLogger) Info(msg string, fields ...Field) {
	a.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (a *AppLogger) Warn(msg string, fields ...Field) {
	a.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (a *AppLogger) Error(msg string, fields ...Field) {
	a.WithFields(toLogrusFields(fields)).Error(msg)
}

// Debug logs a debug message with structured fields
func (a *AppLogger) Debug(msg string, fields ...Field) {
	a.WithFields(toLogrusFields(fields)).Debug(msg)
}

// Fatal logs a fatal message with structured fields and exits
func (a *AppLogger) Fatal(msg string, fields ...Field) {
	a.WithFields(toLogrusFields(fields)).Fatal(msg)
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
