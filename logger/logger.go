package logger

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// recentCapacity bounds the in-memory history returned by Recent.
const recentCapacity = 256

var (
	mu     sync.Mutex
	sugar  = zap.NewNop().Sugar()
	recent []LogEntry
	nextID int
)

type LogEntry struct {
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Init installs a production zap logger filtered at level ("debug", "info", ...).
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	Use(l)
	return nil
}

// Use replaces the underlying logger.
func Use(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

// Sync flushes buffered entries.
func Sync() error {
	mu.Lock()
	s := sugar
	mu.Unlock()
	return s.Sync()
}

func logMessage(level zapcore.Level, message string) {
	mu.Lock()
	s := sugar
	if s.Desugar().Core().Enabled(level) {
		nextID++
		recent = append(recent, LogEntry{
			ID:        nextID,
			Level:     level.CapitalString(),
			Message:   message,
			CreatedAt: time.Now(),
		})
		if len(recent) > recentCapacity {
			recent = recent[len(recent)-recentCapacity:]
		}
	}
	mu.Unlock()

	switch level {
	case zapcore.DebugLevel:
		s.Debug(message)
	case zapcore.WarnLevel:
		s.Warn(message)
	case zapcore.ErrorLevel:
		s.Error(message)
	default:
		s.Info(message)
	}
}

func Info(message string, args ...interface{}) {
	logMessage(zapcore.InfoLevel, fmt.Sprintf(message, args...))
}

func Warn(message string, args ...interface{}) {
	logMessage(zapcore.WarnLevel, fmt.Sprintf(message, args...))
}

func Error(message string, args ...interface{}) {
	logMessage(zapcore.ErrorLevel, fmt.Sprintf(message, args...))
}

func Debug(message string, args ...interface{}) {
	logMessage(zapcore.DebugLevel, fmt.Sprintf(message, args...))
}

// Recent returns up to limit entries, newest first.
func Recent(limit int) []LogEntry {
	mu.Lock()
	defer mu.Unlock()

	if limit <= 0 || limit > len(recent) {
		limit = len(recent)
	}
	logs := make([]LogEntry, 0, limit)
	for i := len(recent) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, recent[i])
	}
	return logs
}

// Reset drops the recent history.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	recent = nil
	nextID = 0
}
