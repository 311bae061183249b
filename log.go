package objectutil

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
)

// LogLevel caps what a TextLogger writes; higher levels are more verbose.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "LogLevel(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// ParseLogLevel resolves a level name case-insensitively. "warning" is
// accepted for LevelWarn.
func ParseLogLevel(s string) (LogLevel, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return LevelWarn, nil
	}
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(l), nil
		}
	}
	return LevelWarn, fmt.Errorf("objectutil: unknown log level %q", s)
}

// Logger is the leveled logging capability accepted by LogObserver and the CLI.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// TextLogger writes single-line "[LEVEL] msg" records through a log.Logger.
type TextLogger struct {
	mu    sync.RWMutex
	out   *log.Logger
	level LogLevel
}

// NewLogger returns a TextLogger writing to w. Records above level are dropped.
func NewLogger(w io.Writer, prefix string, level LogLevel) *TextLogger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &TextLogger{out: log.New(w, prefix, log.LstdFlags), level: level}
}

// SetLevel changes the maximum level that is emitted.
func (l *TextLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current maximum level.
func (l *TextLogger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *TextLogger) logf(level LogLevel, format string, args ...any) {
	if level > l.Level() {
		return
	}
	l.out.Print("[" + level.String() + "] " + fmt.Sprintf(format, args...))
}

func (l *TextLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *TextLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *TextLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *TextLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NopLogger discards every record.
var NopLogger Logger = nopLogger{}
