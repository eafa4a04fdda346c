// Package logutil is a thin leveled shim over the standard library's log
// package. The teacher logs exclusively through bare log.Printf calls
// (engine/daemon.go, engine/alert.go); adaptived's C logging macros
// (adaptived_dbg/info/wrn/err, main.c) are leveled, so this package keeps
// the teacher's log.Logger underneath but adds the filtering the LOG_LEVEL
// attribute (spec.md 4.7) needs on top, rather than reaching for a
// structured-logging library the corpus never uses.
package logutil

import (
	"io"
	"log"
	"os"
)

// Level orders from most to least verbose, matching adaptived's
// debug/info/warning/error scale.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel accepts the same names main.c's -l/--loglevel option does.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning", "warn":
		return LevelWarning, true
	case "error", "err":
		return LevelError, true
	default:
		return 0, false
	}
}

// Logger wraps a standard log.Logger with a minimum level below which
// messages are discarded.
type Logger struct {
	std *log.Logger
	min Level
}

// New builds a Logger writing to w, prefixed and flagged the way the
// teacher's default logger is (log.Printf's package-level logger carries
// the standard date/time prefix).
func New(w io.Writer, min Level) *Logger {
	return &Logger{std: log.New(w, "", log.LstdFlags), min: min}
}

// Default returns a Logger writing to stderr at LevelInfo, the teacher's
// implicit default (log.Printf's package logger).
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

// SetMinLevel changes the filtering threshold, backing the LOG_LEVEL
// context attribute (spec.md 4.7).
func (l *Logger) SetMinLevel(min Level) {
	l.min = min
}

// MinLevel returns the current filtering threshold, so a caller holding
// only a Logger can round-trip the LOG_LEVEL attribute without tracking
// the value separately.
func (l *Logger) MinLevel() Level {
	return l.min
}

func (l *Logger) log(level Level, format string, args []interface{}) {
	if level < l.min {
		return
	}
	l.std.Printf("["+level.String()+"] "+format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{})   { l.log(LevelDebug, format, args) }
func (l *Logger) Infof(format string, args ...interface{})    { l.log(LevelInfo, format, args) }
func (l *Logger) Warningf(format string, args ...interface{}) { l.log(LevelWarning, format, args) }
func (l *Logger) Errorf(format string, args ...interface{})   { l.log(LevelError, format, args) }
