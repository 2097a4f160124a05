// Package logging builds the log sink consumed by the loader manager.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const prefix = "patchloader"

// Sink is the structured logging surface the core writes to.
// *log.Logger from charmbracelet/log satisfies it.
type Sink interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// New returns a logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  ParseLevel(level),
	})
}

// Discard returns a sink that drops every entry.
func Discard() Sink {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

var levels = map[string]log.Level{
	"":         log.InfoLevel,
	"info":     log.InfoLevel,
	"debug":    log.DebugLevel,
	"trace":    log.DebugLevel,
	"warn":     log.WarnLevel,
	"warning":  log.WarnLevel,
	"error":    log.ErrorLevel,
	"off":      log.FatalLevel,
	"none":     log.FatalLevel,
	"disabled": log.FatalLevel,
}

// ParseLevel maps a level name onto a charmbracelet/log level.
// Unknown names map to info; use KnownLevel to reject them.
func ParseLevel(raw string) log.Level {
	if level, ok := levels[normalize(raw)]; ok {
		return level
	}
	return log.InfoLevel
}

// KnownLevel reports whether raw names a level ParseLevel understands. Empty is known.
func KnownLevel(raw string) bool {
	_, ok := levels[normalize(raw)]
	return ok
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
