package testutil

import (
	"fmt"
	"strings"
)

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	KeyVals []interface{}
}

// Recorder is an in-memory logging.Sink for asserting on logged entries.
type Recorder struct {
	Entries []Entry
}

// Debug records a debug entry.
func (r *Recorder) Debug(msg interface{}, keyvals ...interface{}) { r.add("debug", msg, keyvals) }

// Info records an info entry.
func (r *Recorder) Info(msg interface{}, keyvals ...interface{}) { r.add("info", msg, keyvals) }

// Error records an error entry.
func (r *Recorder) Error(msg interface{}, keyvals ...interface{}) { r.add("error", msg, keyvals) }

func (r *Recorder) add(level string, msg interface{}, keyvals []interface{}) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprint(msg), KeyVals: keyvals})
}

// Has reports whether an entry at level contains substr in its message.
func (r *Recorder) Has(level string, substr string) bool {
	for _, e := range r.Entries {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
