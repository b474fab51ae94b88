package main

import (
    "fmt"
    "io"
    "os"
    "sync"
    "time"
)

// EventLogger writes timestamped events to a writer.  It is safe for
// concurrent use; every toggler shares one.
type EventLogger struct {
    mu    sync.Mutex
    w     io.Writer
    now   func() time.Time
    debug bool
}

// NewEventLogger creates a logger writing to w.  A nil writer means stderr.
func NewEventLogger(w io.Writer) *EventLogger {
    if w == nil {
        w = os.Stderr
    }
    return &EventLogger{w: w, now: time.Now}
}

// SetDebug turns per-toggle logging on or off.
func (el *EventLogger) SetDebug(on bool) {
    el.mu.Lock()
    el.debug = on
    el.mu.Unlock()
}

// Log writes a single event with timestamp.  Write errors are ignored but
// printed to standard error.
func (el *EventLogger) Log(format string, args ...any) {
    el.mu.Lock()
    defer el.mu.Unlock()
    el.write(format, args...)
}

// Debug is like Log but only writes when debug output is enabled.
func (el *EventLogger) Debug(format string, args ...any) {
    el.mu.Lock()
    defer el.mu.Unlock()
    if !el.debug {
        return
    }
    el.write(format, args...)
}

func (el *EventLogger) write(format string, args ...any) {
    msg := fmt.Sprintf(format, args...)
    ts := el.now().Format(time.RFC3339)
    if _, err := fmt.Fprintf(el.w, "%s - %s\n", ts, msg); err != nil {
        fmt.Fprintf(os.Stderr, "log write error: %v\n", err)
    }
}
