package main

import (
    "context"
    "time"
)

// Clock suspends the calling task.  Sleep returns nil once d has elapsed, or
// ctx.Err() if the context is done first.
type Clock interface {
    Now() time.Time
    Sleep(ctx context.Context, d time.Duration) error
}

// realClock sleeps on the Go runtime timer.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-t.C:
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}
