package main

import (
    "bytes"
    "context"
    "sync"
    "time"

    "periph.io/x/conn/v3/gpio"
)

// fakeClock is a virtual clock.  Sleepers block until advanceTo moves time
// past their deadline; they are woken one at a time in deadline order.
type fakeClock struct {
    mu       sync.Mutex
    cond     *sync.Cond
    now      time.Time
    sleepers []*sleeper
}

type sleeper struct {
    until time.Time
    done  chan struct{}
}

var epoch = time.Unix(0, 0).UTC()

func newFakeClock() *fakeClock {
    c := &fakeClock{now: epoch}
    c.cond = sync.NewCond(&c.mu)
    return c
}

func (c *fakeClock) Now() time.Time {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
    c.mu.Lock()
    s := &sleeper{until: c.now.Add(d), done: make(chan struct{})}
    c.sleepers = append(c.sleepers, s)
    c.cond.Broadcast()
    c.mu.Unlock()
    select {
    case <-s.done:
        return nil
    case <-ctx.Done():
        c.mu.Lock()
        for i, o := range c.sleepers {
            if o == s {
                c.sleepers = append(c.sleepers[:i], c.sleepers[i+1:]...)
                break
            }
        }
        c.cond.Broadcast()
        c.mu.Unlock()
        return ctx.Err()
    }
}

// blockUntil waits until n goroutines are asleep on the clock.
func (c *fakeClock) blockUntil(n int) {
    c.mu.Lock()
    defer c.mu.Unlock()
    for len(c.sleepers) < n {
        c.cond.Wait()
    }
}

// advanceTo moves the clock to epoch+d.  n is the number of tasks that sleep
// on the clock; after each wakeup it waits for the woken task to sleep again
// before moving on, so every transition is stamped with its exact deadline.
func (c *fakeClock) advanceTo(d time.Duration, n int) {
    target := epoch.Add(d)
    for {
        c.mu.Lock()
        for len(c.sleepers) < n {
            c.cond.Wait()
        }
        next := -1
        for i, s := range c.sleepers {
            if next < 0 || s.until.Before(c.sleepers[next].until) {
                next = i
            }
        }
        if next < 0 || c.sleepers[next].until.After(target) {
            c.now = target
            c.mu.Unlock()
            return
        }
        s := c.sleepers[next]
        c.sleepers = append(c.sleepers[:next], c.sleepers[next+1:]...)
        c.now = s.until
        close(s.done)
        c.mu.Unlock()
    }
}

// transition is one pin write, stamped with virtual time since epoch.
type transition struct {
    at    time.Duration
    level gpio.Level
}

// recordingPin logs every write made through it.
type recordingPin struct {
    gpio.PinOut
    clock Clock

    mu  sync.Mutex
    log []transition
}

func (p *recordingPin) Out(l gpio.Level) error {
    if err := p.PinOut.Out(l); err != nil {
        return err
    }
    p.mu.Lock()
    p.log = append(p.log, transition{at: p.clock.Now().Sub(epoch), level: l})
    p.mu.Unlock()
    return nil
}

func (p *recordingPin) transitions() []transition {
    p.mu.Lock()
    defer p.mu.Unlock()
    return append([]transition(nil), p.log...)
}

// recordingBoard wraps a simulated board and hands out recording pins.
type recordingBoard struct {
    *simBoard
    clock Clock

    mu   sync.Mutex
    pins map[int]*recordingPin
}

func newRecordingBoard(clock Clock) *recordingBoard {
    return &recordingBoard{simBoard: newSimBoard(simPinCount), clock: clock, pins: make(map[int]*recordingPin)}
}

func (b *recordingBoard) Output(id int) (gpio.PinOut, error) {
    p, err := b.simBoard.Output(id)
    if err != nil {
        return nil, err
    }
    b.mu.Lock()
    defer b.mu.Unlock()
    rp := &recordingPin{PinOut: p, clock: b.clock}
    b.pins[id] = rp
    return rp, nil
}

func (b *recordingBoard) pin(id int) *recordingPin {
    b.mu.Lock()
    defer b.mu.Unlock()
    return b.pins[id]
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
    mu  sync.Mutex
    buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
    b.mu.Lock()
    defer b.mu.Unlock()
    return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
    b.mu.Lock()
    defer b.mu.Unlock()
    return b.buf.String()
}
