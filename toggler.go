package main

import (
    "context"
    "time"

    "periph.io/x/conn/v3/gpio"
)

// Toggler alternates one pin between low and high forever, waiting
// HalfPeriod between transitions.  It is the only writer of Pin.
type Toggler struct {
    Name       string
    Pin        gpio.PinOut
    HalfPeriod time.Duration
    Clock      Clock
    Logger     *EventLogger
}

// Run drives the pin low, sleeps, drives it high, sleeps, and repeats.  The
// loop has no exit of its own; it returns only when ctx is done, which never
// happens on the device since main runs it under context.Background.
// A failed write is logged and the loop carries on.
func (t *Toggler) Run(ctx context.Context) error {
    for {
        for _, level := range [...]gpio.Level{gpio.Low, gpio.High} {
            t.set(level)
            if err := t.Clock.Sleep(ctx, t.HalfPeriod); err != nil {
                return err
            }
        }
    }
}

func (t *Toggler) set(level gpio.Level) {
    if err := t.Pin.Out(level); err != nil {
        t.Logger.Log("%s: write %s to %s: %v", t.Name, level, t.Pin.Name(), err)
        return
    }
    t.Logger.Debug("%s: %s %s", t.Name, t.Pin.Name(), level)
}
