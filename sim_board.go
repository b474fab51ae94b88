package main

import (
    "fmt"
    "sync"

    "periph.io/x/conn/v3/gpio"
    "periph.io/x/conn/v3/gpio/gpiotest"
)

// simPinCount matches the GPIO bank of the RP2040 (GPIO0-GPIO29).
const simPinCount = 30

// simBoard is a Board backed by periph's in-memory test pins.  A pin is
// created the first time it is configured and reused afterwards.
type simBoard struct {
    mu      sync.Mutex
    count   int
    pins    map[int]*gpiotest.Pin
    configs int // number of Output calls, for idempotence checks
}

func newSimBoard(count int) *simBoard {
    return &simBoard{count: count, pins: make(map[int]*gpiotest.Pin)}
}

// Output returns the simulated pin id, driven low.
func (b *simBoard) Output(id int) (gpio.PinOut, error) {
    if id < 0 || id >= b.count {
        return nil, fmt.Errorf("GPIO%d: %w", id, ErrUnknownPin)
    }
    b.mu.Lock()
    defer b.mu.Unlock()
    b.configs++
    p, ok := b.pins[id]
    if !ok {
        p = &gpiotest.Pin{N: fmt.Sprintf("GPIO%d", id), Num: id}
        b.pins[id] = p
    }
    if err := p.Out(gpio.Low); err != nil {
        return nil, fmt.Errorf("GPIO%d: set output: %w", id, err)
    }
    return p, nil
}

// level reports the current level of pin id and whether it was ever
// configured.
func (b *simBoard) level(id int) (gpio.Level, bool) {
    b.mu.Lock()
    p, ok := b.pins[id]
    b.mu.Unlock()
    if !ok {
        return gpio.Low, false
    }
    return p.Read(), true
}
