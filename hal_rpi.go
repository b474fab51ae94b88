//go:build linux && (arm || arm64) && !disablegpio

// This file provides a Raspberry Pi implementation of the board using the
// periph.io library.  When cross-compiling for other platforms or when the
// build tag "disablegpio" is specified, hal.go is used instead.

package main

import (
    "fmt"

    // Use the new periph module layout.  See https://periph.io/news/2020/a_new_start/
    "periph.io/x/conn/v3/gpio"
    "periph.io/x/conn/v3/gpio/gpioreg"
    "periph.io/x/host/v3"
)

// hostBoard addresses pins by their BCM numbers through the periph registry.
type hostBoard struct{}

// openBoard initialises periph host state.  Returning an error here will
// prevent the scheduler from starting.
func openBoard() (Board, error) {
    if _, err := host.Init(); err != nil {
        return nil, fmt.Errorf("periph host init: %w", err)
    }
    return hostBoard{}, nil
}

// Output looks up GPIO<id> and drives it low, which also sets its direction
// to output.  host.Init has already run, and driving a pin that is already
// an output low again has no further effect.
func (hostBoard) Output(id int) (gpio.PinOut, error) {
    name := fmt.Sprintf("GPIO%d", id)
    p := gpioreg.ByName(name)
    if p == nil {
        return nil, fmt.Errorf("%s: %w", name, ErrUnknownPin)
    }
    if err := p.Out(gpio.Low); err != nil {
        return nil, fmt.Errorf("%s: set output: %w", name, err)
    }
    return p, nil
}
