package main

import (
    "errors"
    "fmt"

    "periph.io/x/conn/v3/gpio"
)

// ErrUnknownPin is returned when a board has no line with the requested id.
var ErrUnknownPin = errors.New("unknown pin")

// Board hands out output pins.  Output configures line id as a digital
// output, drives it low and returns its handle.  Calling Output again for the
// same id must leave the pin an output and return an equivalent handle.
type Board interface {
    Output(id int) (gpio.PinOut, error)
}

// configurePins sets every id up as an output before any toggler runs.  The
// returned map holds the one handle each pin's owning task receives.
func configurePins(board Board, ids []int) (map[int]gpio.PinOut, error) {
    pins := make(map[int]gpio.PinOut, len(ids))
    for _, id := range ids {
        p, err := board.Output(id)
        if err != nil {
            return nil, fmt.Errorf("configure pin %d: %w", id, err)
        }
        pins[id] = p
    }
    return pins, nil
}
