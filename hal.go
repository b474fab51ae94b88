//go:build !linux || !(arm || arm64) || disablegpio

package main

// This file provides the board used when building anywhere other than a
// Raspberry Pi, or with the "disablegpio" tag.  Pins are simulated so the
// program can run on a desktop machine; levels are only visible through the
// debug log.

// openBoard returns a simulated board with RP2040-sized GPIO bank.
func openBoard() (Board, error) {
    return newSimBoard(simPinCount), nil
}
