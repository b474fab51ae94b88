package main

import "time"

// TaskConfig describes one toggler task: the pin it owns, how long it waits
// between transitions and the scheduler attributes it is registered with.
// Stack size and priority are kept as task metadata; goroutines have no
// equivalent knobs.
type TaskConfig struct {
    Name       string        `json:"name"`        // task name (e.g. "LED Task 1")
    Pin        int           `json:"pin"`         // GPIO line driven by this task
    HalfPeriod time.Duration `json:"half_period"` // time between low->high and high->low
    StackSize  int           `json:"stack_size"`  // stack allocation in words
    Priority   int           `json:"priority"`    // scheduler priority, 0 is idle
}

// Period returns the full toggle period, twice the half-period.
func (t TaskConfig) Period() time.Duration {
    return 2 * t.HalfPeriod
}

// Config is the top-level board configuration.  It is compiled in; the
// device boots straight into it with no external input.
type Config struct {
    Tasks []TaskConfig `json:"tasks"`
}

// Pins returns the pin ids of all tasks in task order.
func (c Config) Pins() []int {
    pins := make([]int, 0, len(c.Tasks))
    for _, t := range c.Tasks {
        pins = append(pins, t.Pin)
    }
    return pins
}
