package main

import (
    "context"
    "log"
)

// Entry point for the blink board program
func main() {
    cfgMgr := NewConfigManager(DefaultConfig())
    cfg := cfgMgr.Get()
    if err := cfg.Validate(); err != nil {
        log.Fatalf("invalid configuration: %v", err)
    }
    logger := NewEventLogger(nil)
    board, err := openBoard()
    if err != nil {
        log.Fatalf("initialisation error: %v", err)
    }
    sched, err := bootstrap(cfg, board, realClock{}, logger)
    if err != nil {
        log.Fatalf("bootstrap error: %v", err)
    }
    if err := sched.Start(context.Background()); err != nil {
        logger.Log("scheduler returned: %v", err)
    } else {
        logger.Log("scheduler returned")
    }
    idle()
}

// bootstrap configures every pin in cfg and registers one toggler per task.
// Pins are configured before any task is registered, so nothing toggles a
// pin that is not yet an output.
func bootstrap(cfg Config, board Board, clock Clock, logger *EventLogger) (*Scheduler, error) {
    pins, err := configurePins(board, cfg.Pins())
    if err != nil {
        return nil, err
    }
    logger.Log("configured %d output pins", len(pins))
    sched := NewScheduler(logger)
    for _, tc := range cfg.Tasks {
        t := &Toggler{
            Name:       tc.Name,
            Pin:        pins[tc.Pin],
            HalfPeriod: tc.HalfPeriod,
            Clock:      clock,
            Logger:     logger,
        }
        if err := sched.Register(t.Run, tc.Name, tc.StackSize, tc.Priority); err != nil {
            return nil, err
        }
    }
    return sched, nil
}
