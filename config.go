package main

import (
    "errors"
    "fmt"
    "sync"
    "time"
)

// Pin assignments of the three LEDs.  Pin 25 is the on-board LED.
const (
    LEDPin  = 25
    LED2Pin = 15
    LED3Pin = 16
)

// Half-periods of the three togglers.
const (
    LEDHalfPeriod  = 2000 * time.Millisecond
    LED2HalfPeriod = 200 * time.Millisecond
    LED3HalfPeriod = 100 * time.Millisecond
)

// Every toggler gets the same small stack and the lowest non-idle priority.
const (
    TaskStackSize = 256
    TaskPriority  = 1
)

// ErrDuplicatePin is returned by Validate when two tasks drive the same pin.
var ErrDuplicatePin = errors.New("pin owned by more than one task")

// DefaultConfig returns the compiled-in board configuration.
func DefaultConfig() Config {
    return Config{
        Tasks: []TaskConfig{
            {Name: "LED Task 1", Pin: LEDPin, HalfPeriod: LEDHalfPeriod, StackSize: TaskStackSize, Priority: TaskPriority},
            {Name: "LED Task 2", Pin: LED2Pin, HalfPeriod: LED2HalfPeriod, StackSize: TaskStackSize, Priority: TaskPriority},
            {Name: "LED Task 3", Pin: LED3Pin, HalfPeriod: LED3HalfPeriod, StackSize: TaskStackSize, Priority: TaskPriority},
        },
    }
}

// Validate checks that every task has a positive half-period, sane scheduler
// attributes and a pin no other task owns.
func (c Config) Validate() error {
    owners := make(map[int]string, len(c.Tasks))
    for _, t := range c.Tasks {
        if t.Name == "" {
            return fmt.Errorf("task on pin %d: empty name", t.Pin)
        }
        if t.HalfPeriod <= 0 {
            return fmt.Errorf("task %q: half-period must be positive, got %v", t.Name, t.HalfPeriod)
        }
        if t.StackSize <= 0 {
            return fmt.Errorf("task %q: stack size must be positive, got %d", t.Name, t.StackSize)
        }
        if t.Priority < 0 {
            return fmt.Errorf("task %q: priority must not be negative, got %d", t.Name, t.Priority)
        }
        if owner, ok := owners[t.Pin]; ok {
            return fmt.Errorf("pin %d (%s, %s): %w", t.Pin, owner, t.Name, ErrDuplicatePin)
        }
        owners[t.Pin] = t.Name
    }
    return nil
}

// ConfigManager wraps the board configuration and a mutex for concurrent
// access.  Nothing is persisted: the board has no storage it writes to.
type ConfigManager struct {
    mu  sync.RWMutex
    cfg Config
}

// NewConfigManager returns a manager holding cfg.
func NewConfigManager(cfg Config) *ConfigManager {
    return &ConfigManager{cfg: cfg}
}

// Get returns a copy of the current configuration.  The task slice is copied
// so callers may modify the result freely.
func (cm *ConfigManager) Get() Config {
    cm.mu.RLock()
    defer cm.mu.RUnlock()
    tasks := make([]TaskConfig, len(cm.cfg.Tasks))
    copy(tasks, cm.cfg.Tasks)
    return Config{Tasks: tasks}
}

// Update applies fn to a copy of the configuration and stores the result if
// fn succeeds and the result validates.  The updater must not capture the
// pointer beyond the scope of the function.
func (cm *ConfigManager) Update(fn func(*Config) error) error {
    cm.mu.Lock()
    defer cm.mu.Unlock()
    next := Config{Tasks: append([]TaskConfig(nil), cm.cfg.Tasks...)}
    if err := fn(&next); err != nil {
        return err
    }
    if err := next.Validate(); err != nil {
        return fmt.Errorf("invalid config: %w", err)
    }
    cm.cfg = next
    return nil
}

// Task returns the task with the given name.  The boolean is false when no
// such task is configured.
func (cm *ConfigManager) Task(name string) (TaskConfig, bool) {
    cm.mu.RLock()
    defer cm.mu.RUnlock()
    for _, t := range cm.cfg.Tasks {
        if t.Name == name {
            return t, true
        }
    }
    return TaskConfig{}, false
}
