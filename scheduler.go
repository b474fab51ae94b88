package main

import (
    "context"
    "errors"
    "fmt"
    "sync"
    "time"

    "golang.org/x/sync/errgroup"
)

var (
    // ErrNoTasks is returned by Start when nothing was registered.
    ErrNoTasks = errors.New("scheduler: no tasks registered")
    // ErrAlreadyStarted is returned by Register and Start once Start has run.
    ErrAlreadyStarted = errors.New("scheduler: already started")
)

// TaskFunc is the entry point of a task.  Board tasks never return on their
// own.
type TaskFunc func(ctx context.Context) error

// task is a registered entry point with its scheduler attributes.
type task struct {
    entry     TaskFunc
    name      string
    stackSize int
    priority  int
}

// Scheduler runs registered tasks as goroutines.  Stack size and priority
// are kept for logging only: the Go runtime sizes stacks itself and
// preempts goroutines without priorities.
type Scheduler struct {
    mu      sync.Mutex
    tasks   []task
    started bool
    logger  *EventLogger
}

// NewScheduler returns an empty scheduler logging to logger.
func NewScheduler(logger *EventLogger) *Scheduler {
    return &Scheduler{logger: logger}
}

// Register adds a task.  No handle is returned; tasks are never joined or
// signalled individually.
func (s *Scheduler) Register(entry TaskFunc, name string, stackSize, priority int) error {
    if entry == nil {
        return fmt.Errorf("task %q: nil entry", name)
    }
    if stackSize <= 0 {
        return fmt.Errorf("task %q: stack size must be positive, got %d", name, stackSize)
    }
    if priority < 0 {
        return fmt.Errorf("task %q: priority must not be negative, got %d", name, priority)
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.started {
        return ErrAlreadyStarted
    }
    s.tasks = append(s.tasks, task{entry: entry, name: name, stackSize: stackSize, priority: priority})
    s.logger.Log("registered task %q (stack %d, priority %d)", name, stackSize, priority)
    return nil
}

// Start launches every registered task and blocks until all of them have
// returned.  A task error cancels the context handed to the others; the
// first error is returned.
func (s *Scheduler) Start(ctx context.Context) error {
    s.mu.Lock()
    if s.started {
        s.mu.Unlock()
        return ErrAlreadyStarted
    }
    if len(s.tasks) == 0 {
        s.mu.Unlock()
        return ErrNoTasks
    }
    s.started = true
    tasks := append([]task(nil), s.tasks...)
    s.mu.Unlock()

    s.logger.Log("starting scheduler with %d tasks", len(tasks))
    g, gctx := errgroup.WithContext(ctx)
    for _, t := range tasks {
        t := t
        g.Go(func() error {
            if err := t.entry(gctx); err != nil {
                return fmt.Errorf("task %q: %w", t.name, err)
            }
            return nil
        })
    }
    return g.Wait()
}

// idleInterval is how long idle sleeps between wakeups.
const idleInterval = time.Second

// idle never returns.  It is where main ends up should the scheduler ever
// hand control back; there is nothing to exit to on the board.  A plain
// select{} is not used since the runtime aborts it as a deadlock when no
// other goroutine is left.
func idle() {
    for {
        time.Sleep(idleInterval)
    }
}
