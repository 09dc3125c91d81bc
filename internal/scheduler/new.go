package scheduler

import (
	"sync"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/clock"
	pkgLog "daynix/pkg/log"
)

const (
	defaultTickInterval = time.Minute
	defaultUndoDelay    = 5 * time.Second
)

// Config is the dependency bag passed to New().
type Config struct {
	TickInterval time.Duration
	UndoDelay    time.Duration

	// OnRefresh fires after a tick that spawned recurring instances or moved
	// tasks, so collaborators can reload their view.
	OnRefresh func()

	// OnReminder fires when a scheduled task's start time arrives.
	OnReminder func(task model.Task)
}

type implScheduler struct {
	l     pkgLog.Logger
	uc    planner.UseCase
	clock clock.Clock

	tickInterval time.Duration
	undoDelay    time.Duration
	onRefresh    func()
	onReminder   func(model.Task)

	mu          sync.Mutex
	completions map[string]*time.Timer
	reminders   map[string]*time.Timer
	stopCh      chan struct{}
	stopOnce    sync.Once
}

var _ Scheduler = (*implScheduler)(nil)

// New creates a new Scheduler instance.
func New(l pkgLog.Logger, uc planner.UseCase, clk clock.Clock, cfg Config) Scheduler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.UndoDelay <= 0 {
		cfg.UndoDelay = defaultUndoDelay
	}
	return &implScheduler{
		l:            l,
		uc:           uc,
		clock:        clk,
		tickInterval: cfg.TickInterval,
		undoDelay:    cfg.UndoDelay,
		onRefresh:    cfg.OnRefresh,
		onReminder:   cfg.OnReminder,
		completions:  make(map[string]*time.Timer),
		reminders:    make(map[string]*time.Timer),
		stopCh:       make(chan struct{}),
	}
}
