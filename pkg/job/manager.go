package job

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Entry describes a registered task and its firing times.
type Entry struct {
	Next     time.Time
	Prev     time.Time
	Name     string
	Schedule string
}

type registeredTask struct {
	job      cron.Job
	name     string
	schedule string
	id       cron.EntryID
}

// Manager fires scheduled tasks using robfig/cron.
type Manager struct {
	cron       *cron.Cron
	logger     *slog.Logger
	tasks      []registeredTask
	runOnStart bool

	mu      sync.Mutex
	started bool
	runCtx  context.Context
	cancel  context.CancelFunc
	initial sync.WaitGroup
}

// NewManager creates a job manager with the given options.
// Schedules are validated immediately; call Start() to begin firing.
func NewManager(opts ...Option) (*Manager, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.schedules) == 0 {
		return nil, ErrNoTasks
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clog := cronLogger{logger: cfg.logger}
	c := cron.New(
		cron.WithParser(scheduleParser),
		cron.WithLocation(cfg.location),
		cron.WithLogger(clog),
	)

	m := &Manager{
		cron:       c,
		logger:     cfg.logger,
		runOnStart: cfg.runOnStart,
		runCtx:     context.Background(),
	}

	// No SkipIfStillRunning/DelayIfStillRunning: overlapping firings run independently.
	chain := cron.NewChain(cron.Recover(clog))
	seen := make(map[string]bool, len(cfg.schedules))

	for _, sched := range cfg.schedules {
		if sched.name == "" {
			return nil, ErrTaskNameRequired
		}
		if seen[sched.name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, sched.name)
		}
		seen[sched.name] = true

		schedule, err := ParseSchedule(sched.schedule)
		if err != nil {
			return nil, fmt.Errorf("job: task %s: %w", sched.name, err)
		}

		j := chain.Then(cron.FuncJob(func() {
			m.execute(m.context(), sched)
		}))
		id := c.Schedule(schedule, j)

		m.tasks = append(m.tasks, registeredTask{
			job:      j,
			name:     sched.name,
			schedule: sched.schedule,
			id:       id,
		})
	}

	return m, nil
}

// Start begins firing tasks on their schedules.
// ctx values are visible to task handlers; its cancellation is not, use Stop instead.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrAlreadyStarted
	}

	m.runCtx, m.cancel = context.WithCancel(context.WithoutCancel(ctx))
	m.cron.Start()
	m.started = true

	if m.runOnStart {
		for _, t := range m.tasks {
			m.initial.Add(1)
			go func(j cron.Job) {
				defer m.initial.Done()
				j.Run()
			}(t.job)
		}
	}

	m.logger.Info("job manager started",
		slog.Int("tasks", len(m.tasks)),
		slog.Bool("run_on_start", m.runOnStart),
	)

	return nil
}

// Stop stops scheduling new firings and waits for running ones to return.
// If ctx expires first, running handlers are cancelled and ctx.Err() is returned.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return ErrNotStarted
	}
	m.started = false
	cancel := m.cancel
	m.mu.Unlock()

	defer cancel()

	cronDone := m.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		m.initial.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		m.logger.Warn("job manager stop timed out, cancelling running tasks")
		return fmt.Errorf("job: stop: %w", ctx.Err())
	}

	m.logger.Info("job manager stopped")
	return nil
}

// Entries returns the registered tasks with their previous and next firing times.
func (m *Manager) Entries() []Entry {
	entries := make([]Entry, 0, len(m.tasks))
	for _, t := range m.tasks {
		e := m.cron.Entry(t.id)
		entries = append(entries, Entry{
			Name:     t.name,
			Schedule: t.schedule,
			Next:     e.Next,
			Prev:     e.Prev,
		})
	}
	return entries
}

func (m *Manager) context() context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCtx
}

func (m *Manager) execute(ctx context.Context, sched scheduleConfig) {
	start := time.Now()

	m.logger.DebugContext(ctx, "executing task", slog.String("task", sched.name))

	if err := sched.handler(ctx); err != nil {
		m.logger.ErrorContext(ctx, "task failed",
			slog.String("task", sched.name),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return
	}

	m.logger.DebugContext(ctx, "task completed",
		slog.String("task", sched.name),
		slog.Duration("duration", time.Since(start)),
	)
}

// Shutdown returns a shutdown function for the job manager.
func (m *Manager) Shutdown() func(context.Context) error {
	return func(ctx context.Context) error {
		return m.Stop(ctx)
	}
}

// StartFunc returns a startup function for the job manager.
func (m *Manager) StartFunc() func(context.Context) error {
	return func(ctx context.Context) error {
		return m.Start(ctx)
	}
}
