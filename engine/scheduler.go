package engine

import (
	"fmt"
	"log/slog"

	"github.com/PeteSumners/cornerstone/config"
)

// Scheduler drives the fixed-timestep update loop and the render callback.
// Updates run at a constant dt decoupled from the render framerate, with a
// bounded catch-up when frames run long.
//
// Failure policy is fail-stop: a panic escaping either callback is caught
// once, logged, and all further ticks and renders are disabled. A stale
// frame is preferred over ticking on possibly-corrupted simulation state.
type Scheduler struct {
	logger     *slog.Logger
	dt         float64
	maxCatchUp int

	update func(dt float64)
	render func(dt float64)

	accumulator float64
	clock       float64
	deferred    []deferredCall
	err         error
}

type deferredCall struct {
	due float64
	fn  func()
}

// NewScheduler creates a scheduler at the configured tick rate.
func NewScheduler(update, render func(dt float64), logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger:     logger,
		dt:         config.TickDT,
		maxCatchUp: config.MaxCatchUpTicks,
		update:     update,
		render:     render,
	}
}

// Advance accumulates elapsed wall time and runs the update ticks that are
// due. The accumulator is capped at maxCatchUp ticks, so time beyond the
// cap is dropped rather than replayed.
func (s *Scheduler) Advance(elapsed float64) {
	if s.err != nil {
		return
	}
	s.accumulator += elapsed
	if limit := float64(s.maxCatchUp) * s.dt; s.accumulator > limit {
		s.accumulator = limit
	}
	for s.accumulator >= s.dt {
		s.accumulator -= s.dt
		s.runTick()
		if s.err != nil {
			return
		}
	}
}

// Render invokes the render callback unless the scheduler has halted.
func (s *Scheduler) Render(dt float64) {
	if s.err != nil {
		return
	}
	defer s.recoverHalt("render")
	s.render(dt)
}

// Defer schedules fn to run at the start of the first tick at or after
// delay seconds of simulation time. Deferred calls are fire-and-forget:
// they are not awaited and cannot be cancelled once scheduled.
func (s *Scheduler) Defer(delay float64, fn func()) {
	s.deferred = append(s.deferred, deferredCall{due: s.clock + delay, fn: fn})
}

// Clock returns the simulation time in seconds.
func (s *Scheduler) Clock() float64 { return s.clock }

// Halted reports whether a callback failure has stopped the scheduler.
func (s *Scheduler) Halted() bool { return s.err != nil }

// Err returns the halting failure, or nil while running.
func (s *Scheduler) Err() error { return s.err }

func (s *Scheduler) runTick() {
	defer s.recoverHalt("update")
	s.clock += s.dt
	s.runDeferred()
	s.update(s.dt)
}

func (s *Scheduler) runDeferred() {
	var due []func()
	rest := s.deferred[:0]
	for _, d := range s.deferred {
		if d.due <= s.clock {
			due = append(due, d.fn)
		} else {
			rest = append(rest, d)
		}
	}
	s.deferred = rest
	for _, fn := range due {
		fn()
	}
}

func (s *Scheduler) recoverHalt(phase string) {
	if r := recover(); r != nil {
		s.err = fmt.Errorf("scheduler halted during %s: %v", phase, r)
		s.logger.Error("simulation halted", "phase", phase, "panic", r)
	}
}
