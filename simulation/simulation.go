// Package simulation drives a Game of Life grid generation by generation,
// rendering each frame and pacing the loop.
package simulation

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Reasons reported by StopReason
const (
	StopCancelled      = "cancelled"
	StopMaxGenerations = "maximum generations reached"
	StopExtinction     = "extinction"
	StopStagnation     = "stagnation detected"
)

// Renderer displays frames of the simulation
type Renderer interface {
	Clear() error
	Display(g *model.Grid) error
}

// Option configures a Simulation
type Option func(*Simulation)

// WithReseed sets the function producing a fresh grid when AutoRestart is enabled
func WithReseed(reseed func() (*model.Grid, error)) Option {
	return func(s *Simulation) { s.reseed = reseed }
}

// WithWorkers advances generations in parallel with the given number of workers.
// workers <= 0 uses one worker per CPU.
func WithWorkers(workers int) Option {
	return func(s *Simulation) {
		s.parallel = true
		s.workers = workers
	}
}

// Simulation owns the current grid and everything needed to advance and show it
type Simulation struct {
	config   utils.Config
	grid     *model.Grid
	renderer Renderer
	reseed   func() (*model.Grid, error)
	parallel bool
	workers  int

	stats         *utils.Stats
	history       history
	generation    int
	stagnantCount int
	stopReason    string
}

// New creates a simulation starting from the initial grid
func New(config utils.Config, initial *model.Grid, renderer Renderer, opts ...Option) *Simulation {
	s := &Simulation{
		config:   config,
		grid:     initial,
		renderer: renderer,
		parallel: config.UseParallel,
		stats:    utils.NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history.record(initial.Hash())
	return s
}

// Grid returns the current generation
func (s *Simulation) Grid() *model.Grid { return s.grid }

// Generation returns the number of generations advanced so far
func (s *Simulation) Generation() int { return s.generation }

// Stats returns the performance stats
func (s *Simulation) Stats() *utils.Stats { return s.stats }

// StopReason returns why the last Run returned
func (s *Simulation) StopReason() string { return s.stopReason }

// Step advances the simulation by one generation and returns the new grid
func (s *Simulation) Step() *model.Grid {
	start := time.Now()

	if s.parallel {
		s.grid = s.grid.NextGenerationParallel(s.workers)
	} else {
		s.grid = s.grid.NextGeneration()
	}
	s.generation++

	if s.history.record(s.grid.Hash()) {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	s.stats.Update(s.generation, s.grid.CountLivingCells(), time.Since(start))
	return s.grid
}

// Run renders the current grid, advances it and waits for the frame rate,
// until ctx is cancelled or a stop condition is met. Cancellation is not an error.
func (s *Simulation) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			s.stopReason = StopCancelled
			return nil
		}

		if err := s.renderer.Clear(); err != nil {
			return errors.Wrapf(err, "[Run] generation %d", s.generation)
		}
		if err := s.renderer.Display(s.grid); err != nil {
			return errors.Wrapf(err, "[Run] generation %d", s.generation)
		}

		if s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations {
			s.stopReason = StopMaxGenerations
			return nil
		}

		if reason := s.checkRestartConditions(); reason != "" {
			if !s.config.AutoRestart || s.reseed == nil {
				s.stopReason = reason
				return nil
			}
			if err := s.restart(); err != nil {
				return errors.Wrapf(err, "[Run] restart after %s", reason)
			}
		} else {
			s.Step()
		}

		if !sleep(ctx, s.config.FrameRate) {
			s.stopReason = StopCancelled
			return nil
		}
	}
}

// checkRestartConditions returns a stop reason, or "" to keep going
func (s *Simulation) checkRestartConditions() string {
	if s.grid.CountLivingCells() == 0 {
		return StopExtinction
	}
	if s.config.StagnationThreshold > 0 && s.stagnantCount >= s.config.StagnationThreshold {
		return StopStagnation
	}
	return ""
}

func (s *Simulation) restart() error {
	grid, err := s.reseed()
	if err != nil {
		return err
	}
	s.grid = grid.WithBoundary(s.grid.Boundary())
	s.stagnantCount = 0
	s.history.reset()
	s.history.record(s.grid.Hash())
	s.stats.Restarts++
	return nil
}

// sleep waits for d and reports false if ctx was cancelled first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
