// Package harness abstracts the host engine's one-shot initialization
// hook. A Scenario's Start is the analogue of an engine calling into a
// script once when its object enters the scene; the Runner is the
// external harness that performs that call exactly once per scenario.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Scenario is example code waiting for its one-shot start call.
type Scenario interface {
	Name() string
	Start(ctx context.Context) error
}

type funcScenario struct {
	name string
	fn   func(context.Context) error
}

func (s funcScenario) Name() string                    { return s.name }
func (s funcScenario) Start(ctx context.Context) error { return s.fn(ctx) }

// NewScenario adapts a plain function into a Scenario.
func NewScenario(name string, fn func(context.Context) error) Scenario {
	return funcScenario{name: name, fn: fn}
}

// Runner invokes registered scenarios. Each scenario's Start runs at
// most once per Runner, even across repeated Run calls.
type Runner struct {
	mu        sync.Mutex
	scenarios []Scenario
	names     map[string]bool
	started   map[string]bool
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{
		names:   make(map[string]bool),
		started: make(map[string]bool),
	}
}

// Register adds a scenario. Names must be unique.
func (r *Runner) Register(s Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[s.Name()] {
		return fmt.Errorf("scenario %q already registered", s.Name())
	}
	r.names[s.Name()] = true
	r.scenarios = append(r.scenarios, s)
	return nil
}

// Names returns registered scenario names in registration order.
func (r *Runner) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.scenarios))
	for i, s := range r.scenarios {
		out[i] = s.Name()
	}
	return out
}

// Run starts every not-yet-started scenario sequentially, in
// registration order. The first failure stops the run.
func (r *Runner) Run(ctx context.Context) error {
	for _, s := range r.pending() {
		if err := r.startOne(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// RunParallel starts every not-yet-started scenario concurrently. Safe
// because records are immutable and each scenario owns its collections.
func (r *Runner) RunParallel(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range r.pending() {
		g.Go(func() error {
			return r.startOne(ctx, s)
		})
	}
	return g.Wait()
}

// RunOne starts a single scenario by name.
func (r *Runner) RunOne(ctx context.Context, name string) error {
	r.mu.Lock()
	var target Scenario
	for _, s := range r.scenarios {
		if s.Name() == name {
			target = s
			break
		}
	}
	r.mu.Unlock()

	if target == nil {
		return fmt.Errorf("unknown scenario %q", name)
	}
	return r.startOne(ctx, target)
}

func (r *Runner) pending() []Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Scenario
	for _, s := range r.scenarios {
		if !r.started[s.Name()] {
			out = append(out, s)
		}
	}
	return out
}

func (r *Runner) startOne(ctx context.Context, s Scenario) error {
	r.mu.Lock()
	if r.started[s.Name()] {
		r.mu.Unlock()
		return nil
	}
	r.started[s.Name()] = true
	r.mu.Unlock()

	begin := time.Now()
	slog.Debug("starting scenario", "scenario", s.Name())

	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name(), err)
	}

	slog.Info("scenario finished", "scenario", s.Name(), "duration", time.Since(begin))
	return nil
}
