package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Step is one stage of a comparison. A step reads what earlier steps left
// in the Job and adds its own result to it.
type Step interface {
	// Do runs the step. A non-nil error stops the pipeline.
	Do(ctx context.Context, job *Job) error

	// Name identifies the step in logs and in Job.PerformedSteps.
	Name() string
}

// Pipeline runs its steps one after another.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps in order and stops at the first error, which is
// stored in job.Err and returned. Cancellation is checked between steps;
// a step that is already running is expected to honor ctx itself.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	logger := p.logger.With("job", job.ID)

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("pipeline cancelled", "step", step.Name(), "reason", err)
			job.Err = err
			return err
		}

		start := time.Now()
		err := step.Do(ctx, job)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("step failed", "step", step.Name(), "duration", elapsed, "error", err)
			job.Err = err
			return err
		}

		logger.Debug("step done", "step", step.Name(), "duration", elapsed)
		job.PerformedSteps = append(job.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name())
	}
	return names
}
