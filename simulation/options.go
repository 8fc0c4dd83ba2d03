// SPDX-License-Identifier: MIT

package simulation

import (
	"time"

	"github.com/rs/zerolog"
)

// Observer receives run progress. All calls of one run come from the
// goroutine that called Runner.Run, TrialDone in trial order, so
// implementations need no locking on account of a single run.
type Observer interface {
	// RunStarted is called once before the first trial.
	RunStarted(cfg Config)
	// TrialDone is called once per appended record.
	TrialDone(rec TrialRecord, elapsed time.Duration)
	// RunDone is called once when the run ends, with its final error.
	RunDone(res *Result, elapsed time.Duration, err error)
}

// Option customizes a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	logger      zerolog.Logger
	observers   []Observer
	flowVerbose bool
}

func defaultRunnerOptions() runnerOptions {
	return runnerOptions{logger: zerolog.Nop()}
}

// WithLogger sets the run logger. Run start and finish go to Info, every
// trial to Debug, aborts to Error.
func WithLogger(l zerolog.Logger) Option {
	return func(o *runnerOptions) {
		o.logger = l
	}
}

// WithObserver registers an Observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("simulation: WithObserver(nil)")
	}
	return func(o *runnerOptions) {
		o.observers = append(o.observers, obs)
	}
}

// WithFlowVerbose logs every max-flow augmentation at Debug level.
func WithFlowVerbose() Option {
	return func(o *runnerOptions) {
		o.flowVerbose = true
	}
}
