// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/topology"
)

// Source is the node every sink-based analytic starts from.
const Source = 0

// Runner executes the trials of one Config. It is immutable after
// NewRunner and may Run several times; each Run yields identical records.
type Runner struct {
	cfg      Config
	opts     runnerOptions
	snapshot topology.Snapshot // fixed mode only
	sink     int               // fixed mode only

	trial func(ctx context.Context, t int) outcome
}

// NewRunner validates cfg and, in fixed mode, builds the topology (or takes
// cfg.Topology) and picks the sink from the construction stream.
//
// Errors: ErrInvalidConfig (wrapping topology.ErrInvalidParameters) for a
// config that cannot run, including generator parameter errors. Nothing is
// retried with different parameters.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg, opts: defaultRunnerOptions()}
	r.trial = r.runTrial
	for _, opt := range opts {
		opt(&r.opts)
	}
	if cfg.Randomize {
		return r, nil
	}

	rng := streamRNG(cfg.Seed, constructionStream)
	m := cfg.Topology
	if m == nil {
		var err error
		m, err = builder.Generate(cfg.Policy, cfg.Params,
			builder.WithRand(rng), builder.WithMaxWeight(cfg.MaxWeight))
		if err != nil {
			return nil, fmt.Errorf("simulation: NewRunner: %w: %w", ErrInvalidConfig, err)
		}
	}
	r.snapshot = topology.NewSnapshot(m)
	r.sink = drawSink(rng, m.Len())

	return r, nil
}

// Config returns the normalized configuration.
func (r *Runner) Config() Config { return r.cfg }

// Snapshot returns the fixed-mode topology (zero Snapshot in randomized mode).
func (r *Runner) Snapshot() topology.Snapshot { return r.snapshot }

// Sink returns the fixed-mode sink (0 in randomized mode, where each trial
// draws its own).
func (r *Runner) Sink() int { return r.sink }

// Run executes every trial on a pool of cfg.Workers goroutines and returns
// the records in trial order.
//
// Cancellation: once ctx is done no further trial is started, trials already
// running finish, and the contiguous prefix of records is returned together
// with ctx.Err() and Result.Cancelled set.
//
// Trial errors: the run aborts. The result keeps the records before the
// lowest failing trial index, and that trial's error is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	res := &Result{RunID: uuid.New(), Config: r.cfg}
	if !r.cfg.Randomize {
		res.Snapshots = []topology.Snapshot{r.snapshot}
	}
	log := r.opts.logger.With().Str("run_id", res.RunID.String()).Logger()
	log.Info().
		Int("trials", r.cfg.Trials).
		Str("policy", r.cfg.Policy.String()).
		Str("mode", r.cfg.Mode().String()).
		Str("analytics", r.cfg.Analytics.String()).
		Int("workers", r.cfg.Workers).
		Int64("seed", r.cfg.Seed).
		Msg("run started")

	for _, obs := range r.opts.observers {
		obs.RunStarted(r.cfg)
	}
	err := r.execute(ctx, res, log)
	if err == nil && ctx.Err() != nil && len(res.Records) < r.cfg.Trials {
		err = ctx.Err()
	}
	res.Cancelled = ctx.Err() != nil && len(res.Records) < r.cfg.Trials

	elapsed := time.Since(start)
	switch {
	case res.Cancelled && err == ctx.Err():
		log.Warn().Int("completed", len(res.Records)).Dur("elapsed", elapsed).Msg("run cancelled")
	case err != nil:
		log.Error().Err(err).Int("completed", len(res.Records)).Msg("run aborted")
	default:
		log.Info().Int("completed", len(res.Records)).Dur("elapsed", elapsed).Msg("run finished")
	}
	for _, obs := range r.opts.observers {
		obs.RunDone(res, elapsed, err)
	}

	return res, err
}

// outcome is what a worker hands to the collector.
type outcome struct {
	rec     TrialRecord
	snap    topology.Snapshot
	hasSnap bool
	elapsed time.Duration
	err     error
}

// execute fans trials out to the workers and collects them on the calling
// goroutine, which is the only writer of res.
func (r *Runner) execute(ctx context.Context, res *Result, log zerolog.Logger) error {
	workers := min(r.cfg.Workers, r.cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	out := make(chan outcome, workers)

	// 1) Dispatcher: hands out trial indices in order until done.
	g.Go(func() error {
		defer close(jobs)
		for t := 0; t < r.cfg.Trials; t++ {
			select {
			case <-gctx.Done():
				return nil
			case jobs <- t:
			}
		}
		return nil
	})

	// 2) Workers: every dispatched trial runs to completion.
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for t := range jobs {
				o := r.trial(ctx, t)
				out <- o
				if o.err != nil {
					return o.err
				}
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(out)
	}()

	// 3) Collector: appends the contiguous prefix in trial order.
	var (
		pending  = make(map[int]outcome)
		next     int
		firstErr error
		errAt    = -1
	)
	for o := range out {
		if o.err != nil {
			if errAt < 0 || o.rec.Trial < errAt {
				errAt, firstErr = o.rec.Trial, o.err
			}
			continue
		}
		pending[o.rec.Trial] = o
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			r.appendOutcome(res, p, log)
			next++
		}
	}

	return firstErr
}

// appendOutcome records one finished trial.
func (r *Runner) appendOutcome(res *Result, o outcome, log zerolog.Logger) {
	res.Records = append(res.Records, o.rec)
	if o.hasSnap {
		res.Snapshots = append(res.Snapshots, o.snap)
	}
	log.Debug().
		Int("trial", o.rec.Trial).
		Float64("p", o.rec.FailureProbability).
		Int("nodes", o.rec.NodeCount).
		Int("sink", o.rec.Sink).
		Int("removed", o.rec.EdgesRemoved).
		Int("components", o.rec.ComponentCount).
		Int64("max_flow", o.rec.MaxFlow).
		Dur("elapsed", o.elapsed).
		Msg("trial done")
	for _, obs := range r.opts.observers {
		obs.TrialDone(o.rec, o.elapsed)
	}
}

// Run is a convenience wrapper: NewRunner followed by Runner.Run, returning
// only the records.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]TrialRecord, error) {
	r, err := NewRunner(cfg, opts...)
	if err != nil {
		return nil, err
	}
	res, err := r.Run(ctx)
	return res.Records, err
}

// normalize fills zero-valued defaults.
func (c *Config) normalize() {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxWeight == 0 {
		c.MaxWeight = topology.DefaultMaxWeight
	}
	if c.Sampler == nil {
		c.Sampler = failure.NewSampler()
	}
}

// validate checks everything that can be known before the first trial.
func (c Config) validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d < 1", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Workers)
	case c.MaxWeight < builder.MinEdgeWeight:
		return fmt.Errorf("%w: max weight %d < %d", ErrInvalidConfig, c.MaxWeight, builder.MinEdgeWeight)
	case c.Analytics&^AllAnalytics != 0:
		return fmt.Errorf("%w: analytics %#x", ErrInvalidConfig, uint8(c.Analytics))
	}
	switch c.Policy {
	case builder.PolicyFullyConnected, builder.PolicyConstant, builder.PolicyClustered:
	default:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, builder.ErrUnknownPolicy)
	}

	// Fewest nodes a trial may have.
	floor := builder.MinNodes
	if c.Analytics.NeedsSink() || c.Policy == builder.PolicyConstant {
		floor = 2
	}
	if !c.Randomize {
		nodes := c.Params.Nodes
		if c.Topology != nil {
			if err := c.Topology.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
			nodes = c.Topology.Len()
		}
		if nodes < floor {
			return fmt.Errorf("%w: nodes %d < %d", ErrInvalidConfig, nodes, floor)
		}
		return nil
	}

	if c.Policy == builder.PolicyClustered {
		if !c.ClusterBounds.valid(builder.MinClusters) || !c.ClusterSizeBounds.valid(1) {
			return fmt.Errorf("%w: cluster bounds %v × %v", ErrInvalidConfig, c.ClusterBounds, c.ClusterSizeBounds)
		}
		if c.ClusterBounds.Min*c.ClusterSizeBounds.Min < floor {
			return fmt.Errorf("%w: clustered topologies may have fewer than %d nodes", ErrInvalidConfig, floor)
		}
		return nil
	}
	if !c.NodeBounds.valid(floor) {
		return fmt.Errorf("%w: node bounds %v (min %d)", ErrInvalidConfig, c.NodeBounds, floor)
	}
	if c.Policy == builder.PolicyConstant && !c.DegreeBounds.valid(builder.MinDegree) {
		return fmt.Errorf("%w: degree bounds %v", ErrInvalidConfig, c.DegreeBounds)
	}
	return nil
}
