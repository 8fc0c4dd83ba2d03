// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidInput is the class of every argument error of this package.
// Check with errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("flow: invalid input")

// ErrSourceNotFound is returned when the source index is out of range.
var ErrSourceNotFound = fmt.Errorf("flow: source node not found: %w", ErrInvalidInput)

// ErrSinkNotFound is returned when the sink index is out of range.
var ErrSinkNotFound = fmt.Errorf("flow: sink node not found: %w", ErrInvalidInput)

// ErrSameEndpoints is returned when source == sink.
var ErrSameEndpoints = fmt.Errorf("flow: source equals sink: %w", ErrInvalidInput)

// ErrNilGraph is returned for a nil topology.
var ErrNilGraph = fmt.Errorf("flow: topology is nil: %w", ErrInvalidInput)

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation, checked between augmentations (default Background).
//   - Verbose: if true, logs each augmentation at debug level to Logger.
//   - Logger: destination for Verbose output (zero value discards).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations
//     (0 means only when a blocking flow is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	Verbose              bool
	Logger               zerolog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a background context and no logging.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Logger: zerolog.Nop()}
}

// normalize fills defaults for unset fields.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
