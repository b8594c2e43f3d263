// Package kmeans implements a weighted k-center quantizer: a seeding pass that
// repeatedly splits the costliest cluster at its worst served point, followed
// by Lloyd refinement that uses center-to-center distances to prune the
// nearest-center search.
package kmeans

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultCenters is the palette size used by the command line.
	DefaultCenters = 256

	// DefaultMaxIterations bounds refinement. Refinement always reaches a
	// fixed point eventually, but the number of iterations is not bounded
	// in advance.
	DefaultMaxIterations = 1000
)

var (
	// ErrNoGroups is returned when there is nothing to quantize.
	ErrNoGroups = errors.New("no data points to quantize")

	// ErrInvalidCenters is returned when fewer than one center is requested.
	ErrInvalidCenters = errors.New("center count must be at least 1")
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger        hclog.Logger
	maxIterations int
	workers       int
}

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxIterations caps refinement. Zero or less means no cap.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithWorkers sets how many clusters are reassigned concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Engine quantizes groups of type I into representatives of type O.
type Engine[I comparable, O any] struct {
	space         Space[I, O]
	logger        hclog.Logger
	maxIterations int
	workers       int
}

// New creates an Engine over space.
func New[I comparable, O any](space Space[I, O], opts ...Option) *Engine[I, O] {
	o := options{
		logger:        hclog.NewNullLogger(),
		maxIterations: DefaultMaxIterations,
		workers:       1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[I, O]{
		space:         space,
		logger:        o.logger,
		maxIterations: o.maxIterations,
		workers:       max(o.workers, 1),
	}
}

// Result is the outcome of a run: one representative per cluster and the
// groups assigned to it. Every group appears in exactly one cluster.
type Result[I comparable, O any] struct {
	Centers []O
	Members [][]Group[I]

	// Iterations is the number of refinement iterations performed.
	Iterations int

	// Converged is false only when the iteration cap was reached.
	Converged bool
}

// Len returns the number of clusters.
func (r *Result[I, O]) Len() int {
	return len(r.Centers)
}

// Each calls fn for every group with the representative it was assigned to.
func (r *Result[I, O]) Each(fn func(group Group[I], center O)) {
	for i, center := range r.Centers {
		for _, g := range r.Members[i] {
			fn(g, center)
		}
	}
}

// Run quantizes groups to k representatives. When there are no more groups
// than k, every group becomes its own representative and no refinement is
// needed.
func (e *Engine[I, O]) Run(groups []Group[I], k int) (*Result[I, O], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCenters, k)
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	if len(groups) <= k {
		e.logger.Debug("fewer groups than centers, quantizing each group on its own",
			"groups", len(groups), "centers", k)
		return e.identity(groups), nil
	}

	centers, assignment := e.seed(groups, k)
	partition := partitionFrom(assignment, k)
	e.logger.Debug("seeded centers", "groups", len(groups), "centers", len(centers))

	converged := false
	iterations := 0
	for iterations < e.maxIterations || e.maxIterations <= 0 {
		iterations++

		if empty := partition.EmptyClusters(); empty > 0 {
			e.logger.Debug("empty clusters found", "iteration", iterations, "empty", empty)
		}

		if err := e.reposition(groups, centers, partition); err != nil {
			return nil, err
		}
		next := e.assign(groups, centers, partition)

		stable := next.Equal(partition)
		partition = next
		e.logger.Trace("refinement iteration", "iteration", iterations, "stable", stable)
		if stable {
			converged = true
			break
		}
	}

	if converged {
		e.logger.Debug("refinement converged", "iterations", iterations)
	} else {
		e.logger.Warn("refinement stopped at iteration limit", "iterations", iterations)
	}

	return &Result[I, O]{
		Centers:    centers,
		Members:    e.members(groups, partition),
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// Cost returns the weighted sum of distances from every group to its
// representative.
func (e *Engine[I, O]) Cost(r *Result[I, O]) float64 {
	var cost float64
	r.Each(func(g Group[I], center O) {
		cost += e.space.Distance(g.Value, center) * float64(g.Count)
	})
	return cost
}

func (e *Engine[I, O]) identity(groups []Group[I]) *Result[I, O] {
	centers := make([]O, len(groups))
	members := make([][]Group[I], len(groups))
	for i, g := range groups {
		centers[i] = e.space.AsOutput(g.Value)
		members[i] = []Group[I]{g}
	}
	return &Result[I, O]{
		Centers:   centers,
		Members:   members,
		Converged: true,
	}
}

func (e *Engine[I, O]) members(groups []Group[I], partition *Partition) [][]Group[I] {
	members := make([][]Group[I], partition.Len())
	for i := range members {
		indices := partition.Members(i)
		members[i] = make([]Group[I], len(indices))
		for j, g := range indices {
			members[i][j] = groups[g]
		}
	}
	return members
}
