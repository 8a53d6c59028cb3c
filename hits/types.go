// Package hits defines configuration options, sentinel errors and result
// types for the HITS hub/authority solver.
package hits

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by Run, Assign and AssignGraph.
var (
	// ErrInvalidArgument indicates that the supplied graph does not satisfy the
	// capability contract: nil, inconsistent node enumeration, or adjacency
	// referring to unknown nodes.
	ErrInvalidArgument = errors.New("hits: invalid argument, expected a usable graph")

	// ErrUnsupportedGraphType indicates a multigraph was supplied. Parallel
	// edges would need weight aggregation, which HITS here does not define.
	ErrUnsupportedGraphType = errors.New("hits: multigraph is not supported")

	// ErrInvalidOption indicates an out-of-range option value.
	ErrInvalidOption = errors.New("hits: invalid option")
)

// Defaults applied by DefaultOptions.
const (
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 100
	DefaultHubAttr       = "hub"
	DefaultAuthorityAttr = "authority"
)

// Options configures the HITS solver.
//
//   - Tolerance: iteration stops once the L1 change of the hub vector drops
//     below VertexCount·Tolerance. Must be > 0.
//   - MaxIterations: upper bound on power-iteration rounds. Must be > 0.
//   - Normalize: rescale the final vectors to sum to 1. When false they keep
//     the per-round L2 normalization.
//   - Workers: goroutines used for the per-node sums; 1 means sequential.
//   - HubAttr, AuthorityAttr: attribute keys written by Assign.
//   - Logger: destination for run diagnostics.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Normalize     bool
	Workers       int
	HubAttr       string
	AuthorityAttr string
	Logger        *slog.Logger
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
// Tolerance 1e-8, MaxIterations 100, Normalize true, Workers 1,
// attributes "hub"/"authority", and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Normalize:     true,
		Workers:       1,
		HubAttr:       DefaultHubAttr,
		AuthorityAttr: DefaultAuthorityAttr,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps the number of power-iteration rounds.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithNormalize toggles the final L1 rescaling (default true).
func WithNormalize(normalize bool) Option {
	return func(o *Options) { o.Normalize = normalize }
}

// WithWorkers splits the per-node summations across n goroutines.
// Results are bit-identical to the sequential run.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithAttributes sets the attribute keys Assign writes hub and authority
// scores under.
func WithAttributes(hub, authority string) Option {
	return func(o *Options) {
		o.HubAttr = hub
		o.AuthorityAttr = authority
	}
}

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// validate rejects option values the solver cannot work with.
func (o Options) validate() error {
	switch {
	case math.IsNaN(o.Tolerance) || o.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance must be > 0, got %v", ErrInvalidOption, o.Tolerance)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations must be > 0, got %d", ErrInvalidOption, o.MaxIterations)
	case o.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidOption, o.Workers)
	case o.HubAttr == "" || o.AuthorityAttr == "":
		return fmt.Errorf("%w: attribute names must be non-empty", ErrInvalidOption)
	case o.HubAttr == o.AuthorityAttr:
		return fmt.Errorf("%w: hub and authority attributes must differ, both %q", ErrInvalidOption, o.HubAttr)
	}

	return nil
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg, cfg.validate()
}

// HubAuthority pairs the two scores of a single node.
type HubAuthority struct {
	Hub       float64
	Authority float64
}

// Result is the outcome of one solver run.
//
// Hubs and Authorities hold exactly one entry per graph node. With the
// default Normalize=true each sums to 1, unless the graph has no edges, in
// which case every score is 0.
type Result[K comparable] struct {
	Hubs        map[K]float64
	Authorities map[K]float64

	// Converged is false when MaxIterations was reached first; the scores
	// are still the last computed ones.
	Converged bool

	// Iterations is the number of power-iteration rounds performed.
	Iterations int
}

// Scores returns the per-node hub/authority pairs.
func (r *Result[K]) Scores() map[K]HubAuthority {
	out := make(map[K]HubAuthority, len(r.Hubs))
	for k, h := range r.Hubs {
		out[k] = HubAuthority{Hub: h, Authority: r.Authorities[k]}
	}

	return out
}
