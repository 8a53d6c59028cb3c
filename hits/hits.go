package hits

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// minParallelNodes is the vertex count below which WithWorkers is ignored;
// goroutine start-up dominates on smaller graphs.
const minParallelNodes = 64

// Run computes hub and authority scores for every node of g.
//
// Preconditions and validation (in order, before any iteration):
//  1. Options must be in range (ErrInvalidOption).
//  2. g must be non-nil (ErrInvalidArgument).
//  3. g must not be a multigraph (ErrUnsupportedGraphType).
//  4. g must enumerate its nodes and neighbours consistently (ErrInvalidArgument).
//
// Algorithm, starting from hub[u] = 1:
//
//	authority'[v] = Σ_{u→v} hub[u]
//	hub'[u]       = Σ_{u→v} authority'[v]
//	L2-normalize both (a zero vector stays zero)
//	delta         = Σ_u |hub'[u] − hub[u]|
//	stop once delta < V·Tolerance
//
// Reaching MaxIterations is not an error: Result.Converged is false and the
// last vectors are returned. Graphs without edges converge after the first
// round with all scores 0.
func Run[K comparable](g Graph[K], opts ...Option) (*Result[K], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	idx, err := compile(g)
	if err != nil {
		return nil, err
	}

	s := newSolver(idx, cfg)
	s.iterate()
	res := s.result()

	cfg.Logger.Debug("hits: run finished",
		"vertices", len(idx.keys),
		"edges", idx.edges,
		"iterations", res.Iterations,
		"converged", res.Converged,
		"delta", s.delta,
	)
	if !res.Converged {
		cfg.Logger.Warn("hits: iteration limit reached before convergence",
			"max_iterations", cfg.MaxIterations,
			"delta", s.delta,
			"threshold", float64(len(idx.keys))*cfg.Tolerance,
		)
	}

	return res, nil
}

// solver holds the per-call iteration state. Each vector has a current and a
// next buffer; a round reads only current buffers and writes only next ones,
// then the pairs are swapped.
type solver[K comparable] struct {
	idx *index[K]
	cfg Options

	hub, hubNext   []float64
	auth, authNext []float64

	iterations int
	delta      float64
	converged  bool
}

func newSolver[K comparable](idx *index[K], cfg Options) *solver[K] {
	n := len(idx.keys)
	s := &solver[K]{
		idx:      idx,
		cfg:      cfg,
		hub:      make([]float64, n),
		hubNext:  make([]float64, n),
		auth:     make([]float64, n),
		authNext: make([]float64, n),
	}
	for i := range s.hub {
		s.hub[i] = 1
	}

	return s
}

// iterate runs power-iteration rounds until convergence or MaxIterations.
func (s *solver[K]) iterate() {
	n := len(s.hub)
	if n == 0 {
		s.converged = true
		return
	}
	threshold := float64(n) * s.cfg.Tolerance

	for s.iterations < s.cfg.MaxIterations {
		s.accumulate(s.authNext, s.idx.in, s.hub)
		s.accumulate(s.hubNext, s.idx.out, s.authNext)

		normalizeL2(s.authNext)
		hubMass := normalizeL2(s.hubNext)

		s.delta = floats.Distance(s.hubNext, s.hub, 1)

		s.hub, s.hubNext = s.hubNext, s.hub
		s.auth, s.authNext = s.authNext, s.auth
		s.iterations++

		// A zero hub vector is a fixed point: every later round stays zero.
		if hubMass == 0 || s.delta < threshold {
			s.converged = true
			return
		}
	}
}

// accumulate sets dst[i] = Σ src[j] for j in adj[i]. With more than one
// worker the node range is split into contiguous chunks; every dst[i] is
// still summed by a single goroutine in adjacency order.
func (s *solver[K]) accumulate(dst []float64, adj [][]int, src []float64) {
	n := len(dst)
	w := s.cfg.Workers
	if w <= 1 || n < minParallelNodes {
		sumRange(dst, adj, src, 0, n)
		return
	}

	chunk := (n + w - 1) / w
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		eg.Go(func() error {
			sumRange(dst, adj, src, lo, hi)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
}

func sumRange(dst []float64, adj [][]int, src []float64, lo, hi int) {
	var (
		i, j int
		sum  float64
	)
	for i = lo; i < hi; i++ {
		sum = 0
		for _, j = range adj[i] {
			sum += src[j]
		}
		dst[i] = sum
	}
}

// normalizeL2 scales v to unit Euclidean norm and returns the norm before scaling.
// A zero vector is left untouched.
func normalizeL2(v []float64) float64 {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return 0
	}
	floats.Scale(1/norm, v)

	return norm
}
