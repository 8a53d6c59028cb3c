package hits

import "gonum.org/v1/gonum/floats"

// result finalizes the solver vectors into a Result.
// With Normalize each vector is rescaled to sum to 1 unless it is all zero.
func (s *solver[K]) result() *Result[K] {
	if s.cfg.Normalize {
		normalizeL1(s.hub)
		normalizeL1(s.auth)
	}

	n := len(s.idx.keys)
	res := &Result[K]{
		Hubs:        make(map[K]float64, n),
		Authorities: make(map[K]float64, n),
		Converged:   s.converged,
		Iterations:  s.iterations,
	}
	for i, k := range s.idx.keys {
		res.Hubs[k] = s.hub[i]
		res.Authorities[k] = s.auth[i]
	}

	return res
}

// normalizeL1 scales the non-negative vector v to sum to 1.
// A zero vector is left untouched.
func normalizeL1(v []float64) {
	sum := floats.Sum(v)
	if sum == 0 {
		return
	}
	floats.Scale(1/sum, v)
}
