package hits

import "fmt"

// Graph is the capability set HITS needs from a directed graph.
//
// Vertices must return every node exactly once, in an order that stays the
// same for the duration of a call. Successors(u) lists each v with an edge
// u→v; Predecessors(v) lists each u with an edge u→v. Multigraph reports
// whether parallel edges are permitted; such graphs are rejected.
//
// *core.Graph satisfies Graph[string]; converters.FromGonum adapts gonum graphs.
type Graph[K comparable] interface {
	VertexCount() int
	Vertices() []K
	Successors(u K) []K
	Predecessors(v K) []K
	Multigraph() bool
}

// AttributeSetter writes a named attribute onto a node.
type AttributeSetter[K comparable] interface {
	SetVertexAttr(node K, key string, value any) error
}

// MutableGraph is a Graph that also owns a node attribute store.
type MutableGraph[K comparable] interface {
	Graph[K]
	AttributeSetter[K]
}

// nilable lets pointer-backed graphs report a typed nil hidden in an interface.
type nilable interface {
	IsNil() bool
}

// index is an immutable snapshot of the graph keyed by dense node positions.
// in[v] lists the positions u with u→v, out[u] the positions v with u→v,
// both in the order the graph enumerated them.
type index[K comparable] struct {
	keys  []K
	in    [][]int
	out   [][]int
	edges int
}

// compile validates g once and snapshots its adjacency.
//
// Validation order:
//  1. nil graph                              → ErrInvalidArgument
//  2. Multigraph()                           → ErrUnsupportedGraphType
//  3. Vertices() inconsistent with count     → ErrInvalidArgument
//  4. neighbour not in Vertices(), repeated
//     neighbour, or out/in edge totals differ → ErrInvalidArgument
//
// Complexity: O(V + E).
func compile[K comparable](g Graph[K]) (*index[K], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if n, ok := g.(nilable); ok && n.IsNil() {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if g.Multigraph() {
		return nil, ErrUnsupportedGraphType
	}

	keys := g.Vertices()
	if count := g.VertexCount(); count != len(keys) {
		return nil, fmt.Errorf("%w: VertexCount()=%d but Vertices() returned %d", ErrInvalidArgument, count, len(keys))
	}

	pos := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, dup := pos[k]; dup {
			return nil, fmt.Errorf("%w: node %v enumerated twice", ErrInvalidArgument, k)
		}
		pos[k] = i
	}

	idx := &index[K]{
		keys: keys,
		in:   make([][]int, len(keys)),
		out:  make([][]int, len(keys)),
	}

	var inEdges int
	for i, k := range keys {
		out, err := resolve(pos, k, g.Successors(k), "successor")
		if err != nil {
			return nil, err
		}
		in, err := resolve(pos, k, g.Predecessors(k), "predecessor")
		if err != nil {
			return nil, err
		}
		idx.out[i] = out
		idx.in[i] = in
		idx.edges += len(out)
		inEdges += len(in)
	}
	if idx.edges != inEdges {
		return nil, fmt.Errorf("%w: %d outgoing vs %d incoming edges", ErrInvalidArgument, idx.edges, inEdges)
	}

	return idx, nil
}

// resolve maps neighbour keys of node k to positions.
func resolve[K comparable](pos map[K]int, k K, nbrs []K, kind string) ([]int, error) {
	if len(nbrs) == 0 {
		return nil, nil
	}
	out := make([]int, len(nbrs))
	seen := make(map[int]struct{}, len(nbrs))
	for i, nb := range nbrs {
		p, ok := pos[nb]
		if !ok {
			return nil, fmt.Errorf("%w: %s %v of node %v is not a graph node", ErrInvalidArgument, kind, nb, k)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s %v of node %v listed twice", ErrInvalidArgument, kind, nb, k)
		}
		seen[p] = struct{}{}
		out[i] = p
	}

	return out, nil
}
