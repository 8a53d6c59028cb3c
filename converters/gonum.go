package converters

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvlath-hits/hits"
)

// Gonum exposes a gonum graph.Directed as a hits.Graph[int64].
// Node IDs are enumerated in ascending order; neighbour lists are sorted too,
// so results do not depend on gonum's map iteration order.
type Gonum struct {
	g     graph.Directed
	multi bool
}

// FromGonum wraps g. Undirected (or nil) gonum graphs are rejected with
// hits.ErrInvalidArgument, since successor and predecessor sets are only
// defined for directed graphs. Values implementing graph.Multigraph report
// Multigraph() == true and are rejected later by hits.Run.
func FromGonum(g graph.Graph) (*Gonum, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: gonum graph is nil", hits.ErrInvalidArgument)
	}
	d, ok := g.(graph.Directed)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a directed gonum graph", hits.ErrInvalidArgument, g)
	}
	_, multi := g.(graph.Multigraph)

	return &Gonum{g: d, multi: multi}, nil
}

// IsNil reports whether the receiver is nil or a zero Gonum not built by FromGonum.
func (a *Gonum) IsNil() bool { return a == nil || a.g == nil }

// VertexCount returns the number of nodes.
func (a *Gonum) VertexCount() int {
	it := a.g.Nodes()
	if n := it.Len(); n >= 0 {
		return n
	}
	n := 0
	for it.Next() { // length unknown to the iterator
		n++
	}

	return n
}

// Vertices returns all node IDs, ascending.
func (a *Gonum) Vertices() []int64 {
	return sortedIDs(a.g.Nodes())
}

// Successors returns the IDs v with an edge u→v, ascending.
func (a *Gonum) Successors(u int64) []int64 {
	return sortedIDs(a.g.From(u))
}

// Predecessors returns the IDs u with an edge u→v, ascending.
func (a *Gonum) Predecessors(v int64) []int64 {
	return sortedIDs(a.g.To(v))
}

// Multigraph reports whether the wrapped graph is a gonum multigraph.
func (a *Gonum) Multigraph() bool { return a.multi }

func sortedIDs(it graph.Nodes) []int64 {
	ids := make([]int64, 0, max(it.Len(), 0))
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}
