// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID (numeric suffix) asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps edge IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new unit-weight edge from→to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Store the edge and link it into out/in; undirected edges are linked both ways.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", fmt.Errorf("%w: %q→%q", ErrMultiEdgeNotAllowed, from, to)
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.edges[eid] = e

	link(g.out, from, to, eid)
	link(g.in, to, from, eid)
	if !e.Directed && from != to {
		link(g.out, to, from, eid)
		link(g.in, from, to, eid)
	}

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected graphs the orientation is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edges returns all edges sorted by insertion order of their IDs.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

// edgeSeq extracts the numeric suffix of an edge ID for ordering ("e10" after "e9").
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// link registers eid in adj[a][b], allocating nested maps on demand.
// Must be called under muEdgeAdj write lock.
func link(adj map[string]map[string]map[string]struct{}, a, b, eid string) {
	if adj[a] == nil {
		adj[a] = make(map[string]map[string]struct{})
	}
	if adj[a][b] == nil {
		adj[a][b] = make(map[string]struct{})
	}
	adj[a][b][eid] = struct{}{}
}
