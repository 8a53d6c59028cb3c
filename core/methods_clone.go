// File: methods_clone.go
// Role: Deep copy of graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: flags, vertices (with a copied
// Metadata map), edges and adjacency. Attribute writes on the clone never
// leak into the source.
//
// Complexity: O(V + E + Σ|Metadata|).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		out:        make(map[string]map[string]map[string]struct{}, len(g.out)),
		in:         make(map[string]map[string]map[string]struct{}, len(g.in)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var (
		id string
		v  *Vertex
	)
	for id, v = range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: md}
	}

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Directed: e.Directed}
		link(clone.out, e.From, e.To, eid)
		link(clone.in, e.To, e.From, eid)
		if !e.Directed && e.From != e.To {
			link(clone.out, e.To, e.From, eid)
			link(clone.in, e.From, e.To, eid)
		}
	}

	return clone
}
