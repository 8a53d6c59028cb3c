// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors).
// Determinism:
//   - Both return unique IDs sorted lex asc.

package core

import "sort"

// Successors returns the unique IDs v such that an edge id→v exists,
// sorted lexicographically. Undirected edges are followed in both directions.
// An unknown or empty id yields an empty slice.
// Complexity: O(d log d).
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.out[id])
}

// Predecessors returns the unique IDs u such that an edge u→id exists,
// sorted lexicographically.
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.in[id])
}

func sortedKeys(m map[string]map[string]struct{}) []string {
	ids := make([]string, 0, len(m))
	for v, edgeSet := range m {
		if len(edgeSet) == 0 {
			continue
		}
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
