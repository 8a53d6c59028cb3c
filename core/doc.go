// Package core provides the thread-safe in-memory Graph that the HITS solver
// and its tests operate on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex attribute store (SetVertexAttr / VertexAttr) backed by Vertex.Metadata
//   - Forward and reverse adjacency, so both Successors and Predecessors are O(d log d)
//
// Edges are unit weight; there is no weight field.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                     // O(1)
//	HasVertex(id string) bool                      // O(1)
//	Vertices() []string                            // O(V·log V), sorted
//	VertexCount() int                              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool                       // O(1)
//	Edges() []*Edge                                     // O(E·log E), sorted by ID
//	EdgeCount() int                                     // O(1)
//
//	// Neighborhood
//	Successors(id string) []string   // unique, sorted; undirected edges count both ways
//	Predecessors(id string) []string // unique, sorted
//
//	// Attributes
//	SetVertexAttr(id, key string, value any) error
//	VertexAttr(id, key string) (any, bool)
//
//	// Cloning
//	Clone() *Graph                   // deep copy, including attribute maps
//
// Policy flags are immutable after NewGraph and are reported by Directed(),
// Looped() and Multigraph().
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
