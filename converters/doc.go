// Package converters provides adapters between popular Go graph libraries
// and the hits.Graph capability contract.
//
// Supported sources:
//   - gonum/graph: any graph.Directed (simple.DirectedGraph, multi.DirectedGraph, ...)
//
// Use FromGonum to score a gonum graph with hits.Run without copying it into
// a core.Graph first.
package converters
