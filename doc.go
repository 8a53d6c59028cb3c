// Package lvlath is the root of lvlath-hits: link analysis on in-memory
// graphs with the HITS (hubs & authorities) power method.
//
// Packages:
//
//	core/       — thread-safe Graph with directed/undirected edges, loop and
//	              multi-edge policies and a per-vertex attribute store
//	hits/       — the solver: capability contract, power iteration, result
//	              packaging and attribute assignment, YAML config
//	converters/ — adapters from gonum/graph to the hits capability contract
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("portal", "docs")
//	g.AddEdge("portal", "blog")
//	res, err := hits.Run[string](g)
//	// res.Hubs["portal"] == 1, res.Authorities["docs"] == 0.5
//
//	go get github.com/katalvlaran/lvlath-hits
package lvlath
