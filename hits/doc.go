// Package hits computes HITS (Hyperlink-Induced Topic Search) hub and
// authority scores on directed graphs with the power method.
//
// Overview:
//
//   - A node is a good hub if it points to good authorities, and a good
//     authority if good hubs point to it. Both score vectors are the dominant
//     eigenvectors of AAᵀ (hubs) and AᵀA (authorities), approximated by
//     alternating updates.
//   - Every round recomputes authorities from the previous hubs, then hubs
//     from the new authorities, and L2-normalizes both. Iteration stops once
//     the L1 change of the hub vector is below VertexCount·Tolerance, or after
//     MaxIterations rounds.
//   - The final vectors are rescaled to sum to 1 (WithNormalize(false) keeps
//     the L2-normalized form).
//
// Graph input:
//
//   - Any type implementing Graph[K] may be passed: *core.Graph directly, or
//     a gonum graph through converters.FromGonum.
//   - The graph is validated and snapshotted once per call; multigraphs are
//     rejected with ErrUnsupportedGraphType, unusable values with
//     ErrInvalidArgument.
//
// Edge cases:
//
//   - Nodes without outgoing edges get hub 0; nodes without incoming edges get
//     authority 0.
//   - A graph without edges converges after one round with every score 0.
//   - Non-convergence is not an error; see Result.Converged.
//
// API reference:
//
//	func Run[K comparable](g Graph[K], opts ...Option) (*Result[K], error)
//	func Assign[K comparable](g Graph[K], set AttributeSetter[K], opts ...Option) error
//	func AssignGraph[K comparable](g MutableGraph[K], opts ...Option) error
//
// Options: WithTolerance, WithMaxIterations, WithNormalize, WithWorkers,
// WithAttributes, WithLogger, WithConfig (see LoadConfig for the YAML form).
//
// Thread safety:
//
//   - Run keeps no state between calls. WithWorkers(n) parallelizes the
//     per-node sums without changing results. Mutating g concurrently with
//     Run is the caller's problem.
package hits
