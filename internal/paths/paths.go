// Package paths answers all-pairs questions on weighted directed graphs by
// raising adjacency matrices to a power in a semiring: shortest distances in
// the tropical semiring and reachability in the Boolean one.
//
// A graph on k nodes is a k×k matrix: entry (i, j) is the weight of the edge
// i→j, semiring.Inf when there is none, and 0 on the diagonal.
package paths

import (
	"math"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/semiring"
)

// Weight re-exports semiring.Weight for callers that only deal with graphs.
type Weight = semiring.Weight

// Graph is a weighted adjacency matrix.
type Graph = semiring.Matrix[Weight]

// ShortestPaths returns the matrix of shortest distances between every pair
// of nodes, computed as graph^(k-1) under min-plus multiplication in
// O(k³ log k).
//
// The power uses graph itself, not the tropical identity, as the monoid
// identity. With a zero diagonal the two agree on every exponent reached
// here, and for a single node the graph is returned unchanged (as a copy).
//
// Negative edges are allowed. With a negative cycle the result is not a
// distance matrix; use HasNegativeCycle to detect that case.
func ShortestPaths(graph Graph) (Graph, error) {
	if err := graph.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "shortest paths")
	}
	k := len(graph)
	product := semiring.Tropical().MatrixMonoid(k)
	m := algebra.NewMonoid(algebra.BinaryOp[Graph](product.Combine), graph.Clone())

	dist, err := algebra.PowerMonoid(graph, k-1, m)
	if err != nil {
		return nil, apperrors.WrapError(err, "shortest paths")
	}
	if k <= 2 {
		// Exponents 0 and 1 hand back an operand rather than a product.
		return dist.Clone(), nil
	}
	return dist, nil
}

// Reachability returns the reflexive transitive closure of graph: entry
// (i, j) is true when j can be reached from i. Edges are the finite entries.
func Reachability(graph Graph) (semiring.Matrix[bool], error) {
	if err := graph.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "reachability")
	}
	k := len(graph)
	adj := make(semiring.Matrix[bool], k)
	for i, row := range graph {
		adj[i] = make([]bool, k)
		for j, w := range row {
			adj[i][j] = i == j || !math.IsInf(w, 1)
		}
	}
	closure, err := semiring.Power(adj, k-1, semiring.Boolean())
	if err != nil {
		return nil, apperrors.WrapError(err, "reachability")
	}
	return closure, nil
}

// HasNegativeCycle reports whether graph contains a cycle of negative total
// weight, given dist = ShortestPaths(graph). Every simple cycle has at most
// k edges, so one more tropical product dist·graph exposes it as a negative
// diagonal entry; dist alone only covers closed walks of up to k-1 edges.
func HasNegativeCycle(graph, dist Graph) (bool, error) {
	closed, err := semiring.TropicalMultiply(dist, graph)
	if err != nil {
		return false, apperrors.WrapError(err, "negative cycle check")
	}
	for i := range closed {
		if closed[i][i] < 0 {
			return true, nil
		}
	}
	return false, nil
}
