package paths

import (
	"context"

	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/semiring"
)

// RelaxationDistances computes all-pairs shortest distances by running
// Bellman-Ford from every source: k-1 rounds of relaxing every edge. It
// shares no code with ShortestPaths and serves as its reference. For graphs
// with a zero diagonal and no negative cycle the two agree.
//
// ctx is checked once per source.
func RelaxationDistances(ctx context.Context, graph Graph) (Graph, error) {
	if err := graph.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "relaxation")
	}
	k := len(graph)
	dist := make(Graph, k)
	for src := 0; src < k; src++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dist[src] = bellmanFord(graph, src)
	}
	return dist, nil
}

func bellmanFord(graph Graph, src int) []Weight {
	k := len(graph)
	d := make([]Weight, k)
	for i := range d {
		d[i] = semiring.Inf
	}
	d[src] = 0
	for round := 1; round < k; round++ {
		changed := false
		for u := 0; u < k; u++ {
			if d[u] == semiring.Inf {
				continue
			}
			for v, w := range graph[u] {
				if w == semiring.Inf || u == v {
					continue
				}
				if d[u]+w < d[v] {
					d[v] = d[u] + w
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return d
}

// SampleGraph returns a seven-node directed demonstration graph.
func SampleGraph() Graph {
	inf := semiring.Inf
	return Graph{
		{0, 6, inf, 3, inf, inf, inf},
		{inf, 0, inf, inf, 2, 10, inf},
		{7, inf, 0, inf, inf, inf, inf},
		{inf, inf, 5, 0, inf, 4, inf},
		{inf, inf, inf, inf, 0, inf, 3},
		{inf, inf, 6, inf, 7, 0, 8},
		{inf, 9, inf, inf, inf, inf, 0},
	}
}

// SampleDistances is the all-pairs distance matrix of SampleGraph.
func SampleDistances() Graph {
	return Graph{
		{0, 6, 8, 3, 8, 7, 11},
		{23, 0, 16, 26, 2, 10, 5},
		{7, 13, 0, 10, 15, 14, 18},
		{12, 18, 5, 0, 11, 4, 12},
		{35, 12, 28, 38, 0, 22, 3},
		{13, 17, 6, 16, 7, 0, 8},
		{32, 9, 25, 35, 11, 19, 0},
	}
}
