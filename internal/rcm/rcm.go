// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rcm computes a reverse Cuthill-McKee ordering of an undirected
// graph built from a sparse matrix's symbolic structure, for use as a
// fill-reducing permutation ahead of a skyline factorisation.
package rcm

import (
	"sort"

	"github.com/jemjive/skyline/graph"
	"github.com/jemjive/skyline/graph/simple"
	"github.com/jemjive/skyline/graph/traverse"
)

// BuildGraph constructs the symmetric structure graph of an n-vertex
// sparse matrix: one node per row/column, one undirected edge per
// off-diagonal structural nonzero. neighbors(i) must return the column
// indices of row i (the diagonal entry, if present, is ignored).
func BuildGraph(n int, neighbors func(i int) []int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for _, j := range neighbors(i) {
			if j == i {
				continue
			}
			ii, jj := int64(i), int64(j)
			if g.HasEdgeBetween(ii, jj) {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(ii), T: simple.Node(jj)})
		}
	}
	return g
}

// Order computes the reverse Cuthill-McKee permutation of g. perm[k] is
// the original vertex placed at position k; iperm is its inverse. Ties in
// degree are broken by ascending vertex ID, which makes the result
// deterministic across runs.
//
// Disconnected components are each numbered in turn, restarting from the
// minimum-degree unnumbered vertex, per spec edge-case handling.
func Order(g *simple.UndirectedGraph) (perm, iperm []int64) {
	n := g.Nodes().Len()
	numbered := make(map[int64]bool, n)
	order := make([]int64, 0, n)

	remaining := allIDs(g)
	for len(order) < n {
		start := minDegreeAmong(g, remaining, numbered)
		if start < 0 {
			break
		}
		start = pseudoPeripheral(g, start)
		order = append(order, levelOrderByDegree(g, start, numbered)...)
	}

	// Reverse to get RCM from the plain Cuthill-McKee order.
	perm = make([]int64, n)
	for k, id := range order {
		perm[n-1-k] = id
	}
	iperm = make([]int64, n)
	for pos, id := range perm {
		iperm[id] = int64(pos)
	}
	return perm, iperm
}

func allIDs(g *simple.UndirectedGraph) []int64 {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func degree(g *simple.UndirectedGraph, id int64) int {
	return graph.NodesOf(g.From(id)).Len()
}

func minDegreeAmong(g *simple.UndirectedGraph, ids []int64, numbered map[int64]bool) int64 {
	best := int64(-1)
	bestDeg := -1
	for _, id := range ids {
		if numbered[id] {
			continue
		}
		d := degree(g, id)
		if bestDeg < 0 || d < bestDeg || (d == bestDeg && id < best) {
			best = id
			bestDeg = d
		}
	}
	return best
}

// pseudoPeripheral implements the standard GPS heuristic: two rounds of
// breadth-first search, each time moving to a vertex at the maximum
// depth reached, breaking ties by minimum degree then by ID. This uses
// gonum's BreadthFirst walker directly since only the eccentricity (max
// depth and a deepest node) is needed here, not a degree-sorted level
// structure.
func pseudoPeripheral(g *simple.UndirectedGraph, start int64) int64 {
	current := start
	for round := 0; round < 2; round++ {
		next, _ := farthest(g, current)
		if next == current {
			break
		}
		current = next
	}
	return current
}

func farthest(g *simple.UndirectedGraph, from int64) (id int64, depth int) {
	var bf traverse.BreadthFirst
	best := from
	bestDepth := 0
	bestDeg := degree(g, from)
	bf.Walk(g, simple.Node(from), func(n graph.Node, d int) bool {
		if d > bestDepth || (d == bestDepth && (degree(g, n.ID()) < bestDeg || (degree(g, n.ID()) == bestDeg && n.ID() < best))) {
			if d > bestDepth {
				best, bestDepth, bestDeg = n.ID(), d, degree(g, n.ID())
			} else if degree(g, n.ID()) < bestDeg || (degree(g, n.ID()) == bestDeg && n.ID() < best) {
				best, bestDeg = n.ID(), degree(g, n.ID())
			}
		}
		return false
	})
	return best, bestDepth
}

// levelOrderByDegree performs a breadth-first traversal from start,
// sorting the frontier of each level by ascending degree (ties by ID)
// before it is appended to the order and enqueued for the next level.
// gonum's traverse.BreadthFirst cannot express this per-level reordering
// (its internal queue is FIFO with no sort hook and its queue type lives
// under graph/internal, unreachable from outside gonum), so the walk
// itself is hand rolled here, directly on the graph.Undirected interface.
func levelOrderByDegree(g *simple.UndirectedGraph, start int64, numbered map[int64]bool) []int64 {
	var order []int64
	numbered[start] = true
	frontier := []int64{start}
	order = append(order, start)

	for len(frontier) > 0 {
		var next []int64
		seen := make(map[int64]bool)
		for _, u := range frontier {
			nbrs := graph.NodesOf(g.From(u))
			sort.Slice(nbrs, func(i, j int) bool {
				di, dj := degree(g, nbrs[i].ID()), degree(g, nbrs[j].ID())
				if di != dj {
					return di < dj
				}
				return nbrs[i].ID() < nbrs[j].ID()
			})
			for _, nb := range nbrs {
				id := nb.ID()
				if numbered[id] || seen[id] {
					continue
				}
				seen[id] = true
				next = append(next, id)
			}
		}
		sort.Slice(next, func(i, j int) bool {
			di, dj := degree(g, next[i]), degree(g, next[j])
			if di != dj {
				return di < dj
			}
			return next[i] < next[j]
		})
		for _, id := range next {
			numbered[id] = true
		}
		order = append(order, next...)
		frontier = next
	}
	return order
}
