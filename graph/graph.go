// Package graph is the dependency graph among cells: a directed graph
// where an edge dependency -> cell means "dependency enables compute of
// cell", oriented so that forward topological order computes providers
// before consumers and forward reachability answers "what must I re-mark
// dirty when this changed".
package graph

import (
	"sort"

	"sheetengine/addr"
)

// Graph is an adjacency list keyed by address, mapping each node to the
// set of nodes it enables (its consumers).
type Graph struct {
	out map[addr.Address]map[addr.Address]struct{}
}

func New() *Graph {
	return &Graph{out: make(map[addr.Address]map[addr.Address]struct{})}
}

func (g *Graph) ensureNode(a addr.Address) {
	if _, ok := g.out[a]; !ok {
		g.out[a] = make(map[addr.Address]struct{})
	}
}

// AddNode ensures a node exists for a, and for each dependency d adds the
// forward edge d -> a (ensuring d has a node too). Duplicate edges are
// tolerated without changing semantics, since out is a set.
func (g *Graph) AddNode(a addr.Address, deps []addr.Address) {
	g.ensureNode(a)
	for _, d := range deps {
		g.ensureNode(d)
		g.out[d][a] = struct{}{}
	}
}

// ChangeNode clears every in-edge of a (removing a from every other node's
// adjacency set) before re-adding it with newDeps, so repeated calls never
// accumulate stale edges.
func (g *Graph) ChangeNode(a addr.Address, newDeps []addr.Address) {
	g.clearInEdges(a)
	g.AddNode(a, newDeps)
}

// RemoveNode deletes the node entirely and removes a from every other
// node's adjacency set.
func (g *Graph) RemoveNode(a addr.Address) {
	g.clearInEdges(a)
	delete(g.out, a)
}

func (g *Graph) clearInEdges(a addr.Address) {
	for _, consumers := range g.out {
		delete(consumers, a)
	}
}

// Nodes returns every live address in the graph, sorted for
// deterministic iteration.
func (g *Graph) Nodes() []addr.Address {
	nodes := make([]addr.Address, 0, len(g.out))
	for a := range g.out {
		nodes = append(nodes, a)
	}
	sortAddresses(nodes)
	return nodes
}

// TopologicalSort runs Kahn's algorithm on the forward graph. sorted and
// cycles partition every node in the graph: for every edge u->v, either
// both u and v are in cycles, or u precedes v in sorted.
func (g *Graph) TopologicalSort() (sorted []addr.Address, cycles []addr.Address) {
	indegree := make(map[addr.Address]int, len(g.out))
	for a := range g.out {
		indegree[a] = 0
	}
	for _, consumers := range g.out {
		for c := range consumers {
			indegree[c]++
		}
	}

	var queue []addr.Address
	for _, a := range g.Nodes() {
		if indegree[a] == 0 {
			queue = append(queue, a)
		}
	}

	for len(queue) > 0 {
		sort.Slice(queue, func(i, j int) bool { return less(queue[i], queue[j]) })
		a := queue[0]
		queue = queue[1:]
		sorted = append(sorted, a)

		next := make([]addr.Address, 0, len(g.out[a]))
		for c := range g.out[a] {
			next = append(next, c)
		}
		sortAddresses(next)
		for _, c := range next {
			indegree[c]--
			if indegree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}

	if len(sorted) < len(indegree) {
		done := make(map[addr.Address]bool, len(sorted))
		for _, a := range sorted {
			done[a] = true
		}
		for _, a := range g.Nodes() {
			if !done[a] {
				cycles = append(cycles, a)
			}
		}
	}
	return sorted, cycles
}

// TransitiveDependants returns every node forward-reachable from a
// (excluding a itself), via BFS in deterministic order.
func (g *Graph) TransitiveDependants(a addr.Address) []addr.Address {
	visited := map[addr.Address]bool{a: true}
	var result []addr.Address
	queue := []addr.Address{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := make([]addr.Address, 0, len(g.out[cur]))
		for c := range g.out[cur] {
			next = append(next, c)
		}
		sortAddresses(next)
		for _, c := range next {
			if !visited[c] {
				visited[c] = true
				result = append(result, c)
				queue = append(queue, c)
			}
		}
	}
	return result
}

func less(a, b addr.Address) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func sortAddresses(addrs []addr.Address) {
	sort.Slice(addrs, func(i, j int) bool { return less(addrs[i], addrs[j]) })
}
