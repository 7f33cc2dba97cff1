// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package graph

import "github.com/wiregraph/wiregraph/node"

// Edge describes one resolved wiring decision: a consumer instance's
// input bound to a producer instance's qualified output. It is exposed
// read-only, purely for diagnostics (graph/dot, graph/orderlint); the
// evaluation loop never consults it.
type Edge struct {
	// Producer is the instance name owning the output.
	Producer string
	// Consumer is the instance name owning the input.
	Consumer string
	// Output is the qualified output name ("producer.port").
	Output string
}

// Graph owns the erased nodes produced by a Builder and evaluates them
// in insertion order (C7). The only way to obtain one is Builder.Build;
// there is no post-construction mutation beyond whatever state changes
// a node's own Evaluate makes to its own storage.
type Graph struct {
	order []*node.Adapter
	names []string
	edges []Edge
}

// Evaluate runs one tick: every adapter in insertion order, in turn.
// Re-entrant calls (a node's Evaluate invoking Graph.Evaluate again) are
// not supported; a single caller may call Evaluate any number of times
// in succession.
func (g *Graph) Evaluate() {
	for _, a := range g.order {
		a.Evaluate()
	}
}

// Order returns the instance names in insertion (and therefore
// evaluation) order.
func (g *Graph) Order() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Edges returns every resolved input-to-output wiring, for diagnostic
// tooling. Not part of the per-tick evaluation path.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.order)
}
