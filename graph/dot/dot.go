// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package dot renders a built graph as a DOT-language digraph, the way
// the teacher's depgraph_dot.go renders a depgraph.Graph, but built on
// gonum's graph/simple and graph/encoding/dot instead of a hand-rolled
// writer, since the pack carries gonum for this exact concern.
package dot

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	coregraph "github.com/wiregraph/wiregraph/graph"
)

// namedNode adapts a wiregraph instance name to gonum's graph.Node and
// dot.Node interfaces, so rendered DOT files use instance names instead
// of gonum's internal integer IDs.
type namedNode struct {
	id   int64
	name string
}

func (n namedNode) ID() int64      { return n.id }
func (n namedNode) DOTID() string  { return n.name }
func (n namedNode) String() string { return n.name }

// Render returns the DOT-language source of g's node and edge structure:
// one node per instance name, one directed edge per producer-consumer
// pair. Edges carry no label; several outputs wired between the same
// pair of instances render as a single edge.
func Render(g *coregraph.Graph) (string, error) {
	dg := simple.NewDirectedGraph()

	ids := make(map[string]int64, g.NumNodes())
	nodeFor := func(name string) namedNode {
		id, ok := ids[name]
		if !ok {
			id = int64(len(ids))
			ids[name] = id
			dg.AddNode(namedNode{id: id, name: name})
		}
		return namedNode{id: id, name: name}
	}

	for _, name := range g.Order() {
		nodeFor(name)
	}

	for _, e := range g.Edges() {
		from := nodeFor(e.Producer)
		to := nodeFor(e.Consumer)
		if dg.HasEdgeFromTo(from, to) {
			continue
		}
		dg.SetEdge(simple.Edge{F: from, T: to})
	}

	b, err := dot.Marshal(dg, "wiregraph", "", "  ", false)
	if err != nil {
		return "", fmt.Errorf("dot: marshal: %w", err)
	}
	return string(b), nil
}
