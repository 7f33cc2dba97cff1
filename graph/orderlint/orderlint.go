// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package orderlint diagnoses a built graph's evaluation order: it
// flags edges whose consumer does not run strictly after its producer
// in insertion order (self-loops excepted) and, via
// gonum's graph/topo, reports genuine cycles that GraphBuilder.Build
// cannot detect because it never walks the dependency DAG itself.
package orderlint

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	coregraph "github.com/wiregraph/wiregraph/graph"
)

// Violation records an edge whose consumer is evaluated no later than
// its producer, other than a self-loop.
type Violation struct {
	Producer string
	Consumer string
	Output   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s runs before its producer %s (via %s)", v.Consumer, v.Producer, v.Output)
}

// Check reports every edge in g whose consumer does not come strictly
// after its producer in g.Order(), excluding self-loops (a node
// consuming its own output is the one legal same-tick edge, per the
// write-before-read discipline each node's Evaluate must honor itself).
func Check(g *coregraph.Graph) []Violation {
	pos := make(map[string]int, g.NumNodes())
	for i, name := range g.Order() {
		pos[name] = i
	}

	var violations []Violation
	for _, e := range g.Edges() {
		if e.Producer == e.Consumer {
			continue
		}
		if pos[e.Consumer] <= pos[e.Producer] {
			violations = append(violations, Violation{Producer: e.Producer, Consumer: e.Consumer, Output: e.Output})
		}
	}
	return violations
}

// DetectCycle reports whether g's non-self-loop edges contain a cycle
// among distinct nodes, returning the offending instance names when
// they do. A well-formed graph from GraphBuilder.Build is always
// evaluated in insertion order regardless, but a cycle still means the
// graph's author wired something that cannot be satisfied by any single
// linear tick order, which is worth surfacing as a lint rather than
// silently running in insertion order anyway.
func DetectCycle(g *coregraph.Graph) ([]string, error) {
	dg := simple.NewDirectedGraph()
	ids := make(map[string]int64, g.NumNodes())
	nodeID := func(name string) int64 {
		id, ok := ids[name]
		if !ok {
			id = int64(len(ids))
			ids[name] = id
			dg.AddNode(simpleNamedNode{id: id, name: name})
		}
		return id
	}

	for _, name := range g.Order() {
		nodeID(name)
	}
	for _, e := range g.Edges() {
		if e.Producer == e.Consumer {
			continue
		}
		from, to := nodeID(e.Producer), nodeID(e.Consumer)
		if !dg.HasEdgeFromTo(dg.Node(from), dg.Node(to)) {
			dg.SetEdge(simple.Edge{F: dg.Node(from), T: dg.Node(to)})
		}
	}

	_, err := topo.Sort(dg)
	if err == nil {
		return nil, nil
	}
	unorderable, ok := err.(topo.Unorderable)
	if !ok {
		return nil, err
	}

	names := make(map[int64]string, len(ids))
	for name, id := range ids {
		names[id] = name
	}
	var cyclic []string
	for _, component := range unorderable {
		for _, n := range component {
			cyclic = append(cyclic, names[n.ID()])
		}
	}
	return cyclic, fmt.Errorf("orderlint: cyclic dependency among %v", cyclic)
}

type simpleNamedNode struct {
	id   int64
	name string
}

func (n simpleNamedNode) ID() int64 { return n.id }
