// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package nodes implements the example computational nodes the spec
// explicitly places outside the core (§1): a simple incrementing
// producer, a generic value printer, and a two-input multiplier. None
// of the core packages (attr, node, graph) import this package; it
// exists only to exercise the declaration contract (C8) end-to-end, the
// way the teacher's examples/filesync demo exercises depgraph.
package nodes

import (
	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

// CounterOutput configures one of a Counter's float64 outputs: its
// local port name and its per-tick increment.
type CounterOutput struct {
	Name      string
	Increment float64
}

// Counter is the "start" node of scenarios S1 and S2: zero or more
// float64 outputs, each incrementing by its configured amount on every
// Evaluate, starting from zero.
type Counter struct {
	specs   []CounterOutput
	outputs []node.OutputCell[float64]
}

// NewCounter constructs a Counter with one output per spec, each
// default-initialized to zero.
func NewCounter(specs ...CounterOutput) *Counter {
	return &Counter{
		specs:   specs,
		outputs: make([]node.OutputCell[float64], len(specs)),
	}
}

// Declare publishes one output per configured spec.
func (c *Counter) Declare(set *attr.Set) {
	for i, s := range c.specs {
		c.outputs[i].DeclareAs(set, s.Name)
	}
}

// Evaluate adds each output's configured increment to its current value.
func (c *Counter) Evaluate() {
	for i, s := range c.specs {
		*c.outputs[i].Addr() += s.Increment
	}
}
