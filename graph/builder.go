// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package graph implements GraphBuilder (C6) and Graph (C7): the
// accumulation of DeclaredNodes under instance names, name-based
// type-checked wiring, and ordered evaluation of the resulting graph.
package graph

import (
	"github.com/sirupsen/logrus"

	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

// addedNode records one node's instance name alongside the Adapter the
// eventual Graph will evaluate, in Add order.
type addedNode struct {
	instance string
	adapter  *node.Adapter
}

// pendingInput is one input descriptor still waiting for Build to
// resolve its reference against the outputs map.
type pendingInput struct {
	consumer string
	desc     attr.InputDescriptor
}

// Builder accumulates DeclaredNodes under instance names, resolves
// "name.port" references, performs type-checked wiring, and hands off a
// runnable Graph (C6). The zero value is not usable; construct with
// NewBuilder.
type Builder struct {
	log *logrus.Entry

	order       []addedNode
	outputs     map[string]attr.OutputDescriptor
	outputOwner map[string]string // qualified output name -> owning instance
	pending     []pendingInput
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithLogger attaches a logger used solely to record, at Debug level,
// each node added by Add and each wiring decision made by Build. The
// core otherwise performs no logging;
// passing nil (the default) disables it entirely.
func WithLogger(log *logrus.Entry) Option {
	return func(b *Builder) { b.log = log }
}

// NewBuilder returns an empty GraphBuilder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		outputs:     make(map[string]attr.OutputDescriptor),
		outputOwner: make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add accumulates dn under instanceName: every output it declared is
// indexed as "instanceName.portName" (panicking with
// *DuplicateQualifiedOutputError on a collision), and every input it
// declared is queued for resolution at Build. Nodes are recorded in
// the order Add is called; Build preserves that order for evaluation.
func (b *Builder) Add(instanceName string, dn *node.DeclaredNode) {
	for _, out := range dn.Attributes().Outputs() {
		qname := instanceName + "." + out.Name
		if _, exists := b.outputs[qname]; exists {
			panic(&DuplicateQualifiedOutputError{Ref: qname})
		}
		b.outputs[qname] = out
		b.outputOwner[qname] = instanceName
	}
	for _, in := range dn.Attributes().Inputs() {
		b.pending = append(b.pending, pendingInput{consumer: instanceName, desc: in})
	}
	b.order = append(b.order, addedNode{instance: instanceName, adapter: dn.Adapter()})
	if b.log != nil {
		b.log.Debugf("wiregraph: added node %q", instanceName)
	}
}

// Build resolves every pending input against the outputs collected so
// far, binds it, and returns a runnable Graph. Build consumes the
// Builder: its internal maps are dropped and nothing may be added
// afterward.
//
// Build panics with *UnresolvedInputError if a reference names no known
// output, and with *TypeMismatchError if the referenced output's
// element type differs from the input's, matching the external
// interface contract in §6.
func (b *Builder) Build() *Graph {
	edges := make([]Edge, 0, len(b.pending))
	for _, p := range b.pending {
		out, found := b.outputs[p.desc.Name]
		if !found {
			panic(&UnresolvedInputError{Ref: p.desc.Name})
		}
		if !out.Type.Equal(p.desc.Type) {
			panic(&TypeMismatchError{
				Ref:        p.desc.Name,
				InputType:  p.desc.Type.String(),
				OutputType: out.Type.String(),
			})
		}
		if err := p.desc.Bind(out.Ptr); err != nil {
			panic(err)
		}
		if b.log != nil {
			b.log.Debugf("wiregraph: wired %s -> %s", p.desc.Name, p.consumer)
		}
		edges = append(edges, Edge{
			Producer: b.outputOwner[p.desc.Name],
			Consumer: p.consumer,
			Output:   p.desc.Name,
		})
	}

	order := make([]*node.Adapter, len(b.order))
	names := make([]string, len(b.order))
	for i, n := range b.order {
		order[i] = n.adapter
		names[i] = n.instance
	}

	b.order, b.outputs, b.outputOwner, b.pending = nil, nil, nil, nil

	return &Graph{order: order, names: names, edges: edges}
}
