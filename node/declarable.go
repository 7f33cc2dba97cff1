// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package node

import "github.com/wiregraph/wiregraph/attr"

// Declarable is the contract a user node type implements (C8). Its
// Construct step is an ordinary Go constructor function returning a
// pointer to the node (InitInfo in, *N out); Declare and Evaluate are
// the two methods the rest of this package calls:
//
//   - Declare is invoked exactly once, immediately after construction,
//     before the node is handed to any GraphBuilder. It must call
//     AddOutput/AddInput (directly, via OutputCell/InputHandle's own
//     DeclareAs, or via attr.DeriveFromStruct) for every port, and may
//     call Set.Rename to remap input names to external references.
//   - Evaluate runs one tick: read bound inputs, write owned outputs.
//     It must be pure with respect to other nodes' storage.
//
// Go collapses spec §3's separate "output storage type O" / "input
// storage type I" / "node type N" into one struct: N's own fields are
// simultaneously its I and its O, since a heap-allocated Go struct
// already has the single stable address the spec's two-phase
// construction protocol exists to guarantee in unmanaged-memory
// languages (see DESIGN.md).
type Declarable interface {
	Declare(set *attr.Set)
	Evaluate()
}

// Adapter erases a concrete Declarable behind one polymorphic Evaluate
// entry point (C4). Because n is an interface value wrapping a pointer
// to the concrete node, copying or moving the Adapter itself (e.g. when
// a GraphBuilder appends it to a slice) never moves the node's storage:
// only the pointer is copied, not the pointee. This is what makes the
// "adapter's address must not change" requirement from spec §4.4 a
// non-issue under a garbage-collected runtime.
type Adapter struct {
	n Declarable
}

// Evaluate runs the wrapped node's Evaluate method.
func (a *Adapter) Evaluate() {
	a.n.Evaluate()
}

// DeclaredNode is the immutable handoff package (C5) produced by
// Declare: an owned Adapter plus the AttributeSet the node populated
// during construction. It is the unit GraphBuilder.Add consumes.
type DeclaredNode struct {
	adapter *Adapter
	attrs   *attr.Set
}

// Declare runs the declaration phase for n: it allocates an empty
// AttributeSet, invokes n.Declare(set), and bundles the result with an
// Adapter wrapping n. n must already be fully constructed (its output
// cells holding their initial values) before Declare is called.
func Declare[N Declarable](n N) *DeclaredNode {
	set := attr.NewSet()
	n.Declare(set)
	return &DeclaredNode{adapter: &Adapter{n: n}, attrs: set}
}

// Attributes returns the ports the node published during declaration.
func (d *DeclaredNode) Attributes() *attr.Set {
	return d.attrs
}

// Adapter returns the stably-addressed handle GraphBuilder stores and
// Graph later calls Evaluate on.
func (d *DeclaredNode) Adapter() *Adapter {
	return d.adapter
}
