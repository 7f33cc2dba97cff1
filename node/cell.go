// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package node implements C1 (OutputCell), C2 (InputHandle), C4 (the
// erasing Adapter), C5 (DeclaredNode) and the C8 declaration contract
// (Declarable) that a user node type implements.
package node

import "github.com/wiregraph/wiregraph/attr"

// OutputCell holds one output port's value (C1). Its address is fixed
// the instant it is heap-allocated as part of its owning node's struct;
// because Go is garbage collected and the node struct is always referred
// to by pointer once declared, no separate "stable storage" allocation
// step is needed the way it would be in an unmanaged-memory language
// (see DESIGN.md). The cell holds exactly one value of type T,
// default-initialized at declaration time, mutated only by the owning
// node during its own Evaluate.
type OutputCell[T any] struct {
	value T
}

// Addr returns the cell's stable address. Consumers reach it only
// indirectly, through a bound InputHandle[T]; the owning node uses it
// directly to write its own output during Evaluate.
func (c *OutputCell[T]) Addr() *T {
	return &c.value
}

// Get returns a copy of the cell's current value.
func (c *OutputCell[T]) Get() T {
	return c.value
}

// Set overwrites the cell's value. Only the owning node should call this,
// and only from within its own Evaluate.
func (c *OutputCell[T]) Set(v T) {
	c.value = v
}

// DeclareAs publishes this cell as an output port named name (C3
// AddOutput). Implements attr.SelfDeclaring for the struct-walking
// derive helper.
func (c *OutputCell[T]) DeclareAs(set *attr.Set, name string) {
	set.AddOutput(name, attr.TypeIDFor[T](), c.Addr())
}
