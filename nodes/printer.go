// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package nodes

import (
	"fmt"

	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

// Printer reads a single input of any type T and prints it with a
// caller-chosen prefix every Evaluate. It is the generic node spec §4.3
// and §9 use to motivate Rename: it declares a local input named
// "input" and renames it at declaration time to the qualified output it
// was configured to read, so the same Printer type can be reused
// against any producer without hard-coding its name.
type Printer[T any] struct {
	prefix string
	target string
	in     node.InputHandle[T]
}

// NewPrinter returns a Printer that will print using prefix, reading
// from the qualified output target (e.g. "start.x").
func NewPrinter[T any](prefix, target string) *Printer[T] {
	return &Printer[T]{prefix: prefix, target: target}
}

// Declare publishes the local "input" port and immediately renames it
// to p.target, so GraphBuilder.Build resolves it against the producer
// Printer was configured with.
func (p *Printer[T]) Declare(set *attr.Set) {
	p.in.DeclareAs(set, "input")
	set.Rename(attr.Input, "input", p.target)
}

// Evaluate prints "Printing: <prefix>, input: <value>".
func (p *Printer[T]) Evaluate() {
	fmt.Printf("Printing: %s, input: %v\n", p.prefix, p.in.Get())
}
