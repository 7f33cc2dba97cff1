// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package nodes

import (
	"github.com/wiregraph/wiregraph/attr"
	"github.com/wiregraph/wiregraph/node"
)

// Multiplier is the "product" node of scenario S2: two float64 inputs,
// each renamed at declaration time to the producer it should read, and
// one float64 output holding their product.
type Multiplier struct {
	input1Ref, input2Ref string
	in1, in2             node.InputHandle[float64]
	out                  node.OutputCell[float64]
}

// NewMultiplier returns a Multiplier reading input1Ref and input2Ref
// (qualified output names, e.g. "start.x" and "start.y").
func NewMultiplier(input1Ref, input2Ref string) *Multiplier {
	return &Multiplier{input1Ref: input1Ref, input2Ref: input2Ref}
}

// Declare publishes input1, input2 and product, renaming the inputs to
// the producers this instance was configured with.
func (m *Multiplier) Declare(set *attr.Set) {
	m.in1.DeclareAs(set, "input1")
	set.Rename(attr.Input, "input1", m.input1Ref)
	m.in2.DeclareAs(set, "input2")
	set.Rename(attr.Input, "input2", m.input2Ref)
	m.out.DeclareAs(set, "product")
}

// Evaluate writes the product of the two current input values.
func (m *Multiplier) Evaluate() {
	m.out.Set(m.in1.Get() * m.in2.Get())
}
