// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package attr implements AttributeSet (C3): the collection of a node's
// named inputs and named outputs built up during declaration, and the
// type-erased descriptors the GraphBuilder wires together by name alone.
package attr

// OutputDescriptor is the type-erased view of one declared output port
// (C1's contribution to the data model). Ptr is the boxed *T pointer into
// the owning node's OutputCell storage; its address is stable for the
// lifetime of the enclosing Graph.
type OutputDescriptor struct {
	// Name is the port's local name at declaration time (before it is
	// qualified by the GraphBuilder with the node's instance name).
	Name string
	// Type identifies the element type T of the output.
	Type TypeID
	// Ptr is the *T output pointer, boxed as any. Never re-boxed once
	// recorded: the underlying address never changes (pointer stability).
	Ptr any
}

// InputDescriptor is the type-erased view of one declared input port
// (C2's contribution to the data model). Its Name doubles as the
// reference string the GraphBuilder resolves against qualified output
// names: "if no rename is called, the declared name is taken as the
// exact qualified output to read" (spec §4.8).
type InputDescriptor struct {
	// Name is both the port's local name and, until/unless renamed, the
	// qualified output reference the GraphBuilder resolves at Build.
	Name string
	// Type identifies the element type T of the input.
	Type TypeID
	// Bind performs the privileged, typed store into the owning
	// InputHandle[T]. ptr must box a *T matching Type; the GraphBuilder
	// checks Type equality before ever calling Bind.
	Bind func(ptr any) error
}

// Set accumulates one node's declared ports during construction (the
// "Declaring" state of the state machine in spec §4.8). A node's
// Declare method receives a *Set and calls AddInput/AddOutput/Rename on
// it; the resulting descriptors are handed off, unmodified, inside a
// DeclaredNode.
type Set struct {
	outputs    []OutputDescriptor
	outputIdx  map[string]int
	inputs     []InputDescriptor
	inputIdx   map[string]int
}

// NewSet returns an empty AttributeSet.
func NewSet() *Set {
	return &Set{
		outputIdx: make(map[string]int),
		inputIdx:  make(map[string]int),
	}
}

// AddOutput records a new output descriptor under name. Panics with
// *DuplicatePortError if an output of that name was already declared on
// this Set (DuplicatePort, §7) — duplicate ports are a programmer error
// and are meant to fail build loudly.
func (s *Set) AddOutput(name string, typ TypeID, ptr any) {
	if _, exists := s.outputIdx[name]; exists {
		panic(&DuplicatePortError{Kind: Output, Name: name})
	}
	s.outputIdx[name] = len(s.outputs)
	s.outputs = append(s.outputs, OutputDescriptor{Name: name, Type: typ, Ptr: ptr})
}

// AddInput records a new input descriptor under name. Panics with
// *DuplicatePortError on a name collision within this Set's inputs.
func (s *Set) AddInput(name string, typ TypeID, bind func(any) error) {
	if _, exists := s.inputIdx[name]; exists {
		panic(&DuplicatePortError{Kind: Input, Name: name})
	}
	s.inputIdx[name] = len(s.inputs)
	s.inputs = append(s.inputs, InputDescriptor{Name: name, Type: typ, Bind: bind})
}

// Rename rewrites the name of an already-declared port of the given
// kind. This is how a generic node (e.g. Printer) advertises the name
// of the producer it will read instead of a hard-coded local name
// (spec §4.3). Rename is strictly a local rewrite of the just-declared
// descriptor and is only valid during declaration, before the Set is
// handed off. Panics with *UnknownRenameError if old was never declared.
func (s *Set) Rename(kind Kind, old, newName string) {
	switch kind {
	case Output:
		idx, ok := s.outputIdx[old]
		if !ok {
			panic(&UnknownRenameError{Kind: Output, Old: old})
		}
		delete(s.outputIdx, old)
		s.outputs[idx].Name = newName
		s.outputIdx[newName] = idx
	default:
		idx, ok := s.inputIdx[old]
		if !ok {
			panic(&UnknownRenameError{Kind: Input, Old: old})
		}
		delete(s.inputIdx, old)
		s.inputs[idx].Name = newName
		s.inputIdx[newName] = idx
	}
}

// Outputs returns the declared output descriptors in declaration order.
func (s *Set) Outputs() []OutputDescriptor {
	return s.outputs
}

// Inputs returns the declared input descriptors in declaration order.
func (s *Set) Inputs() []InputDescriptor {
	return s.inputs
}
