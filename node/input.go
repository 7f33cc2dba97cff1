// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package node

import "github.com/wiregraph/wiregraph/attr"

// InputHandle holds one input port's read-only pointer (C2). It starts
// unbound (nil) at construction, transitions to bound exactly once
// during GraphBuilder.Build, and then never rebinds or unbinds for the
// lifetime of the enclosing Graph.
type InputHandle[T any] struct {
	ptr  *T
	name string // set by DeclareAs, used only to annotate error messages
}

// IsBound reports whether Build has already wired this input.
func (h *InputHandle[T]) IsBound() bool {
	return h.ptr != nil
}

// Get dereferences the bound producer cell. Panics with
// *UnboundInputReadError if the handle was never bound — reading an
// unbound input is a programmer error per spec §4.2.
func (h *InputHandle[T]) Get() T {
	if h.ptr == nil {
		panic(&UnboundInputReadError{Name: h.name})
	}
	return *h.ptr
}

// bind stores the producer pointer. Privileged: reachable only through
// the closure handed to attr.Set via DeclareAs, never called directly
// by node authors. Panics on double-bind.
func (h *InputHandle[T]) bind(p *T) {
	if h.ptr != nil {
		panic(&alreadyBoundError{Name: h.name})
	}
	h.ptr = p
}

// DeclareAs publishes this handle as an input port named name (C3
// AddInput), with name also serving as the unresolved reference string
// until the node renames it (spec §4.8). Implements attr.SelfDeclaring.
func (h *InputHandle[T]) DeclareAs(set *attr.Set, name string) {
	h.name = name
	set.AddInput(name, attr.TypeIDFor[T](), func(ptr any) error {
		p, ok := ptr.(*T)
		if !ok {
			return &typeAssertionError{Name: h.name, want: attr.TypeIDFor[T]().String()}
		}
		h.bind(p)
		return nil
	})
}
