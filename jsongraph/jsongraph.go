// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package jsongraph implements the "optional convenience" JSON graph
// specification the core describes only as an external collaborator
// (§6): an array of objects, each naming a factory key and an instance
// name, consumed by a caller-supplied registry of node constructors.
//
// Parsing follows the teacher pack's try-then-repair idiom (see
// leofalp-aigo's core/parse package): attempt encoding/json.Unmarshal
// first, and only reach for jsonrepair on failure, since repairing
// first would silently accept malformed documents that happen to
// parse differently than the author intended.
package jsongraph

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/wiregraph/wiregraph/graph"
	"github.com/wiregraph/wiregraph/node"
)

// Spec is one entry of a JSON graph document: the factory key under
// "__type__", the instance name under "__name__", and every other field
// carried through verbatim as InitInfo for the factory to interpret.
type Spec struct {
	Type     string
	Name     string
	InitInfo map[string]json.RawMessage
}

// UnmarshalJSON splits the reserved "__type__"/"__name__" keys out of
// InitInfo, which keeps the rest of the object's fields opaque to this
// package, exactly as the spec describes: remaining fields form the
// node's InitInfo.
func (s *Spec) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	typeRaw, ok := raw["__type__"]
	if !ok {
		return fmt.Errorf("jsongraph: entry missing __type__")
	}
	if err := json.Unmarshal(typeRaw, &s.Type); err != nil {
		return fmt.Errorf("jsongraph: __type__: %w", err)
	}
	delete(raw, "__type__")

	nameRaw, ok := raw["__name__"]
	if !ok {
		return fmt.Errorf("jsongraph: entry %q missing __name__", s.Type)
	}
	if err := json.Unmarshal(nameRaw, &s.Name); err != nil {
		return fmt.Errorf("jsongraph: __name__: %w", err)
	}
	delete(raw, "__name__")

	s.InitInfo = raw
	return nil
}

// Factory constructs a DeclaredNode from a Spec's InitInfo. Registered
// factories decode InitInfo's fields themselves, the same way a
// node-factory registry external to the core is described in §6.
type Factory func(initInfo map[string]json.RawMessage) (*node.DeclaredNode, error)

// Registry maps a Spec's "__type__" string to the Factory that builds
// instances of it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates typeKey with factory. Registering the same
// typeKey twice replaces the earlier registration, mirroring a plain Go
// map assignment rather than panicking, since re-registration is a
// normal way to override a default node type in a longer-lived process.
func (r *Registry) Register(typeKey string, factory Factory) {
	r.factories[typeKey] = factory
}

// Load parses document as a JSON array of Spec entries, retrying once
// through jsonrepair if the first parse fails, and adds one node to b
// per entry via its registered Factory.
func Load(b *graph.Builder, r *Registry, document []byte) error {
	specs, err := parseSpecs(document)
	if err != nil {
		return err
	}

	for _, s := range specs {
		factory, ok := r.factories[s.Type]
		if !ok {
			return fmt.Errorf("jsongraph: no factory registered for __type__ %q (instance %q)", s.Type, s.Name)
		}
		dn, err := factory(s.InitInfo)
		if err != nil {
			return fmt.Errorf("jsongraph: building %q (%s): %w", s.Name, s.Type, err)
		}
		b.Add(s.Name, dn)
	}
	return nil
}

func parseSpecs(document []byte) ([]Spec, error) {
	var specs []Spec
	if err := json.Unmarshal(document, &specs); err == nil {
		return specs, nil
	} else if repaired, repairErr := jsonrepair.JSONRepair(string(document)); repairErr == nil {
		if err := json.Unmarshal([]byte(repaired), &specs); err == nil {
			return specs, nil
		} else {
			return nil, fmt.Errorf("jsongraph: parse failed even after repair: %w", err)
		}
	} else {
		return nil, fmt.Errorf("jsongraph: invalid JSON and repair failed: %w", repairErr)
	}
}
