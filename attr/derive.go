// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package attr

import (
	"fmt"
	"reflect"
)

// SelfDeclaring is implemented by a node's own port storage fields
// (node.OutputCell[T] and node.InputHandle[T], via pointer receivers) so
// that DeriveFromStruct can publish a field without knowing its element
// type T. OutputCell (cell.go) and InputHandle (input.go) in package node
// are its implementers; this interface exists in attr purely so the derive
// helper can use reflection without importing node (which itself
// imports attr).
type SelfDeclaring interface {
	// DeclareAs publishes the receiver into set under name.
	DeclareAs(set *Set, name string)
}

// DeriveFromStruct is the ergonomic wrapper over add_input/add_output
// that spec §4.8 allows: "a convenience layer may auto-derive
// add_input/add_output for a struct by walking its fields". It adds no
// semantics beyond what hand-written calls already express -- every
// exported field whose address implements SelfDeclaring is declared
// under its Go field name, or the name given by a `graph:"..."` struct
// tag when present.
//
// target must be a pointer to a struct; typically the node itself, since
// in this implementation a node's storage and its OutputCell/InputHandle
// fields live in the same allocation (see DESIGN.md).
func DeriveFromStruct(set *Set, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("attr: DeriveFromStruct: target must be a non-nil pointer, got %T", target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("attr: DeriveFromStruct: target must point to a struct, got %T", target)
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if !fv.CanAddr() {
			continue
		}
		addr := fv.Addr()
		declarer, ok := addr.Interface().(SelfDeclaring)
		if !ok {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("graph"); ok && tag != "" {
			name = tag
		}
		declarer.DeclareAs(set, name)
	}
	return nil
}
