// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package attr

import "reflect"

// TypeID is a per-process stable identity token for a static Go type T.
// The Builder compares these tokens when wiring an input to an output so
// that no generic monomorphization has to leak into the graph container
// (see DESIGN NOTES, "Reflection-style type identity"). Two TypeIDs
// obtained for the same T always compare equal; reflect.Type values are
// already canonicalized by the runtime, so no separate minting registry
// is required.
type TypeID struct {
	rt reflect.Type
}

// TypeIDFor mints (or rather, looks up) the TypeID for T.
func TypeIDFor[T any]() TypeID {
	return TypeID{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// Equal reports whether id and other identify the same static type.
func (id TypeID) Equal(other TypeID) bool {
	return id.rt == other.rt
}

// String returns a human-readable name for the type, used in diagnostic
// messages (e.g. TypeMismatch).
func (id TypeID) String() string {
	if id.rt == nil {
		return "<untyped>"
	}
	return id.rt.String()
}
