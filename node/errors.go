// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package node

import "fmt"

// UnboundInputReadError is raised when an InputHandle is read before the
// GraphBuilder has bound it (§7 UnboundInputRead). Go has no separate
// debug/release build mode, so unlike the spec's C++/Rust-oriented
// phrasing ("must be caught by debug assertion ... unspecified in
// release"), this implementation always panics: there is no unsafe
// "read zero-initialized memory" mode to opt into (see DESIGN.md, Open
// Questions).
type UnboundInputReadError struct {
	// Name is the input's declared (possibly renamed) reference string,
	// when known to the caller; may be empty if read directly off an
	// InputHandle that was never attached to a Set.
	Name string
}

// Error implements the error interface.
func (e *UnboundInputReadError) Error() string {
	if e.Name == "" {
		return "read of unbound input"
	}
	return fmt.Sprintf("read of unbound input %q", e.Name)
}

// alreadyBoundError is raised on a double-bind attempt. Not one of the
// six named kinds in spec §7 (the spec only calls it out as "Invalid
// transitions ... are programmer errors"); it shares their panic
// discipline anyway.
type alreadyBoundError struct {
	Name string
}

// Error implements the error interface.
func (e *alreadyBoundError) Error() string {
	return fmt.Sprintf("input %q is already bound", e.Name)
}

// typeAssertionError guards Bind's type assertion. It should never
// actually surface: the GraphBuilder compares attr.TypeID tokens before
// calling Bind, so a mismatch here would indicate a bug in the Builder
// itself rather than anything a node author did.
type typeAssertionError struct {
	Name string
	want string
}

// Error implements the error interface.
func (e *typeAssertionError) Error() string {
	return fmt.Sprintf("internal: bind type assertion failed for input %q, expected *%s", e.Name, e.want)
}
