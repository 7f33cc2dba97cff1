// Copyright (c) 2024 Zededa, Inc.
// SPDX-License-Identifier: Apache-2.0

package attr

import "fmt"

// Kind distinguishes an input port from an output port. Ports are named
// within two separate namespaces per node: a node may declare an input
// and an output under the same name without conflict.
type Kind int

const (
	// Input identifies a port declared with AddInput.
	Input Kind = iota
	// Output identifies a port declared with AddOutput.
	Output
)

// String returns "input" or "output".
func (k Kind) String() string {
	if k == Output {
		return "output"
	}
	return "input"
}

// DuplicatePortError is raised when a node declares two ports of the same
// kind under the same name (§7 DuplicatePort).
type DuplicatePortError struct {
	Kind Kind
	Name string
}

// Error implements the error interface.
func (e *DuplicatePortError) Error() string {
	return fmt.Sprintf("duplicate %s port %q", e.Kind, e.Name)
}

// UnknownRenameError is raised when Rename names a port that was never
// declared (§7 UnknownRename).
type UnknownRenameError struct {
	Kind Kind
	Old  string
}

// Error implements the error interface.
func (e *UnknownRenameError) Error() string {
	return fmt.Sprintf("cannot rename unknown %s port %q", e.Kind, e.Old)
}
