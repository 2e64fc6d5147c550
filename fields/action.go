// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

// ActionKind discriminates the two shapes of [Action].
type ActionKind int32

const (
	// UpdateAction sets a single field value at Path.
	UpdateAction ActionKind = iota

	// NodeActionKind invokes a named node-level action at Path.
	NodeActionKind
)

// actionKindNames is the manual String table for ActionKind.
var actionKindNames = []string{"update", "node-action"}

func (ak ActionKind) String() string {
	if ak < 0 || int(ak) >= len(actionKindNames) {
		return "invalid"
	}
	return actionKindNames[ak]
}

// Action is an edit request routed from a settings UI back to the
// component that produced the tree. It has exactly two shapes:
// a field update carrying a Path to the field and a new Value, and
// a node action carrying a Path to the node and the action Name.
type Action struct {
	// Kind is the shape of this action.
	Kind ActionKind

	// Path is the sequence of node keys from the root; for
	// [UpdateAction] the final segment is the field key.
	Path []string

	// Value is the new field value for [UpdateAction].
	Value any

	// Name is the node action name for [NodeActionKind].
	Name string
}

// Update returns a field update action for the given path and value.
func Update(path []string, value any) Action {
	return Action{Kind: UpdateAction, Path: path, Value: value}
}

// NodeAct returns a node action for the given path and action name.
func NodeAct(path []string, name string) Action {
	return Action{Kind: NodeActionKind, Path: path, Name: name}
}
