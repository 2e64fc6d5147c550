// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fields defines a declarative model of editable settings,
// organized as a tree of nodes containing typed fields. A UI layer
// renders the tree as a property panel and routes user edits back to
// the producing component as [Action] values. The model carries no
// rendering logic of its own.
package fields

// Type is the kind of value a [Field] edits, which determines the
// widget a UI layer renders for it.
type Type string

const (
	// Number is a floating point value, optionally bounded by Min and Max.
	Number Type = "number"

	// Toggle is a boolean value.
	Toggle Type = "toggle"

	// String is a free-form text value.
	String Type = "string"

	// Select is a string value restricted to one of Options.
	Select Type = "select"

	// RGBA is a color value expressed as a named or hex color string.
	RGBA Type = "rgba"

	// Vec2 is a pair of floating point values.
	Vec2 Type = "vec2"

	// Vec3 is a triple of floating point values.
	Vec3 Type = "vec3"
)

// Option is one selectable entry for a [Select] field.
type Option struct {
	// Label is the text shown to the user.
	Label string

	// Value is the value stored when this option is selected.
	Value string
}

// Field is a single editable input within a [Node].
type Field struct {
	// Key identifies the field within its node. It is the final
	// segment of the [Action] path for edits to this field.
	Key string

	// Type is the kind of value this field edits.
	Type Type

	// Label is the display label; if empty, UIs derive one from Key.
	Label string

	// Value is the current value.
	Value any

	// Min, Max, and Step bound and quantize [Number] fields.
	// They are ignored when both Min and Max are zero.
	Min, Max, Step float32

	// Precision is the number of decimal places shown for numbers.
	Precision int

	// Options is the list of choices for [Select] fields.
	Options []Option

	// Placeholder is shown when the value is empty.
	Placeholder string

	// Disabled renders the field read-only. This is purely a UI
	// affordance; the value remains part of the settings record.
	Disabled bool
}

// NodeAction is an operation a UI can offer on a whole node,
// such as deleting a layer.
type NodeAction struct {
	// Name identifies the action, e.g. "delete".
	Name string

	// Label is the display label.
	Label string
}

// Node is one entry in a settings tree: an ordered list of fields,
// child nodes, and node-level actions.
type Node struct {
	// Key identifies the node within its parent. The path of keys
	// from the root identifies the node in an [Action].
	Key string

	// Label is the display label for the node.
	Label string

	// Fields are the editable fields of this node, in display order.
	Fields []Field

	// Children are the child nodes, in display order.
	Children []Node

	// Actions are the node-level actions offered by the UI.
	Actions []NodeAction

	// Error is an optional error message displayed on the node.
	Error string
}

// Child returns the child node with the given key, or nil if absent.
func (n *Node) Child(key string) *Node {
	for i := range n.Children {
		if n.Children[i].Key == key {
			return &n.Children[i]
		}
	}
	return nil
}

// Field returns the field with the given key, or nil if absent.
func (n *Node) Field(key string) *Field {
	for i := range n.Fields {
		if n.Fields[i].Key == key {
			return &n.Fields[i]
		}
	}
	return nil
}
