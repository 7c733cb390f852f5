// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fixturetree

import "github.com/cockroachdb/treedump"

// Node is a parsed fixture node. It implements treedump.Node.
type Node struct {
	typeName     string
	automationID string
	properties   []property
	children     []*Node
}

type property struct {
	name  string
	value any
	// err simulates a property that fails to read (the !err: literal).
	err error
}

var _ treedump.Node = (*Node)(nil)

// TypeName implements treedump.Node.
func (n *Node) TypeName() string { return n.typeName }

// Children implements treedump.Node.
func (n *Node) Children() []treedump.Node {
	out := make([]treedump.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// PropertyNames implements treedump.Node.
func (n *Node) PropertyNames() []string {
	out := make([]string, len(n.properties))
	for i, p := range n.properties {
		out[i] = p.name
	}
	return out
}

// ReadProperty implements treedump.Node.
func (n *Node) ReadProperty(name string) (any, error) {
	for _, p := range n.properties {
		if p.name == name {
			return p.value, p.err
		}
	}
	return nil, nil
}

// AutomationID implements treedump.Node.
func (n *Node) AutomationID() string { return n.automationID }

// FindAutomationID returns the first node in the subtree with the given
// automation id, in depth-first order, or nil.
func (n *Node) FindAutomationID(id string) *Node {
	if n.automationID == id {
		return n
	}
	for _, c := range n.children {
		if found := c.FindAutomationID(id); found != nil {
			return found
		}
	}
	return nil
}
