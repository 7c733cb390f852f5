// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treedump produces deterministic, filterable snapshots of a
// hierarchical node tree (typically a UI scene graph) for golden-file
// comparison in automated tests.
//
// Given a root Node, Dump walks the tree depth-first and renders each
// visited node's type name, a filtered and sorted subset of its properties,
// and its children, in one of two formats: an indented key=value text form
// (PlainText) or a JSON document (Structured). Output is byte-for-byte
// stable across runs for the same logical tree, which is what makes the
// snapshots comparable.
//
// The tree itself is owned by the caller and consumed only through the Node
// interface; Dump never mutates it. Each Dump call owns its own session
// state, so concurrent dumps of different (or the same, read-only) trees
// need no coordination. Trees must be acyclic; a cycle manifests as
// unbounded recursion.
package treedump

// Mode selects the output format of a dump.
type Mode uint8

const (
	// PlainText renders an indented, human-readable key=value block per
	// node, with nested "children:" sections.
	PlainText Mode = iota
	// Structured renders a JSON document: one object per node with a
	// "Type" field, one field per visited property, and an optional
	// "children" array.
	Structured
)

// DefaultSyntheticNamePrefix tags Name values injected by interop layers.
// Names carrying this prefix are treated as absent. The prefix is
// environment-specific; override it per dump with WithSyntheticNamePrefix.
const DefaultSyntheticNamePrefix = "#__"

type dumpConfig struct {
	excluded            Node
	extraProperties     []string
	syntheticNamePrefix string
	skippedTypes        []string
}

// Option is an optional argument to Dump.
type Option func(*dumpConfig)

// WithExcluded removes the given node, and its entire subtree, from the
// dump. The node is matched by identity, so the Node implementation must be
// comparable (e.g. a pointer type). Sibling ordering and "last child"
// bookkeeping of the surviving nodes are unaffected.
func WithExcluded(n Node) Option {
	return func(c *dumpConfig) {
		c.excluded = n
	}
}

// WithProperties extends the base property allow-list with additional
// property names. Names already in the base set are harmless no-ops.
func WithProperties(names ...string) Option {
	return func(c *dumpConfig) {
		c.extraProperties = append(c.extraProperties, names...)
	}
}

// WithSyntheticNamePrefix overrides DefaultSyntheticNamePrefix for one dump.
func WithSyntheticNamePrefix(prefix string) Option {
	return func(c *dumpConfig) {
		c.syntheticNamePrefix = prefix
	}
}

// WithSkippedTypes extends the set of node type names that are suppressed
// entirely (the node and its subtree emit nothing).
func WithSkippedTypes(types ...string) Option {
	return func(c *dumpConfig) {
		c.skippedTypes = append(c.skippedTypes, types...)
	}
}

// Dump renders a snapshot of the tree rooted at root in the given mode.
//
// Properties are emitted in byte-wise lexicographic order, restricted to an
// allow-list (see WithProperties) and to values that survive translation:
// empty values, NaN, and values of properties that failed to read are
// omitted. A node carrying an automation identifier always emits it as a
// final synthesized AutomationId field.
func Dump(root Node, mode Mode, opts ...Option) string {
	cfg := dumpConfig{syntheticNamePrefix: DefaultSyntheticNamePrefix}
	for _, o := range opts {
		o(&cfg)
	}
	s := &dumpSession{
		filter:   newPropertyFilter(cfg.extraProperties, cfg.syntheticNamePrefix, cfg.skippedTypes),
		excluded: cfg.excluded,
	}
	switch mode {
	case Structured:
		s.translator = jsonTranslator{}
		s.builder = &jsonBuilder{}
	default:
		s.translator = textTranslator{}
		s.builder = &textBuilder{}
	}
	s.visit(root, 0, true /* isLast */)
	return s.builder.render()
}
