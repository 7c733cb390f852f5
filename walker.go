// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
)

// dumpSession holds the state of one Dump call: the filter, the
// translator/builder pair for the selected mode, and the excluded node.
// Indentation depth is threaded through the recursion as a parameter, not
// stored here, so sessions share nothing and concurrent dumps are safe.
type dumpSession struct {
	filter     *propertyFilter
	translator valueTranslator
	builder    outputBuilder
	excluded   Node
}

// propertyEntry is one surviving property of one node: its name and the
// already-translated value.
type propertyEntry struct {
	name     string
	rendered string
}

// visit emits the events for one node and recurses into its children.
// depth is the node's indentation level; isLast tells the builder whether
// the node closes its sibling list.
func (s *dumpSession) visit(n Node, depth int, isLast bool) {
	if !s.filter.shouldVisitNode(n) {
		return
	}

	children := s.visitableChildren(n)
	properties := s.visibleProperties(n)
	automationID := n.AutomationID()
	hasChildren := len(children) > 0
	hasFields := len(properties) > 0 || automationID != "" || hasChildren

	s.builder.beginNode(depth, n.TypeName(), hasFields)
	for i, p := range properties {
		last := i == len(properties)-1 && automationID == "" && !hasChildren
		s.builder.logProperty(depth+1, p.name, p.rendered, last)
	}
	if automationID != "" {
		// The automation identifier is always the final synthesized field.
		s.builder.logProperty(depth+1, "AutomationId", s.translator.translate(automationID), !hasChildren)
	}
	if hasChildren {
		s.builder.beginChildren(depth + 1)
		for i, c := range children {
			s.visit(c, depth+2, i == len(children)-1)
		}
		s.builder.endChildren(depth + 1)
	}
	s.builder.endNode(depth, isLast)
}

// visitableChildren returns the children that will actually be visited:
// chrome-suppressed nodes, nil nodes, and the excluded node are removed
// before last-sibling indexes are computed, so exclusions never skew the
// punctuation of the survivors.
func (s *dumpSession) visitableChildren(n Node) []Node {
	var out []Node
	for _, c := range n.Children() {
		if !s.filter.shouldVisitNode(c) {
			continue
		}
		if s.excluded != nil && c == s.excluded {
			continue
		}
		out = append(out, c)
	}
	return out
}

// visibleProperties enumerates, reads, translates, filters, and sorts the
// node's properties. A read failure is converted into an "Exception when
// reading ..." sentinel, which the value gate then suppresses; the dump
// continues as if the property did not exist.
func (s *dumpSession) visibleProperties(n Node) []propertyEntry {
	var out []propertyEntry
	for _, name := range n.PropertyNames() {
		if !s.filter.shouldVisitProperty(name) {
			continue
		}
		raw, err := s.readProperty(n, name)
		if err == nil && name == "Name" && s.filter.isSyntheticName(raw) {
			continue
		}
		var rendered string
		if err != nil {
			rendered = exceptionSentinel + " when reading " + name + ": " + err.Error()
		} else {
			rendered = s.translator.translate(raw)
		}
		if !s.filter.shouldVisitPropertyValue(rendered) {
			continue
		}
		out = append(out, propertyEntry{name: name, rendered: rendered})
	}
	slices.SortFunc(out, func(a, b propertyEntry) int {
		return cmp.Compare(a.name, b.name)
	})
	return out
}

// readProperty isolates per-property read failures, converting panics from
// the host's reflection layer into ordinary errors.
func (s *dumpSession) readProperty(n Node, name string) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("%v", r)
		}
	}()
	return n.ReadProperty(name)
}
