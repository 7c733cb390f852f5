// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import "strings"

// baseProperties is the fixed allow-list of property names worth dumping:
// geometry, visibility, alignment, brushes, border, text, name. Callers
// extend it per dump via WithProperties.
var baseProperties = []string{
	"Background",
	"BorderBrush",
	"BorderThickness",
	"CornerRadius",
	"DesiredSize",
	"Foreground",
	"Height",
	"HorizontalAlignment",
	"Margin",
	"Name",
	"Opacity",
	"Padding",
	"RenderSize",
	"Text",
	"VerticalAlignment",
	"Visibility",
	"Width",
}

// baseSkippedTypes lists node types that are structural chrome in the host
// tree (scrollbar internals) and never contribute signal to a snapshot.
var baseSkippedTypes = []string{
	"ScrollBar",
	"ScrollBarButton",
	"ScrollBarThumb",
	"ScrollBarTrack",
}

// exceptionSentinel prefixes the diagnostic value substituted for a
// property that failed to read. shouldVisitPropertyValue filters it out, so
// unreadable properties vanish from the snapshot instead of aborting it.
const exceptionSentinel = "Exception"

// propertyFilter decides what is worth dumping: which property names, which
// rendered values, and which nodes. One filter serves one dump session.
type propertyFilter struct {
	allowed             map[string]struct{}
	skippedTypes        map[string]struct{}
	syntheticNamePrefix string
}

func newPropertyFilter(extra []string, syntheticNamePrefix string, skipTypes []string) *propertyFilter {
	f := &propertyFilter{
		allowed:             make(map[string]struct{}, len(baseProperties)+len(extra)),
		skippedTypes:        make(map[string]struct{}, len(baseSkippedTypes)+len(skipTypes)),
		syntheticNamePrefix: syntheticNamePrefix,
	}
	for _, name := range baseProperties {
		f.allowed[name] = struct{}{}
	}
	for _, name := range extra {
		f.allowed[name] = struct{}{}
	}
	for _, t := range baseSkippedTypes {
		f.skippedTypes[t] = struct{}{}
	}
	for _, t := range skipTypes {
		f.skippedTypes[t] = struct{}{}
	}
	return f
}

func (f *propertyFilter) shouldVisitProperty(name string) bool {
	_, ok := f.allowed[name]
	return ok
}

// shouldVisitPropertyValue gates on the already-translated string rather
// than the raw value, so the policy is independent of the output format.
// Non-finite floats ("NaN", "+Inf", "-Inf") are dropped: they carry no
// comparable signal and are not valid JSON tokens.
func (f *propertyFilter) shouldVisitPropertyValue(rendered string) bool {
	switch rendered {
	case "", "NaN", "+Inf", "-Inf":
		return false
	}
	return !strings.HasPrefix(rendered, exceptionSentinel)
}

// shouldVisitNode reports whether the node should appear in the dump at
// all. Nil nodes and chrome types are suppressed along with their subtrees.
func (f *propertyFilter) shouldVisitNode(n Node) bool {
	if isNilNode(n) {
		return false
	}
	_, skip := f.skippedTypes[n.TypeName()]
	return !skip
}

// isSyntheticName reports whether a raw Name value should be treated as
// absent: empty, or tagged with the interop layer's synthetic prefix. This
// runs on the raw value because the generic value gate only ever sees the
// translated string (which, in Structured mode, is quoted and never empty).
func (f *propertyFilter) isSyntheticName(raw any) bool {
	s, ok := raw.(string)
	if !ok {
		return false
	}
	return s == "" || (f.syntheticNamePrefix != "" && strings.HasPrefix(s, f.syntheticNamePrefix))
}
