// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import "reflect"

// Node is the capability contract the host tree exposes to the dumper. The
// dumper never mutates a node; it only reads type names, children, and
// properties. Implementations must be comparable (identity equality is used
// to match the node passed to WithExcluded), which in practice means
// pointer receivers.
type Node interface {
	// TypeName returns the node's type name, e.g. "Button".
	TypeName() string

	// Children returns the node's children in order. May be empty. Nil
	// entries (including typed nil pointers) are skipped by the dumper.
	Children() []Node

	// PropertyNames returns the names of the node's reflectable properties.
	// Order is irrelevant; the dumper sorts what it keeps.
	PropertyNames() []string

	// ReadProperty performs a best-effort read of one property. A failed
	// read (error or panic) is absorbed by the dumper and the property is
	// omitted from the snapshot; it never aborts the dump.
	ReadProperty(name string) (any, error)

	// AutomationID returns the node's automation/accessibility identifier,
	// or "" if it has none.
	AutomationID() string
}

// isNilNode reports whether n is nil or a typed nil pointer boxed in the
// interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	if val := reflect.ValueOf(n); val.Kind() == reflect.Ptr && val.IsNil() {
		return true
	}
	return false
}

// Color is an ARGB color property value. It renders canonically as
// "#AARRGGBB".
type Color struct {
	A, R, G, B uint8
}

// String returns the canonical "#AARRGGBB" form.
func (c Color) String() string {
	const hex = "0123456789ABCDEF"
	b := [9]byte{'#',
		hex[c.A>>4], hex[c.A&0xf],
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	}
	return string(b[:])
}

// Size is a 2D extent property value. Snapshots render only the truncated
// integer components: fractional parts vary across renders and platforms
// and cannot appear in comparable output.
type Size struct {
	Width, Height float64
}

// TextRange is a span within a text property, in code units.
type TextRange struct {
	StartIndex, Length int
}

// HighlightedRanges is a text highlight: a background (typically a Color)
// applied to a set of ranges.
type HighlightedRanges struct {
	Background any
	Ranges     []TextRange
}
