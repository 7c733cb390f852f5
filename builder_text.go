// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import "strings"

// textBuilder renders the PlainText format: one indented line per node type
// name, one "name=value" line per property, and a "children:" section
// introducing nested nodes. Punctuation flags are irrelevant here, so most
// events reduce to a single line append.
type textBuilder struct {
	buf strings.Builder
}

var _ outputBuilder = (*textBuilder)(nil)

func (b *textBuilder) beginNode(depth int, typeName string, _ bool) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString(typeName)
	b.buf.WriteByte('\n')
}

func (b *textBuilder) logProperty(depth int, name, rendered string, _ bool) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString(name)
	b.buf.WriteByte('=')
	b.buf.WriteString(rendered)
	b.buf.WriteByte('\n')
}

func (b *textBuilder) beginChildren(depth int) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString("children:\n")
}

func (b *textBuilder) endChildren(int) {}

func (b *textBuilder) endNode(int, bool) {}

func (b *textBuilder) render() string {
	return b.buf.String()
}
