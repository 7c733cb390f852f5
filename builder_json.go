// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import (
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
)

// jsonBuilder renders the Structured format: a JSON object per node with a
// "Type" field first, one field per visited property, and an optional
// "children" array. Property values arrive pre-rendered as complete JSON
// tokens, so assembly is purely structural; the isLast flags decide comma
// placement and nothing else.
type jsonBuilder struct {
	buf strings.Builder
}

var _ outputBuilder = (*jsonBuilder)(nil)

func (b *jsonBuilder) beginNode(depth int, typeName string, hasFields bool) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString("{\n")
	writeIndent(&b.buf, depth+1)
	b.buf.WriteString(`"Type": `)
	b.buf.WriteString(quoteJSON(typeName))
	b.buf.WriteString(crstrings.If(hasFields, ","))
	b.buf.WriteByte('\n')
}

func (b *jsonBuilder) logProperty(depth int, name, rendered string, isLast bool) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString(quoteJSON(name))
	b.buf.WriteString(": ")
	b.buf.WriteString(rendered)
	b.buf.WriteString(crstrings.If(!isLast, ","))
	b.buf.WriteByte('\n')
}

func (b *jsonBuilder) beginChildren(depth int) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString("\"children\": [\n")
}

func (b *jsonBuilder) endChildren(depth int) {
	writeIndent(&b.buf, depth)
	b.buf.WriteString("]\n")
}

func (b *jsonBuilder) endNode(depth int, isLast bool) {
	writeIndent(&b.buf, depth)
	b.buf.WriteByte('}')
	b.buf.WriteString(crstrings.If(!isLast, ","))
	b.buf.WriteByte('\n')
}

func (b *jsonBuilder) render() string {
	return b.buf.String()
}
