// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import "strings"

// outputBuilder is an append-only structural sink. The walker drives it
// with a strictly nested event sequence: every beginNode is matched by
// exactly one endNode, with that node's property events and at most one
// children block in between. Structural flags (hasFields, isLast) only
// steer punctuation; they never appear in the output.
//
// render is called once, after traversal completes. The accumulated
// document is immutable from then on.
type outputBuilder interface {
	beginNode(depth int, typeName string, hasFields bool)
	logProperty(depth int, name, rendered string, isLast bool)
	beginChildren(depth int)
	endChildren(depth int)
	endNode(depth int, isLast bool)
	render() string
}

const indentStep = "  "

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentStep)
	}
}
