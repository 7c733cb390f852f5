// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubNode is a minimal in-package Node implementation for walker and
// filter tests.
type stubNode struct {
	typeName     string
	automationID string
	names        []string
	values       map[string]any
	panics       map[string]string
	children     []Node
}

var _ Node = (*stubNode)(nil)

func (n *stubNode) TypeName() string        { return n.typeName }
func (n *stubNode) Children() []Node        { return n.children }
func (n *stubNode) PropertyNames() []string { return n.names }
func (n *stubNode) AutomationID() string    { return n.automationID }

func (n *stubNode) ReadProperty(name string) (any, error) {
	if msg, ok := n.panics[name]; ok {
		panic(msg)
	}
	return n.values[name], nil
}

// A property read that panics is absorbed: the property vanishes and the
// rest of the node is unaffected.
func TestDumpReadPanic(t *testing.T) {
	root := &stubNode{
		typeName: "Widget",
		names:    []string{"Width", "Text"},
		values:   map[string]any{"Text": "ok"},
		panics:   map[string]string{"Width": "host reflection failure"},
	}
	require.Equal(t, "Widget\n  Text=ok\n", Dump(root, PlainText))
	require.Equal(t, "{\n  \"Type\": \"Widget\",\n  \"Text\": \"ok\"\n}\n", Dump(root, Structured))
}

// A nil child (typed or untyped) is skipped without emitting events and
// without counting toward sibling punctuation.
func TestDumpNilChildren(t *testing.T) {
	var typedNil *stubNode
	root := &stubNode{
		typeName: "Panel",
		children: []Node{
			nil,
			&stubNode{typeName: "Button", automationID: "a"},
			typedNil,
		},
	}
	require.Equal(t, `{
  "Type": "Panel",
  "children": [
    {
      "Type": "Button",
      "AutomationId": "a"
    }
  ]
}
`, Dump(root, Structured))
}

// Non-finite numeric properties vanish like NaN; in particular infinities
// must never leak an unquoted non-JSON token into Structured output.
func TestDumpNonFinite(t *testing.T) {
	root := &stubNode{
		typeName: "Widget",
		names:    []string{"Width", "Height", "Opacity"},
		values: map[string]any{
			"Width":   math.Inf(1),
			"Height":  math.Inf(-1),
			"Opacity": 0.5,
		},
	}
	require.Equal(t, "Widget\n  Opacity=0.5\n", Dump(root, PlainText))
	out := Dump(root, Structured)
	require.Equal(t, "{\n  \"Type\": \"Widget\",\n  \"Opacity\": 0.5\n}\n", out)
	require.True(t, json.Valid([]byte(out)))
}

// A nil root produces an empty dump.
func TestDumpNilRoot(t *testing.T) {
	require.Equal(t, "", Dump(nil, PlainText))
	require.Equal(t, "", Dump(nil, Structured))
}

// Dumping the same tree repeatedly yields byte-identical output.
func TestDumpRepeatable(t *testing.T) {
	root := &stubNode{
		typeName: "Window",
		names:    []string{"Width", "Height", "Text"},
		values:   map[string]any{"Width": 800.0, "Height": 600.0, "Text": "hi"},
		children: []Node{
			&stubNode{typeName: "Button", automationID: "ok"},
		},
	}
	for _, mode := range []Mode{PlainText, Structured} {
		first := Dump(root, mode)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, Dump(root, mode))
		}
	}
}
