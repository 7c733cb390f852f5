// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/treedump"
	"github.com/cockroachdb/treedump/internal/fixturetree"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestFindByAutomationID(t *testing.T) {
	root, err := fixturetree.ParseOne(strings.Join([]string{
		"Window Width=800.0",
		" StackPanel",
		"  Button @btn1 Text=OK",
		"  Button @btn2 Text=Cancel",
	}, "\n"))
	require.NoError(t, err)
	doc := []byte(treedump.Dump(root, treedump.Structured))

	node, ok := treedump.FindByAutomationID(doc, "btn1")
	require.True(t, ok)
	want := map[string]any{
		"Type":         "Button",
		"Text":         "OK",
		"AutomationId": "btn1",
	}
	require.Empty(t, strings.Join(pretty.Diff(want, node), "\n"))

	// The root matches without descending.
	rootDoc := []byte(`{"AutomationId": "top", "children": []}`)
	node, ok = treedump.FindByAutomationID(rootDoc, "top")
	require.True(t, ok)
	require.Equal(t, "top", node["AutomationId"])

	// Absent ids and non-JSON documents yield no match.
	_, ok = treedump.FindByAutomationID(doc, "nope")
	require.False(t, ok)
	_, ok = treedump.FindByAutomationID([]byte("Window\n  Width=800\n"), "btn1")
	require.False(t, ok)
}
