// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertyFilterNames(t *testing.T) {
	f := newPropertyFilter(nil, DefaultSyntheticNamePrefix, nil)
	require.True(t, f.shouldVisitProperty("Width"))
	require.True(t, f.shouldVisitProperty("Text"))
	require.False(t, f.shouldVisitProperty("ZIndex"))

	f = newPropertyFilter([]string{"ZIndex", "Width"}, DefaultSyntheticNamePrefix, nil)
	require.True(t, f.shouldVisitProperty("ZIndex"))
	// Re-adding a base name is a harmless no-op.
	require.True(t, f.shouldVisitProperty("Width"))
}

func TestPropertyFilterValues(t *testing.T) {
	f := newPropertyFilter(nil, DefaultSyntheticNamePrefix, nil)
	require.True(t, f.shouldVisitPropertyValue("100"))
	require.True(t, f.shouldVisitPropertyValue("[NULL]"))
	require.True(t, f.shouldVisitPropertyValue(`"NaN"`))
	require.False(t, f.shouldVisitPropertyValue(""))
	require.False(t, f.shouldVisitPropertyValue("NaN"))
	require.False(t, f.shouldVisitPropertyValue("+Inf"))
	require.False(t, f.shouldVisitPropertyValue("-Inf"))
	require.False(t, f.shouldVisitPropertyValue("Exception when reading Width: boom"))
}

func TestPropertyFilterNodes(t *testing.T) {
	f := newPropertyFilter(nil, DefaultSyntheticNamePrefix, []string{"Popup"})
	require.False(t, f.shouldVisitNode(nil))
	var typedNil *stubNode
	require.False(t, f.shouldVisitNode(typedNil))
	require.True(t, f.shouldVisitNode(&stubNode{typeName: "Button"}))
	require.False(t, f.shouldVisitNode(&stubNode{typeName: "ScrollBarThumb"}))
	require.False(t, f.shouldVisitNode(&stubNode{typeName: "Popup"}))
}

func TestSyntheticNames(t *testing.T) {
	f := newPropertyFilter(nil, DefaultSyntheticNamePrefix, nil)
	require.True(t, f.isSyntheticName(""))
	require.True(t, f.isSyntheticName("#__anon7"))
	require.False(t, f.isSyntheticName("header"))
	require.False(t, f.isSyntheticName(42))

	f = newPropertyFilter(nil, "tmp_", nil)
	require.True(t, f.isSyntheticName("tmp_7"))
	require.False(t, f.isSyntheticName("#__anon7"))
}
