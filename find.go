// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import "encoding/json"

// FindByAutomationID searches a Structured-mode dump for the first node
// whose AutomationId equals id, in depth-first order. It returns the node's
// object (as decoded by encoding/json) and whether a match was found. A doc
// that is not valid JSON yields no match.
func FindByAutomationID(doc []byte, id string) (map[string]any, bool) {
	var root map[string]any
	if err := json.Unmarshal(doc, &root); err != nil {
		return nil, false
	}
	return findByAutomationID(root, id)
}

func findByAutomationID(node map[string]any, id string) (map[string]any, bool) {
	if node["AutomationId"] == id {
		return node, true
	}
	children, _ := node["children"].([]any)
	for _, c := range children {
		child, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if found, ok := findByAutomationID(child, id); ok {
			return found, true
		}
	}
	return nil, false
}
