// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the treedump command-line tool: snapshotting
// fixture-defined trees and searching structured snapshots.
package tool

import "github.com/spf13/cobra"

// T is the treedump tool.
type T struct {
	// Root is the root cobra command, exposed so embedders can add their
	// own subcommands.
	Root *cobra.Command
}

// New creates a new tool instance.
func New() *T {
	t := &T{
		Root: &cobra.Command{
			Use:   "treedump [command] (flags)",
			Short: "tree snapshot tool",
		},
	}
	t.Root.AddCommand(
		newDumpCmd().root,
		newFindCmd().root,
	)
	return t
}
