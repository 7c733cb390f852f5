// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treedump"
	"github.com/spf13/cobra"
)

// findCmd implements the find command: locate a node by automation id in a
// JSON snapshot.
type findCmd struct {
	root *cobra.Command
}

func newFindCmd() *findCmd {
	c := &findCmd{}
	c.root = &cobra.Command{
		Use:   "find <json-file> <automation-id>",
		Short: "find a node by automation id in a JSON snapshot",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	return c
}

func (c *findCmd) run(cmd *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	node, ok := treedump.FindByAutomationID(doc, args[1])
	if !ok {
		return errors.Errorf("no node with automation id %q", args[1])
	}
	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
	return nil
}
