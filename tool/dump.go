// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treedump"
	"github.com/cockroachdb/treedump/internal/fixturetree"
	"github.com/spf13/cobra"
)

// dumpCmd implements the dump command: parse a fixture file and print its
// snapshot.
type dumpCmd struct {
	root *cobra.Command

	// Flags.
	format        string
	addProperties []string
	excludeID     string
	skipTypes     []string
	namePrefix    string
}

func newDumpCmd() *dumpCmd {
	c := &dumpCmd{}
	c.root = &cobra.Command{
		Use:   "dump <fixture-file>",
		Short: "print a snapshot of a fixture-defined tree",
		Long: `
Parses an indentation-defined tree fixture and prints its snapshot in text
or JSON form.
`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	c.root.Flags().StringVarP(
		&c.format, "format", "f", "text", "output format (text or json)")
	c.root.Flags().StringArrayVar(
		&c.addProperties, "add-property", nil, "additional property name to capture (repeatable)")
	c.root.Flags().StringVar(
		&c.excludeID, "exclude-automation-id", "", "exclude the node (and subtree) with this automation id")
	c.root.Flags().StringArrayVar(
		&c.skipTypes, "skip-type", nil, "additional node type to suppress (repeatable)")
	c.root.Flags().StringVar(
		&c.namePrefix, "synthetic-name-prefix", treedump.DefaultSyntheticNamePrefix,
		"Name values with this prefix are treated as absent")
	return c
}

func (c *dumpCmd) run(cmd *cobra.Command, args []string) error {
	var mode treedump.Mode
	switch c.format {
	case "text":
		mode = treedump.PlainText
	case "json":
		mode = treedump.Structured
	default:
		return errors.Errorf("unknown format %q (expected text or json)", c.format)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	root, err := fixturetree.ParseOne(string(data))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", args[0])
	}
	opts := []treedump.Option{
		treedump.WithProperties(c.addProperties...),
		treedump.WithSkippedTypes(c.skipTypes...),
		treedump.WithSyntheticNamePrefix(c.namePrefix),
	}
	if c.excludeID != "" {
		excluded := root.FindAutomationID(c.excludeID)
		if excluded == nil {
			return errors.Errorf("no node with automation id %q", c.excludeID)
		}
		opts = append(opts, treedump.WithExcluded(excluded))
	}
	fmt.Fprint(cmd.OutOrStdout(), treedump.Dump(root, mode, opts...))
	return nil
}
