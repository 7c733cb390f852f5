// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump_test

import (
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/treedump"
	"github.com/cockroachdb/treedump/internal/fixturetree"
)

// TestDump runs the datadriven dump suites. Each file defines fixture trees
// and compares snapshots against golden output.
//
// Commands:
//
//	define
//	<indented tree fixture>
//	  Parses a fixture tree (see fixturetree) used by subsequent dumps.
//
//	dump [format=(text|json)] [properties=(a,b,...)] [exclude=<automation-id>]
//	     [skip-types=(T1,T2,...)] [synthetic-prefix=<prefix>]
//	  Dumps the current tree and returns the snapshot.
func TestDump(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var root *fixturetree.Node
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "define":
				var err error
				root, err = fixturetree.ParseOne(td.Input)
				if err != nil {
					td.Fatalf(t, "%v", err)
				}
				return ""

			case "dump":
				if root == nil {
					td.Fatalf(t, "dump without a preceding define")
				}
				mode := treedump.PlainText
				var opts []treedump.Option
				for _, arg := range td.CmdArgs {
					switch arg.Key {
					case "format":
						switch arg.Vals[0] {
						case "text":
							mode = treedump.PlainText
						case "json":
							mode = treedump.Structured
						default:
							td.Fatalf(t, "unknown format %q", arg.Vals[0])
						}
					case "properties":
						opts = append(opts, treedump.WithProperties(arg.Vals...))
					case "exclude":
						excluded := root.FindAutomationID(arg.Vals[0])
						if excluded == nil {
							td.Fatalf(t, "no node with automation id %q", arg.Vals[0])
						}
						opts = append(opts, treedump.WithExcluded(excluded))
					case "skip-types":
						opts = append(opts, treedump.WithSkippedTypes(arg.Vals...))
					case "synthetic-prefix":
						opts = append(opts, treedump.WithSyntheticNamePrefix(arg.Vals[0]))
					default:
						td.Fatalf(t, "unknown argument %q", arg.Key)
					}
				}
				return treedump.Dump(root, mode, opts...)

			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			}
		})
	})
}
