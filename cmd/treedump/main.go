// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/treedump/tool"
)

func main() {
	log.SetFlags(0)

	t := tool.New()
	if err := t.Root.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
