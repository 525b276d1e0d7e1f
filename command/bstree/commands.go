// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup command handler
//
// commands that do not need the configuration file; returns false if
// the first argument is not one of them, so that the arguments can be
// treated as tree operations
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [operation...]\n", program)
		fmt.Printf("\n")
		fmt.Printf("setup commands:\n")
		fmt.Printf("  help                 - display this message\n")
		fmt.Printf("  version              - display the program version\n")
		fmt.Printf("\n")
		fmt.Printf("operations (run in order after the configured keys are inserted):\n")
		fmt.Printf("  insert:KEY           - add a key, false if already present\n")
		fmt.Printf("  remove:KEY           - delete a key, false if not present\n")
		fmt.Printf("  has:KEY              - true if the key is present\n")
		fmt.Printf("  preorder[:KEY]       - node, left, right\n")
		fmt.Printf("  inorder[:KEY]        - ascending keys\n")
		fmt.Printf("  reverse[:KEY]        - descending keys\n")
		fmt.Printf("  postorder[:KEY]      - left, right, node\n")
		fmt.Printf("  levels[:KEY]         - keys grouped by depth\n")
		fmt.Printf("  min[:KEY]            - lowest key\n")
		fmt.Printf("  max[:KEY]            - highest key\n")
		fmt.Printf("  count                - number of keys\n")
		fmt.Printf("  height               - number of levels\n")
		fmt.Printf("  check                - verify ordering and count\n")
		fmt.Printf("  print                - ASCII drawing of the tree\n")
		fmt.Printf("\n")
		fmt.Printf("a KEY on a traversal, min or max starts from the sub-tree rooted at that key\n")
		fmt.Printf("with no operations \"inorder\" is run\n")

	default:
		return false
	}
	return true
}
