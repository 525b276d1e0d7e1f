// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/keys"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	initialKeys, err := keys.ParseList(theConfiguration.KeyType, theConfiguration.Keys)
	if nil != err {
		log.Criticalf("initial keys error: %s", err)
		exitwithstatus.Message("%s: initial keys error: %s", program, err)
	}

	tree := bst.New()
	defer tree.Clear()

	for _, key := range initialKeys {
		if !tree.Insert(key) {
			log.Warnf("initial key: %v is duplicated", key)
		}
	}
	log.Infof("key type: %s  initial keys: %d  tree count: %d", theConfiguration.KeyType, len(initialKeys), tree.Count())

	if 0 == len(arguments) {
		arguments = []string{opInOrder}
	}

	results, err := runOperations(tree, theConfiguration.KeyType, arguments, logger.New("script"))
	for _, r := range results {
		printJson(os.Stdout, "", r, !quiet)
	}

	if verbose && !quiet {
		tree.Print(os.Stdout)
	}

	if nil != err {
		exitwithstatus.Message("%s: operation: %q failed: %s", program, arguments[len(results)], err)
	}
}
