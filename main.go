// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for passpie.
//
// Usage:
//
//	go run . import <path>
//	./passpie importers
package main

import (
	"os"

	"github.com/vitalk/passpie/internal/logging"
	"github.com/vitalk/passpie/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
