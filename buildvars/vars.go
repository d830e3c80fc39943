// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars holds release metadata stamped in by the linker. It has
// no dependencies so any package, including main, can read it.
package buildvars

// Version is the release string. Release builds set it with
//
//	go build -ldflags "-X github.com/vitalk/passpie/buildvars.Version=v2.0.0"
//
// and it stays empty otherwise.
var Version string

// VersionOrDefault returns the stamped Version, or def for unstamped builds
// such as `go run` and tests.
func VersionOrDefault(def string) string {
	if Version == "" {
		return def
	}
	return Version
}
