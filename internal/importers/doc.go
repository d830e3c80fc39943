// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package importers discovers which registered format handler understands a
// given export file and delegates credential extraction to it.
//
// Every handler implements Importer. Match is a cheap check that never fails
// loudly; Handle is the trusted extraction step that callers run only after a
// successful Match on the same path. Handlers are kept in a Registry whose
// insertion order is the priority order: FindImporter returns the first
// handler that matches and never considers later ones.
//
// Built-in handlers are registered when the package is initialised. Other
// packages contribute handlers by calling Register from their own init
// functions, which places them after the built-ins.
package importers
