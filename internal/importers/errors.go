// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import "errors"

var (
	// ErrNoImporterFound is returned when no registered importer matches a file.
	ErrNoImporterFound = errors.New("no importer found")

	// ErrDuplicateImporter is returned when a name is registered twice.
	ErrDuplicateImporter = errors.New("importer already registered")

	// ErrInvalidRegistration is returned for an empty name or a nil factory.
	ErrInvalidRegistration = errors.New("invalid importer registration")
)
