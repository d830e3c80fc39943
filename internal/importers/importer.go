// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import "github.com/vitalk/passpie/internal/logging"

// Importer is the contract every format handler implements.
type Importer interface {
	// Match reports whether path holds a document in the handler's format.
	// It never returns an error: unreadable or malformed files are a
	// negative result.
	Match(path string) bool

	// Handle reads path and returns the credentials stored in it. It is only
	// meant to be called after Match succeeded for the same path.
	Handle(path string) (Credentials, error)

	// Log emits a diagnostic message at debug level.
	Log(message string)
}

// Credentials carries the credentials value of a source document exactly as
// it was decoded. Exports hold either a mapping of record name to fields or a
// sequence of field mappings; Raw returns whichever the file had. Ownership
// passes to the caller; this package never touches the value again after
// Handle returns it.
type Credentials struct {
	raw any
}

// NewCredentials wraps a decoded value without copying it.
func NewCredentials(raw any) Credentials {
	return Credentials{raw: raw}
}

// Raw returns the wrapped value.
func (c Credentials) Raw() any {
	return c.raw
}

// Len reports the number of records held by a mapping or a sequence. Any
// other value counts as zero.
func (c Credentials) Len() int {
	switch v := c.raw.(type) {
	case map[string]any:
		return len(v)
	case []any:
		return len(v)
	}
	return 0
}

// Base provides the shared diagnostic logging for importers. Embed it to
// satisfy the Log part of Importer.
type Base struct{}

// Log forwards message verbatim to the process-wide logger at debug level.
func (Base) Log(message string) {
	logging.Debug(message)
}
