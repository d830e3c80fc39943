// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Handler is the handler tag written by passpie's own exporter.
const Handler = "passpie"

const (
	handlerKey     = "handler"
	versionKey     = "version"
	credentialsKey = "credentials"
)

// Document is a parsed export file.
type Document map[string]any

// Seams for tests. Repeated keys are accepted and the last one wins, so two
// records sharing a name collapse into one instead of failing the parse.
var (
	openFile      = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	unmarshalYAML = func(data []byte, v any) error {
		return yaml.UnmarshalWithOptions(data, v, yaml.AllowDuplicateMapKey())
	}
)

// DefaultImporter reads files produced by passpie's own export command: a
// YAML mapping with a "handler" tag, a floating point "version" and the
// records under "credentials".
type DefaultImporter struct {
	Base
}

// Match reports whether path is a passpie export. The version must decode as
// a float; 1 or "1.0" are rejected because other tools write those.
func (d *DefaultImporter) Match(path string) bool {
	doc, err := loadDocument(path)
	if err != nil {
		d.Log(fmt.Sprintf("default importer: %v", err))
		return false
	}

	if tag, ok := doc[handlerKey].(string); !ok || tag != Handler {
		d.Log(fmt.Sprintf("default importer: %s: handler is %v, want %q", path, doc[handlerKey], Handler))
		return false
	}

	if _, ok := doc[versionKey].(float64); !ok {
		d.Log(fmt.Sprintf("default importer: %s: version %v (%T) is not a float", path, doc[versionKey], doc[versionKey]))
		return false
	}

	return true
}

// Handle returns the value stored under "credentials" as decoded, mapping
// or sequence alike, without copying or checking it. A missing or null key
// yields an empty mapping.
func (d *DefaultImporter) Handle(path string) (Credentials, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return Credentials{}, err
	}

	raw, ok := doc[credentialsKey]
	if !ok || raw == nil {
		d.Log(fmt.Sprintf("default importer: %s: no credentials", path))
		return NewCredentials(map[string]any{}), nil
	}
	return NewCredentials(raw), nil
}

// loadDocument opens, reads and parses path. The file is closed before
// returning on every path.
func loadDocument(path string) (Document, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc Document
	if err := unmarshalYAML(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
