// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import (
	"fmt"
	"iter"
	"slices"
)

// Factory builds a fresh importer.
type Factory func() Importer

// Registration pairs an importer name with its factory.
type Registration struct {
	Name string
	New  Factory
}

// Registry is an ordered set of importer factories. Registration order is the
// priority order used by Find.
type Registry struct {
	entries []Registration
	index   map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends an importer factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("%w: name %q", ErrInvalidRegistration, name)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateImporter, name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Registration{Name: name, New: factory})
	return nil
}

// GetAll returns every registration in priority order. The slice is a copy.
func (r *Registry) GetAll() []Registration {
	return slices.Clone(r.entries)
}

// Names returns the registered names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// GetInstances yields one new instance per registration, in priority order.
// Instances are built lazily and every iteration builds new ones.
func (r *Registry) GetInstances() iter.Seq[Importer] {
	entries := r.GetAll()
	return func(yield func(Importer) bool) {
		for _, e := range entries {
			if !yield(e.New()) {
				return
			}
		}
	}
}

// Without returns a copy of r that skips the named importers. Unknown names
// are ignored.
func (r *Registry) Without(names ...string) *Registry {
	out := New()
	for _, e := range r.entries {
		if slices.Contains(names, e.Name) {
			continue
		}
		out.index[e.Name] = len(out.entries)
		out.entries = append(out.entries, e)
	}
	return out
}

// builtins is the list of importers compiled into passpie, highest priority
// first.
var builtins = []Registration{
	{Name: Handler, New: func() Importer { return &DefaultImporter{} }},
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := New()
	for _, b := range builtins {
		if err := r.Register(b.Name, b.New); err != nil {
			panic(err)
		}
	}
	return r
}

// Default returns the process-wide registry holding the built-ins followed by
// any importers contributed through Register.
func Default() *Registry { return defaultRegistry }

// Register adds an importer to the process-wide registry, after the built-ins
// and anything registered before it. Call it from an init function.
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

// GetAll returns every registration in the process-wide registry.
func GetAll() []Registration { return defaultRegistry.GetAll() }

// GetInstances yields fresh instances from the process-wide registry.
func GetInstances() iter.Seq[Importer] { return defaultRegistry.GetInstances() }
