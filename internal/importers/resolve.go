// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// getInstances is the instance source used by FindImporter. Tests may override it.
var getInstances = GetInstances

// FindImporter returns the first importer in the process-wide registry whose
// Match accepts path. It returns an error wrapping ErrNoImporterFound when
// none does.
func FindImporter(path string) (Importer, error) {
	return findFirst(getInstances(), path)
}

// Find returns the first importer in r whose Match accepts path.
func (r *Registry) Find(path string) (Importer, error) {
	return findFirst(r.GetInstances(), path)
}

// FindParallel runs Match on every importer in r concurrently and returns the
// earliest registered one that matches, exactly as Find would. It stops
// starting new matches once ctx is done.
func (r *Registry) FindParallel(ctx context.Context, path string) (Importer, error) {
	var candidates []Importer
	for imp := range r.GetInstances() {
		candidates = append(candidates, imp)
	}

	matched := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, imp := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matched[i] = imp.Match(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, ok := range matched {
		if ok {
			return candidates[i], nil
		}
	}
	return nil, noImporterFound(path)
}

func findFirst(instances iter.Seq[Importer], path string) (Importer, error) {
	for imp := range instances {
		if imp.Match(path) {
			return imp, nil
		}
	}
	return nil, noImporterFound(path)
}

func noImporterFound(path string) error {
	return fmt.Errorf("%w for %s", ErrNoImporterFound, path)
}
