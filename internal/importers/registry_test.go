// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package importers

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFactory(name string, match bool) Factory {
	return func() Importer { return &stubImporter{name: name, match: match} }
}

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("first", stubFactory("first", false)))
	require.NoError(t, r.Register("second", stubFactory("second", false)))
	require.NoError(t, r.Register("third", stubFactory("third", false)))

	assert.Equal(t, []string{"first", "second", "third"}, r.Names())
	assert.True(t, r.Has("second"))
	assert.False(t, r.Has("fourth"))
}

func TestRegistry_RegisterRejectsDuplicatesAndInvalid(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("dup", stubFactory("dup", false)))

	assert.ErrorIs(t, r.Register("dup", stubFactory("dup", true)), ErrDuplicateImporter)
	assert.ErrorIs(t, r.Register("", stubFactory("", false)), ErrInvalidRegistration)
	assert.ErrorIs(t, r.Register("nil", nil), ErrInvalidRegistration)
	assert.Equal(t, []string{"dup"}, r.Names())
}

func TestRegistry_GetAllReturnsCopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("a", stubFactory("a", false)))

	all := r.GetAll()
	all[0].Name = "mutated"

	assert.Equal(t, []string{"a"}, r.Names())
}

func TestRegistry_GetInstancesOnePerRegistration(t *testing.T) {
	r := New()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(name, stubFactory(name, false)))
	}

	instances := slices.Collect(r.GetInstances())
	require.Len(t, instances, len(r.GetAll()))
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, instances[i].(*stubImporter).name)
	}
}

func TestRegistry_GetInstancesYieldsFreshInstancesEachTime(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("a", stubFactory("a", false)))
	seq := r.GetInstances()

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotSame(t, first[0], second[0])
}

func TestRegistry_GetInstancesIsLazy(t *testing.T) {
	built := 0
	r := New()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(name, func() Importer {
			built++
			return &stubImporter{name: name}
		}))
	}

	for range r.GetInstances() {
		break
	}
	assert.Equal(t, 1, built)
}

func TestRegistry_WithoutSkipsNamesAndKeepsOrder(t *testing.T) {
	r := New()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(name, stubFactory(name, false)))
	}

	filtered := r.Without("b", "unknown")

	assert.Equal(t, []string{"a", "c"}, filtered.Names())
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
	require.NoError(t, filtered.Register("b", stubFactory("b", false)))
	assert.Equal(t, []string{"a", "c", "b"}, filtered.Names())
}

func TestDefaultRegistry_BuiltinsFirst(t *testing.T) {
	all := GetAll()
	require.NotEmpty(t, all)
	assert.Equal(t, Handler, all[0].Name)

	first := slices.Collect(GetInstances())[0]
	assert.IsType(t, &DefaultImporter{}, first)
	assert.Same(t, defaultRegistry, Default())
}

func TestRegister_AppendsAfterBuiltins(t *testing.T) {
	prev := defaultRegistry
	defaultRegistry = newDefaultRegistry()
	t.Cleanup(func() { defaultRegistry = prev })

	require.NoError(t, Register("external", stubFactory("external", false)))

	assert.Equal(t, []string{Handler, "external"}, Default().Names())
	assert.ErrorIs(t, Register(Handler, stubFactory("clash", false)), ErrDuplicateImporter)
}
