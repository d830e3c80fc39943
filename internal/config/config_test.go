// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalk/passpie/internal/config"
)

// isolate points the user config dir and home at fresh temp dirs.
func isolate(t *testing.T) (configHome, home string) {
	t.Helper()
	configHome = t.TempDir()
	home = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", home)
	// viper ignores empty variables, which masks anything set on the host.
	for _, key := range []string{"PASSPIE_LANGUAGE", "PASSPIE_DEBUG", "PASSPIE_IMPORTERS_DISABLED", "PASSPIE_IMPORTERS_PARALLEL"} {
		t.Setenv(key, "")
	}
	return configHome, home
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	got, err := config.LoadConfig[config.Config](&cobra.Command{}, config.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.False(t, got.Debug)
	assert.Empty(t, got.Importers.Disabled)
	assert.False(t, got.Importers.Parallel)
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "language: de\ndebug: true\nimporters:\n  disabled: [passpie]\n  parallel: true\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	got, err := config.LoadConfig[config.Config](&cobra.Command{}, config.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, "de", got.Language)
	assert.True(t, got.Debug)
	assert.Equal(t, []string{"passpie"}, got.Importers.Disabled)
	assert.True(t, got.Importers.Parallel)
}

func TestLoadConfig_BrokenFileIsAnError(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: [en\n"), 0o600))

	_, err := config.LoadConfig[config.Config](&cobra.Command{}, config.Defaults(), &file)
	assert.Error(t, err)
}

func TestLoadConfig_MergesLegacyPasspierc(t *testing.T) {
	_, home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".passpierc"), []byte("language: de\n"), 0o600))

	got, err := config.LoadConfig[config.Config](&cobra.Command{}, config.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "de", got.Language)
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PASSPIE_IMPORTERS_PARALLEL", "true")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	require.NoError(t, cmd.Flags().Set("language", "de"))

	got, err := config.LoadConfig[config.Config](cmd, config.Defaults(), nil)
	require.NoError(t, err)
	assert.True(t, got.Importers.Parallel)
	assert.Equal(t, "de", got.Language)
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	configHome, _ := isolate(t)

	c := config.Config{Language: "de", Importers: config.ImportersConfig{Disabled: []string{"passpie"}}}
	require.NoError(t, config.WriteConfigFile(&c, false))

	path, err := config.GetConfigPath(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, "passpie", "passpie.yaml"), path)

	got, err := config.LoadConfig[config.Config](&cobra.Command{}, config.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, []string{"passpie"}, got.Importers.Disabled)
}

func TestGetConfigPath_System(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("system path differs on windows")
	}
	path, err := config.GetConfigPath(true)
	require.NoError(t, err)
	assert.Equal(t, "/etc/passpie/passpie.yaml", path)
}
