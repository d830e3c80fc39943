// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads passpie's settings from defaults, YAML files,
// PASSPIE_* environment variables and command flags, and writes them back.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Language  string          `mapstructure:"language" yaml:"language"`
	Debug     bool            `mapstructure:"debug" yaml:"debug"`
	Importers ImportersConfig `mapstructure:"importers" yaml:"importers"`
}

// ImportersConfig controls importer resolution.
type ImportersConfig struct {
	// Disabled lists registered importer names that are never tried.
	Disabled []string `mapstructure:"disabled" yaml:"disabled"`
	// Parallel runs importer matches concurrently. The earliest registered match
	// still wins.
	Parallel bool `mapstructure:"parallel" yaml:"parallel"`
}

// Defaults returns the default values keyed by their viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":           "en",
		"debug":              false,
		"importers.disabled": []string{},
		"importers.parallel": false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passpie")
		default:
			configDir = "/etc/passpie"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passpie")
	}

	return filepath.Join(configDir, "passpie.yaml"), nil
}

// LoadConfig builds a T from defaults, the first passpie.yaml found (or
// explicitPath when given), the legacy ~/.passpierc, the environment and the
// flags of cmd, in increasing precedence.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passpie")
	v.SetConfigType("yaml")

	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	mergeLegacyConfig(v)

	v.SetEnvPrefix("passpie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// mergeLegacyConfig merges ~/.passpierc, the configuration file older
// releases used, when it exists. Errors are ignored so a stale file never
// blocks startup.
func mergeLegacyConfig(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	legacyConfigFile := filepath.Join(home, ".passpierc")
	if _, err := os.Stat(legacyConfigFile); err != nil {
		return
	}
	v.SetConfigFile(legacyConfigFile)
	_ = v.MergeInConfig()
	v.SetConfigFile("")
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
