// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vitalk/passpie/buildvars"
	"github.com/vitalk/passpie/internal/config"
	"github.com/vitalk/passpie/internal/i18n"
	"github.com/vitalk/passpie/internal/importers"
	"github.com/vitalk/passpie/internal/logging"
)

var version = "dev" // set by the linker

const defaultLanguage = "en"

var appConfig config.Config

// setupDefaultServices loads the configuration and applies it to the logger
// and the message catalogue.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}

	logging.SetDebug(appConfig.Debug)

	if _, ok := i18n.GetAvailableLocales()[appConfig.Language]; !ok {
		logging.Warnf("unknown language %q, using %q", appConfig.Language, defaultLanguage)
		appConfig.Language = defaultLanguage
	}
	if i18n.GetLang() != appConfig.Language {
		i18n.SetLang(appConfig.Language)
	}
	return nil
}

// activeRegistry returns the process-wide importer registry minus the
// importers disabled in the configuration.
func activeRegistry() *importers.Registry {
	reg := importers.Default()
	for _, name := range appConfig.Importers.Disabled {
		if !reg.Has(name) {
			logging.Warnf("importers.disabled: no importer named %q", name)
		}
	}
	return reg.Without(appConfig.Importers.Disabled...)
}

// Execute runs the CLI entrypoint. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// applyDefaultFlags registers the configuration flags. Flag names match the
// configuration keys so viper can bind them directly.
func applyDefaultFlags(fs *pflag.FlagSet) {
	if fs.Lookup("config") == nil {
		fs.String("config", "", "config file (default is $XDG_CONFIG_HOME/passpie/passpie.yaml)")
	}
	if fs.Lookup("language") == nil {
		fs.String("language", defaultLanguage, `message language ("en", "de")`)
	}
	if fs.Lookup("debug") == nil {
		fs.Bool("debug", false, "enable debug logging")
	}
	if fs.Lookup("importers.disabled") == nil {
		fs.StringSlice("importers.disabled", nil, "importers to skip during format detection")
	}
	if fs.Lookup("importers.parallel") == nil {
		fs.Bool("importers.parallel", false, "match importers concurrently")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests build a
// fresh one per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "passpie",
		Short:             i18n.T("cli.short"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
	}

	applyDefaultFlags(cmd.PersistentFlags())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newImportersCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.Version = buildvars.VersionOrDefault(version)

	return cmd
}
