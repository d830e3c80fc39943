// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/vitalk/passpie/internal/i18n"
	"github.com/vitalk/passpie/internal/importers"
	"github.com/vitalk/passpie/internal/logging"
)

// newImportCmd builds the 'import' command. It detects the format of an
// export file and prints the credentials the store would receive.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: i18n.T("cli.import_short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			reg := activeRegistry()

			var imp importers.Importer
			var err error
			if appConfig.Importers.Parallel {
				imp, err = reg.FindParallel(cmd.Context(), path)
			} else {
				imp, err = reg.Find(path)
			}
			if errors.Is(err, importers.ErrNoImporterFound) {
				return errors.New(i18n.T("import.not_recognized", path))
			}
			if err != nil {
				return err
			}
			logging.Debugf("%s", i18n.T("import.using_importer", fmt.Sprintf("%T", imp)))

			creds, err := imp.Handle(path)
			if err != nil {
				return errors.New(i18n.T("import.failed", path, err))
			}
			logging.Infof("%s", i18n.T("import.found_credentials", creds.Len(), path))

			if creds.Len() == 0 {
				return nil
			}
			out, err := yaml.Marshal(creds.Raw())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// newImportersCmd builds the 'importers' command listing the registry in
// priority order.
func newImportersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "importers",
		Short: i18n.T("cli.importers_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, name := range importers.Default().Names() {
				if slices.Contains(appConfig.Importers.Disabled, name) {
					fmt.Fprintf(w, "%d. %s (%s)\n", i+1, name, i18n.T("importers.disabled"))
					continue
				}
				fmt.Fprintf(w, "%d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
