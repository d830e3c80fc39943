// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalk/passpie/internal/config"
	"github.com/vitalk/passpie/internal/i18n"
)

// newConfigCmd builds the 'config' command, which persists the effective
// configuration (defaults, files, environment and flags merged) so it can be
// edited by hand afterwards.
func newConfigCmd() *cobra.Command {
	var system bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return err
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, "write the system-wide file instead of the user one")
	return cmd
}
