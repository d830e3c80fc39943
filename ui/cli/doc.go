// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for passpie using Cobra.
// It loads configuration and hands file paths to the importers package; the
// commands themselves stay thin.
package cli
