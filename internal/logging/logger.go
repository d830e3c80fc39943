// Copyright (c) 2026 Passpie Team
// Passpie - command-line password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide diagnostic logger. Importers and the
// CLI write through the helpers here so tests can swap the sink in one place.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "passpie",
	Level:  clog.InfoLevel,
})

// SetDebug switches L between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debug logs msg verbatim at debug level.
func Debug(msg string) {
	L.Debug(msg)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
