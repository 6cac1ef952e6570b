// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"os"

	"github.com/rs/zerolog"
)

// logger reports platform events that were dropped instead of
// delivered, and other event loop diagnostics. It is only used
// from the event loop thread.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLogger replaces the diagnostics logger. The default logger
// writes warnings and errors to standard error. SetLogger must be
// called before Run or NewWindow.
func SetLogger(l zerolog.Logger) {
	logger = l
}
