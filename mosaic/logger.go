// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// modLog returns the sub-logger for the mosaic module.
// It is rebuilt on every call to pick up the global logger set by main.
func modLog() *zerolog.Logger {
	l := log.With().Str("module", "mosaic").Logger()
	return &l
}
