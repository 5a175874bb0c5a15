package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/forny/tilemosaic/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFileName = "mosaic-agent.log"

// initLogger writes to stderr and to a file under cfg.LogDir.
// The returned file must be closed by the caller.
func initLogger(cfg *config.Config) (*os.File, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).With().Timestamp().Caller().Logger()
	return logFile, nil
}
