package main

import (
	"os"

	maa "github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/forny/tilemosaic/config"
	"github.com/rs/zerolog/log"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	config.Set(cfg)

	logFile, err := initLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logFile.Close()

	log.Info().Str("version", Version).Msg("Mosaic Agent Service")

	if len(os.Args) < 2 {
		log.Fatal().Msg("Usage: tilemosaic <identifier>")
	}

	identifier := os.Args[1]
	log.Info().Str("identifier", identifier).Msg("Starting agent server")

	registerAll()

	if !maa.AgentServerStartUp(identifier) {
		log.Fatal().Msg("Failed to start agent server")
	}
	log.Info().Msg("Agent server started")

	// Wait for the server to finish
	maa.AgentServerJoin()

	maa.AgentServerShutDown()
	log.Info().Msg("Agent server shutdown")
}
