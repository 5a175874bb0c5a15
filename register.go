package main

import (
	"github.com/forny/tilemosaic/agent"
	"github.com/rs/zerolog/log"
)

func registerAll() {
	// Register all custom actions
	agent.Register()

	log.Info().
		Msg("All custom components registered successfully")
}
