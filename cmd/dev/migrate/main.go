package main

import (
	"passagens/pkg/config"
	"passagens/pkg/db"
	"passagens/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg)
	log := logging.Component("migrate")

	path := cfg.MigrationsPath
	if path == "" {
		path = "file://migrations"
	}

	if err := db.MigrateConfig(path, cfg); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("migrations failed")
	}
	log.Info().Str("path", path).Msg("migrations applied")
}
