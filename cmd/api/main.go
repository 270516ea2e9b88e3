package main

import (
	"flag"
	"os"

	"github.com/mkoech/police-profiling/internal/bootstrap"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build dependencies")
		os.Exit(1)
	}

	router := bootstrap.SetupRouter(deps)

	srv := server.New(cfg, router)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
