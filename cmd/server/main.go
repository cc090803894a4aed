package main

import (
	"context"
	"fmt"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/config"
	httphandler "github.com/gserrano-dev/portfolio-api/internal/handler/http"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/server"
	"github.com/gserrano-dev/portfolio-api/internal/service"
	"github.com/gserrano-dev/portfolio-api/internal/store"
	"github.com/gserrano-dev/portfolio-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portfolio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("environment", cfg.App.Environment).Str("address", cfg.Server.Address).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.DSN(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	verifier := adapter.NewHCaptchaVerifier(cfg.App, cfg.Server.RequestTimeout, log)
	services := service.NewServices(repos, verifier, cfg.App, log)
	handler := httphandler.NewHandler(services, cfg.App, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
