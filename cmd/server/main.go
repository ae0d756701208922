package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/pin-relay/internal/adapter"
	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/handler"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/server"
	"github.com/MKhiriev/pin-relay/internal/service"
	"github.com/MKhiriev/pin-relay/models"
	"github.com/google/gops/agent"
)

const role = "pin-relay"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(role, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Diagnostics {
		// The relay handles termination signals itself.
		if err := agent.Listen(agent.Options{ShutdownCleanup: false}); err != nil {
			log.Warn().Err(err).Msg("could not start gops agent")
		} else {
			defer agent.Close()
		}
	}

	pinner := adapter.NewPinataAdapter(cfg.Pinata, log)
	services := service.NewServices(pinner, cfg.Pinata, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("pin relay starting")
	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
