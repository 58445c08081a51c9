package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/app"
	"github.com/MKhiriev/receitas-client/internal/client"
	"github.com/MKhiriev/receitas-client/internal/config"
	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/internal/protocodec"
	"github.com/MKhiriev/receitas-client/internal/service"
	"github.com/MKhiriev/receitas-client/internal/tui"
	"github.com/MKhiriev/receitas-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("receitas-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("set log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	codec, err := protocodec.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, app.MsgDecoderUnavailable+"\n", err)
		fmt.Fprintln(os.Stderr, app.MsgDecoderRemediation)
		log.Fatal().Err(err).Msg("protobuf decoder unavailable")
	}

	favAdapter, err := adapter.NewHTTPFavoritesAdapter(cfg.Adapter, codec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create favorites adapter")
	}

	services := service.NewClientServices(favAdapter, log)

	ui, err := tui.New(services, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	a, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = a.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
