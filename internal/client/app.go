package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/internal/service"
	"github.com/MKhiriev/receitas-client/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if ui == nil {
		return nil, errors.New("console ui is required")
	}

	return &App{
		services: services,
		tui:      ui,
		logger:   log.GetChildLogger("app"),
	}, nil
}

// Run blocks in the menu loop until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.tui.MainLoop(ctx); err != nil {
		a.logger.Err(err).Msg("menu loop stopped")
		return fmt.Errorf("menu loop: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
