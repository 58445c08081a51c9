// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive console of the receitas client: a
// blocking numbered menu that dispatches to the favorites and pairing
// services and renders their results as text.
package tui

import (
	"bufio"
	"errors"
	"io"

	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/internal/service"
)

type TUI struct {
	favorites service.ClientFavoritesService
	pairing   service.ClientPairingService

	in     *bufio.Reader
	out    io.Writer
	styles styles

	logger *logger.Logger
}

// New builds the console over in and out. Styling adapts to out: colours
// are only emitted when out is a terminal.
func New(services *service.ClientServices, in io.Reader, out io.Writer, log *logger.Logger) (*TUI, error) {
	if services == nil || services.FavoritesService == nil || services.PairingService == nil {
		return nil, errors.New("tui requires favorites and pairing services")
	}

	return &TUI{
		favorites: services.FavoritesService,
		pairing:   services.PairingService,
		in:        bufio.NewReader(in),
		out:       out,
		styles:    newStyles(out),
		logger:    log.GetChildLogger("tui"),
	}, nil
}
