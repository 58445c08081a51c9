package service

import (
	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/logger"
)

type ClientServices struct {
	FavoritesService ClientFavoritesService
	PairingService   ClientPairingService
}

func NewClientServices(serverAdapter adapter.FavoritesAdapter, log *logger.Logger) *ClientServices {
	log = log.GetChildLogger("service")

	return &ClientServices{
		FavoritesService: NewClientFavoritesService(serverAdapter, log),
		PairingService:   NewClientPairingService(serverAdapter, log),
	}
}
