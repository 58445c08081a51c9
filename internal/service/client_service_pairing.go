package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/models"
)

type clientPairingService struct {
	adapter adapter.FavoritesAdapter
	logger  *logger.Logger
}

func NewClientPairingService(serverAdapter adapter.FavoritesAdapter, log *logger.Logger) ClientPairingService {
	return &clientPairingService{adapter: serverAdapter, logger: log}
}

func (s *clientPairingService) Suggest(ctx context.Context) (models.PairingSuggestion, error) {
	suggestion, err := s.adapter.GetPairingSuggestion(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("pairing suggestion failed")
		return models.PairingSuggestion{}, fmt.Errorf("pairing suggestion: %w", err)
	}

	s.logger.Info().
		Str("main_course", suggestion.MainCourse.Name).
		Str("drink", suggestion.SuggestedDrink.Name).
		Msg("pairing suggested")
	return suggestion, nil
}
