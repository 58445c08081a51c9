// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/models"
)

type clientFavoritesService struct {
	adapter adapter.FavoritesAdapter
	logger  *logger.Logger
}

func NewClientFavoritesService(serverAdapter adapter.FavoritesAdapter, log *logger.Logger) ClientFavoritesService {
	return &clientFavoritesService{adapter: serverAdapter, logger: log}
}

func (s *clientFavoritesService) List(ctx context.Context) (models.RecipeList, error) {
	list, err := s.adapter.ListFavorites(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list favorites failed")
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	s.logger.Info().Int("count", len(list)).Msg("favorites listed")
	return list, nil
}

func (s *clientFavoritesService) Add(ctx context.Context, mealName string) (models.Favorite, error) {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return models.Favorite{}, ErrBlankInput
	}

	favorite, err := s.adapter.AddFavorite(ctx, models.AddFavoriteRequest{MealName: mealName})
	if err != nil {
		s.logger.Error().Err(err).Str("meal_name", mealName).Msg("add favorite failed")
		return models.Favorite{}, fmt.Errorf("add favorite %q: %w", mealName, err)
	}

	s.logger.Info().Int64("id", favorite.ID).Str("name", favorite.Name).Msg("favorite added")
	return favorite, nil
}

func (s *clientFavoritesService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrBlankInput
	}

	if err := s.adapter.DeleteFavorite(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("delete favorite failed")
		return fmt.Errorf("delete favorite %s: %w", id, err)
	}

	s.logger.Info().Str("id", id).Msg("favorite deleted")
	return nil
}
