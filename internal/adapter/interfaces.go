// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// recipe-favorites service.
//
// The primary abstraction is [FavoritesAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPFavoritesAdapter]).
//
// Every call returns either its payload or an error whose kind tells the
// outcome apart:
//   - [*StatusError] for an unexpected HTTP status. It unwraps to the
//     sentinel for the code ([ErrNotFound] for 404, [ErrConflict] for 409,
//     [ErrInternalServerError] for 500, ...) so callers can use [errors.Is].
//   - [ErrTransport] when no response was received (DNS, refused
//     connection, timeout).
//   - [ErrDecode] when a response arrived but its body could not be decoded.
package adapter

import (
	"context"

	"github.com/MKhiriev/receitas-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/favorites_adapter_mock.go -package=mock

// FavoritesAdapter defines transport-agnostic communication with the
// favorites service. Each method performs exactly one round trip.
type FavoritesAdapter interface {
	// ListFavorites fetches GET /api/favorites?format=proto and decodes the
	// protobuf body. Only HTTP 200 is a success.
	ListFavorites(ctx context.Context) (models.RecipeList, error)

	// AddFavorite posts {"mealName": ...} to POST /api/favorites. Only
	// HTTP 201 is a success; the created favorite is decoded from JSON.
	AddFavorite(ctx context.Context, req models.AddFavoriteRequest) (models.Favorite, error)

	// DeleteFavorite sends DELETE /api/favorites/{id}. Only HTTP 204 is a
	// success.
	DeleteFavorite(ctx context.Context, id string) error

	// GetPairingSuggestion fetches GET /api/pairing/suggestion. Only HTTP
	// 200 is a success; the suggestion is decoded from JSON.
	GetPairingSuggestion(ctx context.Context) (models.PairingSuggestion, error)
}

// ListDecoder turns a binary favorites list body into models. It is
// satisfied by *protocodec.Codec.
type ListDecoder interface {
	Decode(payload []byte) (models.RecipeList, error)
}
