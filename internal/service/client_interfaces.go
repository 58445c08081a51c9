package service

import (
	"context"

	"github.com/MKhiriev/receitas-client/models"
)

// ClientFavoritesService defines the client-side contract for managing the
// user's favorite recipes on the remote service. Every call performs at most
// one round trip; blank user input short-circuits with [ErrBlankInput]
// before any request is sent.
type ClientFavoritesService interface {
	// List returns the favorites in server order.
	List(ctx context.Context) (models.RecipeList, error)

	// Add trims mealName and asks the server to add it. The server looks the
	// meal up in an external recipe database first, so an unknown meal is
	// reported as adapter.ErrNotFound and a duplicate as
	// adapter.ErrConflict.
	Add(ctx context.Context, mealName string) (models.Favorite, error)

	// Delete trims id and removes the favorite. An unknown id is reported
	// as adapter.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// ClientPairingService defines the contract for fetching food and drink
// pairing suggestions.
type ClientPairingService interface {
	// Suggest returns a random main course paired with a random drink.
	// adapter.ErrInternalServerError means the server could not reach its
	// upstream recipe or cocktail sources.
	Suggest(ctx context.Context) (models.PairingSuggestion, error)
}
