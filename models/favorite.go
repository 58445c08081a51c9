package models

// AddFavoriteRequest is the JSON body of POST /api/favorites.
type AddFavoriteRequest struct {
	MealName string `json:"mealName"`
}

// Favorite is the JSON body returned by the favorites service after a
// recipe has been added (HTTP 201).
type Favorite struct {
	ID           int64  `json:"id"`
	ExternalID   string `json:"externalId"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Instructions string `json:"instructions"`
	DateAdded    string `json:"dateAdded"`
}
