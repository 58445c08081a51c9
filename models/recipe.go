// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecipeEntry is a single favorite recipe as returned by the favorites
// service. Entries are decoded from server responses and never built or
// mutated on the client.
type RecipeEntry struct {
	// ID is the server-assigned favorite identifier.
	ID int64 `json:"id"`

	// Name is the meal name as stored by the server.
	Name string `json:"name"`

	// Category is the meal category reported by the external recipe source
	// (e.g. "Seafood", "Dessert").
	Category string `json:"category"`
}

// RecipeList is the ordered collection of favorites decoded wholesale from
// a single list response.
type RecipeList []RecipeEntry
