// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PairingSuggestion is the server-computed recommendation that pairs a
// random main course with a random drink.
type PairingSuggestion struct {
	// Message is a ready-to-print sentence describing the pairing.
	Message string `json:"message"`

	MainCourse     MainCourse     `json:"mainCourse"`
	SuggestedDrink SuggestedDrink `json:"suggestedDrink"`
}

// MainCourse describes the meal half of a [PairingSuggestion].
type MainCourse struct {
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Area         string `json:"area,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// SuggestedDrink describes the drink half of a [PairingSuggestion].
type SuggestedDrink struct {
	Name string `json:"name"`

	// Type is the alcoholic classification, e.g. "Alcoholic" or
	// "Non alcoholic".
	Type string `json:"type"`

	// Ingredients holds up to the first two ingredients of the drink.
	Ingredients []string `json:"ingredients,omitempty"`
}
