// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/receitas-client/internal/config"
	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/internal/mock"
	"github.com/MKhiriev/receitas-client/internal/protocodec"
	"github.com/MKhiriev/receitas-client/internal/utils"
	"github.com/MKhiriev/receitas-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCodec(t *testing.T) *protocodec.Codec {
	t.Helper()
	codec, err := protocodec.New()
	require.NoError(t, err)
	return codec
}

// newTestAdapter returns an adapter pointed at serverURL + "/api".
func newTestAdapter(t *testing.T, serverURL string) FavoritesAdapter {
	t.Helper()
	a, err := NewHTTPFavoritesAdapter(config.ClientAdapter{HTTPAddress: serverURL + "/api"}, newTestCodec(t), logger.Nop())
	require.NoError(t, err)
	return a
}

func writeStatus(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPFavoritesAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPFavoritesAdapter(config.ClientAdapter{HTTPAddress: " "}, newTestCodec(t), logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPFavoritesAdapter(config.ClientAdapter{HTTPAddress: "http://"}, newTestCodec(t), logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPFavoritesAdapter_RequiresDecoder(t *testing.T) {
	_, err := NewHTTPFavoritesAdapter(config.ClientAdapter{HTTPAddress: "localhost:3000"}, nil, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:3000/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", got)
}

// ── ListFavorites ────────────────────────────────────────────────────────────

func TestListFavorites_Success(t *testing.T) {
	want := models.RecipeList{
		{ID: 1, Name: "Pizza", Category: "Italian"},
		{ID: 2, Name: "Sushi", Category: "Japanese"},
	}
	payload, err := newTestCodec(t).Encode(want)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/favorites", r.URL.Path)
		assert.Equal(t, "proto", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListFavorites(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListFavorites_Empty(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusOK, ""))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListFavorites(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListFavorites_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusServiceUnavailable, "  down for maintenance \n"))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListFavorites(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, "down for maintenance", statusErr.Body)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestListFavorites_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusOK, "\x0a\x0a\x08"))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListFavorites(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, protocodec.ErrMalformedPayload)
}

// TestListFavorites_PassesRawBodyToDecoder checks the adapter hands the body
// over untouched and surfaces decoder failures as ErrDecode.
func TestListFavorites_PassesRawBodyToDecoder(t *testing.T) {
	body := []byte{0x0a, 0x00}
	srv := httptest.NewServer(writeStatus(http.StatusOK, string(body)))
	defer srv.Close()

	decoder := mock.NewMockListDecoder(gomock.NewController(t))
	decoder.EXPECT().Decode(body).Return(nil, assert.AnError)

	a, err := NewHTTPFavoritesAdapter(config.ClientAdapter{HTTPAddress: srv.URL + "/api"}, decoder, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListFavorites(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListFavorites_TransportError(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusOK, ""))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListFavorites(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

// ── AddFavorite ──────────────────────────────────────────────────────────────

func TestAddFavorite_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/favorites", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"mealName": "Arrabiata"}, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"externalId":"52771","name":"Spicy Arrabiata Penne","category":"Vegetarian","instructions":"Bring a large pot...","dateAdded":"2026-10-16T10:00:00.000Z"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).AddFavorite(context.Background(), models.AddFavoriteRequest{MealName: "Arrabiata"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "52771", got.ExternalID)
	assert.Equal(t, "Spicy Arrabiata Penne", got.Name)
	assert.Equal(t, "Vegetarian", got.Category)
}

func TestAddFavorite_StatusKinds(t *testing.T) {
	tests := []struct {
		name string
		code int
		want error
	}{
		{name: "conflict", code: http.StatusConflict, want: ErrConflict},
		{name: "not found in external source", code: http.StatusNotFound, want: ErrNotFound},
		{name: "bad request", code: http.StatusBadRequest, want: ErrBadRequest},
		{name: "ok is not created", code: http.StatusOK, want: ErrUnexpectedStatus},
		{name: "server error", code: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(writeStatus(tt.code, `{"message":"x"}`))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).AddFavorite(context.Background(), models.AddFavoriteRequest{MealName: "Taco"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.code, statusErr.Code)
		})
	}
}

func TestAddFavorite_BadJSON(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusCreated, "not json"))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddFavorite(context.Background(), models.AddFavoriteRequest{MealName: "Taco"})

	assert.ErrorIs(t, err, ErrDecode)
}

// ── DeleteFavorite ───────────────────────────────────────────────────────────

func TestDeleteFavorite_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/favorites/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteFavorite(context.Background(), "42")
	require.NoError(t, err)
}

func TestDeleteFavorite_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/favorites/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteFavorite(context.Background(), "a/b")
	require.NoError(t, err)
}

func TestDeleteFavorite_NotFound(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusNotFound, `{"message":"nope"}`))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteFavorite(context.Background(), "99")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFavorite_OKIsNotNoContent(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusOK, ""))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteFavorite(context.Background(), "1")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusOK, statusErr.Code)
}

// ── GetPairingSuggestion ─────────────────────────────────────────────────────

func TestGetPairingSuggestion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pairing/suggestion", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"mainCourse": {"name": "Lasagne", "category": "Pasta", "area": "Italian"},
			"suggestedDrink": {"name": "Negroni", "type": "Alcoholic", "ingredients": ["Gin", "Campari"]},
			"message": "Para o prato \"Lasagne\", sugerimos o cocktail \"Negroni\"."
		}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetPairingSuggestion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Lasagne", got.MainCourse.Name)
	assert.Equal(t, "Italian", got.MainCourse.Area)
	assert.Equal(t, "Negroni", got.SuggestedDrink.Name)
	assert.Equal(t, "Alcoholic", got.SuggestedDrink.Type)
	assert.Equal(t, []string{"Gin", "Campari"}, got.SuggestedDrink.Ingredients)
	assert.Contains(t, got.Message, "Negroni")
}

func TestGetPairingSuggestion_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(writeStatus(http.StatusInternalServerError, `{"message":"Erro ao buscar dados"}`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetPairingSuggestion(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}
