package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/config"
	"github.com/MKhiriev/receitas-client/internal/logger"
	"github.com/MKhiriev/receitas-client/internal/utils"
	"github.com/MKhiriev/receitas-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	favoritesPath    = "/favorites"
	favoriteByIDPath = "/favorites/{id}"
	pairingPath      = "/pairing/suggestion"
)

type httpFavoritesAdapter struct {
	client  *utils.HTTPClient
	decoder ListDecoder

	logger *logger.Logger
}

// NewHTTPFavoritesAdapter constructs the resty implementation of
// [FavoritesAdapter]. It normalises the base URL from
// adapterCfg.HTTPAddress, applies the optional request timeout and attaches
// a trace id to every request. Bodies of the list endpoint are decoded with
// decoder.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPFavoritesAdapter(adapterCfg config.ClientAdapter, decoder ListDecoder, log *logger.Logger) (FavoritesAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if decoder == nil {
		return nil, errors.New("favorites list decoder is required")
	}

	log = log.GetChildLogger("adapter")
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:  baseURL,
		Timeout:  adapterCfg.RequestTimeout,
		Logger:   log,
		TraceIDs: utils.NewUUIDGenerator(),
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
			Int("status", resp.StatusCode()).
			Int("bytes", len(resp.Body())).
			Dur("took", resp.Time()).
			Msg("favorites service responded")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Str("trace_id", req.Header.Get(utils.TraceIDHeader)).
			Msg("favorites service request failed")
	})

	return &httpFavoritesAdapter{client: client, decoder: decoder, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListFavorites implements [FavoritesAdapter].
func (h *httpFavoritesAdapter) ListFavorites(ctx context.Context) (models.RecipeList, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/x-protobuf").
		SetQueryParam("format", "proto").
		Get(favoritesPath)
	if err != nil {
		return nil, transportError("list favorites", err)
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	list, err := h.decoder.Decode(resp.Body())
	if err != nil {
		return nil, decodeError("list favorites", err)
	}

	h.logger.Debug().
		Int("bytes", len(resp.Body())).
		Int("entries", len(list)).
		Msg("favorites list decoded")

	return list, nil
}

// AddFavorite implements [FavoritesAdapter].
func (h *httpFavoritesAdapter) AddFavorite(ctx context.Context, req models.AddFavoriteRequest) (models.Favorite, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(favoritesPath)
	if err != nil {
		return models.Favorite{}, transportError("add favorite", err)
	}
	if err = expectStatus(resp, http.StatusCreated); err != nil {
		return models.Favorite{}, err
	}

	var favorite models.Favorite
	if err = json.Unmarshal(resp.Body(), &favorite); err != nil {
		return models.Favorite{}, decodeError("add favorite", err)
	}

	return favorite, nil
}

// DeleteFavorite implements [FavoritesAdapter]. id is path-escaped.
func (h *httpFavoritesAdapter) DeleteFavorite(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(favoriteByIDPath)
	if err != nil {
		return transportError("delete favorite", err)
	}

	return expectStatus(resp, http.StatusNoContent)
}

// GetPairingSuggestion implements [FavoritesAdapter].
func (h *httpFavoritesAdapter) GetPairingSuggestion(ctx context.Context) (models.PairingSuggestion, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(pairingPath)
	if err != nil {
		return models.PairingSuggestion{}, transportError("pairing suggestion", err)
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		return models.PairingSuggestion{}, err
	}

	var suggestion models.PairingSuggestion
	if err = json.Unmarshal(resp.Body(), &suggestion); err != nil {
		return models.PairingSuggestion{}, decodeError("pairing suggestion", err)
	}

	return suggestion, nil
}
