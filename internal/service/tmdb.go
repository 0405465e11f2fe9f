package service

import (
	"encoding/json"
	"sync"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/pkg/httpclient"

	"github.com/rs/zerolog/log"
)

// TMDBService dispatches requests against the TMDb API. Any transport
// error, non-2xx status or parse error collapses to an empty payload:
// callers distinguish "successfully empty" from "failed" only by the
// shared downstream empty state.
type TMDBService struct {
	client    *httpclient.Client
	endpoints Endpoints
}

// NewTMDBService creates a new TMDBService
func NewTMDBService(client *httpclient.Client, endpoints Endpoints) *TMDBService {
	return &TMDBService{
		client:    client,
		endpoints: endpoints,
	}
}

// Endpoints returns the underlying endpoint builder
func (s *TMDBService) Endpoints() Endpoints {
	return s.endpoints
}

// FetchListing fetches a listing for (kind, filter, window)
func (s *TMDBService) FetchListing(kind, filter, window string) *model.ListingResponse {
	return s.fetchResults(s.endpoints.Listing(kind, filter, window))
}

// FetchSearch fetches search results for a free-text query
func (s *TMDBService) FetchSearch(kind, query string) *model.ListingResponse {
	return s.fetchResults(s.endpoints.Search(kind, query))
}

// FetchLatest fetches the latest item of a kind. The single JSON
// object the endpoint returns is wrapped into a one-element listing
// for uniform rendering.
func (s *TMDBService) FetchLatest(kind string) *model.ListingResponse {
	data, err := s.client.Fetch(s.endpoints.Latest(kind))
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("Latest fetch failed")
		return &model.ListingResponse{}
	}

	var item model.ListingItem
	if err := json.Unmarshal(data, &item); err != nil {
		log.Warn().Err(err).Msg("Failed to parse latest response")
		return &model.ListingResponse{}
	}
	if item.ID == 0 {
		return &model.ListingResponse{}
	}

	return &model.ListingResponse{Results: []model.ListingItem{item}}
}

// FetchDetail fetches the full record for one item including its
// appended sections. A nil return signals the shared failure state.
func (s *TMDBService) FetchDetail(kind string, id int) *model.DetailPayload {
	data, err := s.client.Fetch(s.endpoints.Detail(kind, id))
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Int("id", id).Msg("Detail fetch failed")
		return nil
	}

	var payload model.DetailPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Warn().Err(err).Msg("Failed to parse detail response")
		return nil
	}
	if payload.ID == 0 {
		return nil
	}

	return &payload
}

func (s *TMDBService) fetchResults(targetURL string) *model.ListingResponse {
	data, err := s.client.Fetch(targetURL)
	if err != nil {
		log.Warn().Err(err).Str("url", targetURL).Msg("Listing fetch failed")
		return &model.ListingResponse{}
	}

	var result model.ListingResponse
	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Msg("Failed to parse listing response")
		return &model.ListingResponse{}
	}

	log.Debug().Str("url", targetURL).Int("count", len(result.Results)).Msg("Fetched listing")
	return &result
}

// CheckImages probes each card's image URL concurrently and marks the
// per-card image status. Results are joined by source index so card
// order stays stable; a failed probe marks only its own card.
func (s *TMDBService) CheckImages(cards []model.Card) {
	var wg sync.WaitGroup

	for i := range cards {
		if cards[i].ImageURL == "" {
			continue
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := s.client.Head(cards[idx].ImageURL); err != nil {
				cards[idx].ImageStatus = "unavailable"
				return
			}
			cards[idx].ImageStatus = "ok"
		}(i)
	}

	wg.Wait()
}

// FetchImage fetches one image asset from the CDN
func (s *TMDBService) FetchImage(size, path string) ([]byte, string, error) {
	return s.client.FetchRaw(s.endpoints.Image(size, path))
}
