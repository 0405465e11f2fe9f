package service

import (
	"fmt"
	"net/url"
)

// Content kinds and listing filters understood by the upstream API.
// The builder performs no validation; a malformed combination simply
// 404s upstream and collapses to an empty result downstream.
const (
	KindMovie  = "movie"
	KindTV     = "tv"
	KindPerson = "person"

	FilterTrending    = "trending"
	FilterPopular     = "popular"
	FilterNowPlaying  = "now_playing"
	FilterTopRated    = "top_rated"
	FilterAiringToday = "airing_today"
	FilterLatest      = "latest"

	WindowDay  = "day"
	WindowWeek = "week"
)

// Endpoints maps (kind, filter, window) tuples to fully-built TMDb
// request URLs. Every target carries the api_key parameter.
type Endpoints struct {
	baseURL   string
	imageBase string
	apiKey    string
}

// NewEndpoints creates an endpoint builder for the given API base,
// image CDN base and access key
func NewEndpoints(baseURL, imageBase, apiKey string) Endpoints {
	return Endpoints{
		baseURL:   baseURL,
		imageBase: imageBase,
		apiKey:    apiKey,
	}
}

// Listing builds a listing URL. Trending is the one irregular filter:
// it takes a three-segment path with a time-window segment. Every
// other filter is a plain two-segment path and ignores the window.
func (e Endpoints) Listing(kind, filter, window string) string {
	var path string
	if filter == FilterTrending {
		path = fmt.Sprintf("/trending/%s/%s", kind, window)
	} else {
		path = fmt.Sprintf("/%s/%s", kind, filter)
	}
	return e.build(path, nil)
}

// Search builds a free-text search URL for the given kind
func (e Endpoints) Search(kind, query string) string {
	return e.build("/search/"+kind, url.Values{"query": []string{query}})
}

// Detail builds a detail URL with the append_to_response sections for
// the kind: combined credits and images for a person, the full
// credits/videos/reviews/recommendations/providers set otherwise.
func (e Endpoints) Detail(kind string, id int) string {
	appended := "credits,videos,reviews,recommendations,watch/providers"
	if kind == KindPerson {
		appended = "combined_credits,images"
	}
	path := fmt.Sprintf("/%s/%d", kind, id)
	return e.build(path, url.Values{"append_to_response": []string{appended}})
}

// Latest builds the latest pseudo-filter URL, which returns a single
// object rather than a results array
func (e Endpoints) Latest(kind string) string {
	return e.build("/"+kind+"/latest", nil)
}

// Image builds an image CDN URL from a size token and a path supplied
// in a JSON field. An empty path means no image request is made.
func (e Endpoints) Image(size, path string) string {
	if path == "" {
		return ""
	}
	return e.imageBase + "/" + size + path
}

func (e Endpoints) build(path string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", e.apiKey)
	return e.baseURL + path + "?" + q.Encode()
}
