package render

import (
	"fmt"
	"testing"

	"tmdb-explorer-service/internal/model"
)

func testLimits() Limits {
	return Limits{
		GridCards:       8,
		GridColumns:     4,
		Cast:            5,
		Providers:       6,
		Recommendations: 5,
		Credits:         5,
		Gallery:         5,
	}
}

func testImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return "https://img.test/" + size + path
}

func newTestRenderer() *Renderer {
	return New(testImageURL, testLimits())
}

func f(v float64) *float64 { return &v }

func TestGridEmptyStates(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name    string
		payload *model.ListingResponse
	}{
		{"nil payload", nil},
		{"absent results", &model.ListingResponse{}},
		{"empty results", &model.ListingResponse{Results: []model.ListingItem{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := r.Grid(GridContext{Kind: "movie"}, tt.payload, nil)
			if grid.Placeholder != Placeholder {
				t.Errorf("placeholder = %q, want %q", grid.Placeholder, Placeholder)
			}
			if len(grid.Cards) != 0 {
				t.Errorf("expected no cards, got %d", len(grid.Cards))
			}
		})
	}
}

func TestGridCapAndOrder(t *testing.T) {
	r := newTestRenderer()

	var items []model.ListingItem
	for i := 1; i <= 12; i++ {
		items = append(items, model.ListingItem{ID: i, Title: fmt.Sprintf("Movie %d", i)})
	}

	grid := r.Grid(GridContext{Kind: "movie"}, &model.ListingResponse{Results: items}, nil)

	if len(grid.Cards) != 8 {
		t.Fatalf("expected 8 cards, got %d", len(grid.Cards))
	}
	if grid.Placeholder != "" {
		t.Errorf("unexpected placeholder %q", grid.Placeholder)
	}

	for i, card := range grid.Cards {
		if card.ID != i+1 {
			t.Errorf("card %d: id = %d, want %d (source order)", i, card.ID, i+1)
		}
		if card.Row != i/4 || card.Col != i%4 {
			t.Errorf("card %d: position = (%d,%d), want (%d,%d)", i, card.Row, card.Col, i/4, i%4)
		}
	}
}

func TestGridFewerThanCap(t *testing.T) {
	r := newTestRenderer()

	grid := r.Grid(GridContext{Kind: "movie"}, &model.ListingResponse{Results: []model.ListingItem{
		{ID: 7, Title: "Only"},
	}}, nil)

	if len(grid.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(grid.Cards))
	}
}

func TestRatingBadgeTruncates(t *testing.T) {
	tests := []struct {
		vote *float64
		want string
	}{
		{f(7.35), "73%"},
		{f(7.39), "73%"},
		{f(9.99), "99%"},
		{f(10), "100%"},
		{f(0), "0%"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := ratingBadge(tt.vote); got != tt.want {
			t.Errorf("ratingBadge(%v) = %q, want %q", tt.vote, got, tt.want)
		}
	}
}

func TestGridCardFields(t *testing.T) {
	r := newTestRenderer()

	favorites := map[int]bool{2: true}
	grid := r.Grid(GridContext{Kind: "movie"}, &model.ListingResponse{Results: []model.ListingItem{
		{ID: 1, Title: "Rated", VoteAverage: f(7.35), ReleaseDate: "2023-01-01", PosterPath: "/p1.jpg"},
		{ID: 2, Name: "Unrated Person", ProfilePath: "/p2.jpg"},
		{ID: 3},
	}}, func(id int) bool { return favorites[id] })

	cards := grid.Cards
	if cards[0].Rating != "73%" {
		t.Errorf("rating = %q", cards[0].Rating)
	}
	// Absence of the vote_average key, not its value, gates the badge
	if cards[1].Rating != "" {
		t.Errorf("expected no badge, got %q", cards[1].Rating)
	}
	if cards[0].Date != "2023-01-01" {
		t.Errorf("date = %q", cards[0].Date)
	}
	if cards[1].Date != "N/A" {
		t.Errorf("missing date = %q, want N/A", cards[1].Date)
	}
	if cards[2].Title != "Unknown" {
		t.Errorf("missing title = %q, want Unknown", cards[2].Title)
	}
	if cards[0].ImageURL != "https://img.test/w200/p1.jpg" {
		t.Errorf("image URL = %q", cards[0].ImageURL)
	}
	if cards[1].ImageURL != "https://img.test/w200/p2.jpg" {
		t.Errorf("profile image URL = %q", cards[1].ImageURL)
	}
	if cards[2].ImageURL != "" {
		t.Errorf("expected no image URL, got %q", cards[2].ImageURL)
	}
	if cards[0].FavoriteLabel != LabelFavorite {
		t.Errorf("label = %q", cards[0].FavoriteLabel)
	}
	if cards[1].FavoriteLabel != LabelUnfavorite {
		t.Errorf("favorited label = %q", cards[1].FavoriteLabel)
	}
}
