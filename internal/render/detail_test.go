package render

import (
	"strings"
	"testing"
	"time"

	"tmdb-explorer-service/internal/model"
)

func TestMovieDetailDefaults(t *testing.T) {
	r := newTestRenderer()

	detail := r.MovieDetail("movie", &model.DetailPayload{ID: 1})

	if detail.Title != "Unknown" {
		t.Errorf("title = %q", detail.Title)
	}
	if detail.Overview != NotAvailable {
		t.Errorf("overview = %q", detail.Overview)
	}
	if detail.Cast != NotAvailable {
		t.Errorf("cast = %q", detail.Cast)
	}
	if detail.Trailer != NotAvailable {
		t.Errorf("trailer = %q", detail.Trailer)
	}
	if detail.Review != "" {
		t.Errorf("review = %q", detail.Review)
	}
	if len(detail.Providers) != 0 || len(detail.Recommendations) != 0 {
		t.Error("expected no providers or recommendations")
	}
}

func TestMovieDetailCast(t *testing.T) {
	r := newTestRenderer()

	payload := &model.DetailPayload{
		ID:    1,
		Title: "Film",
		Credits: &model.Credits{Cast: []model.CastMember{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"},
		}},
	}

	detail := r.MovieDetail("movie", payload)
	if detail.Cast != "A, B, C, D, E" {
		t.Errorf("cast = %q, want top five joined", detail.Cast)
	}
}

func TestTrailerPicksFirstYouTubeTrailer(t *testing.T) {
	r := newTestRenderer()

	payload := &model.DetailPayload{
		ID:    1,
		Title: "Film",
		Videos: &model.VideoList{Results: []model.Video{
			{Key: "c1", Type: "Clip", Site: "YouTube"},
			{Key: "t1", Type: "Trailer", Site: "Vimeo"},
			{Key: "t2", Type: "Trailer", Site: "YouTube"},
			{Key: "t3", Type: "Trailer", Site: "YouTube"},
		}},
	}

	detail := r.MovieDetail("movie", payload)
	if detail.Trailer != "https://www.youtube.com/watch?v=t2" {
		t.Errorf("trailer = %q, want first YouTube trailer in upstream order", detail.Trailer)
	}
}

func TestReviewTruncation(t *testing.T) {
	r := newTestRenderer()

	long := strings.Repeat("x", 250)
	payload := &model.DetailPayload{
		ID:      1,
		Title:   "Film",
		Reviews: &model.ReviewList{Results: []model.Review{{Content: long}}},
	}

	detail := r.MovieDetail("movie", payload)
	if len(detail.Review) != 203 {
		t.Errorf("review length = %d, want 203", len(detail.Review))
	}
	if !strings.HasSuffix(detail.Review, "...") {
		t.Errorf("review %q lacks ellipsis", detail.Review)
	}
	if detail.Review[:200] != long[:200] {
		t.Error("review body altered by truncation")
	}
}

func TestShortReviewStillGetsEllipsis(t *testing.T) {
	r := newTestRenderer()

	payload := &model.DetailPayload{
		ID:      1,
		Title:   "Film",
		Reviews: &model.ReviewList{Results: []model.Review{{Content: "short"}}},
	}

	// The ellipsis is appended unconditionally on the review branch
	detail := r.MovieDetail("movie", payload)
	if detail.Review != "short..." {
		t.Errorf("review = %q, want %q", detail.Review, "short...")
	}
}

func TestProvidersAndRecommendationsCapped(t *testing.T) {
	r := newTestRenderer()

	var providers []model.Provider
	for i := 0; i < 10; i++ {
		providers = append(providers, model.Provider{ProviderName: "P", LogoPath: "/l.png"})
	}
	var recs []model.ListingItem
	for i := 1; i <= 9; i++ {
		recs = append(recs, model.ListingItem{ID: i, Title: "R"})
	}

	payload := &model.DetailPayload{
		ID:    1,
		Title: "Film",
		WatchProviders: &model.WatchProviders{Results: map[string]model.RegionProviders{
			"US": {Flatrate: providers},
		}},
		Recommendations: &model.ListingResponse{Results: recs},
	}

	detail := r.MovieDetail("movie", payload)
	if len(detail.Providers) != 6 {
		t.Errorf("providers = %d, want 6", len(detail.Providers))
	}
	if len(detail.Recommendations) != 5 {
		t.Errorf("recommendations = %d, want 5", len(detail.Recommendations))
	}
	if detail.Recommendations[0].ID != 1 {
		t.Errorf("recommendations out of order: %+v", detail.Recommendations[0])
	}
}

func TestNonUSProvidersIgnored(t *testing.T) {
	r := newTestRenderer()

	payload := &model.DetailPayload{
		ID:    1,
		Title: "Film",
		WatchProviders: &model.WatchProviders{Results: map[string]model.RegionProviders{
			"GB": {Flatrate: []model.Provider{{ProviderName: "P"}}},
		}},
	}

	detail := r.MovieDetail("movie", payload)
	if len(detail.Providers) != 0 {
		t.Errorf("expected no providers without a US region, got %d", len(detail.Providers))
	}
}

func personRenderer(now string) *Renderer {
	r := newTestRenderer()
	fixed, err := time.Parse("2006-01-02", now)
	if err != nil {
		panic(err)
	}
	r.now = func() time.Time { return fixed }
	return r
}

func TestPersonAge(t *testing.T) {
	tests := []struct {
		now  string
		want int
	}{
		{"2024-06-14", 33}, // not yet 34
		{"2024-06-16", 34},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			r := personRenderer(tt.now)
			detail := r.PersonDetail(&model.DetailPayload{
				ID:       1,
				Name:     "Person",
				Birthday: "1990-06-15",
			})
			if detail.Age == nil {
				t.Fatal("expected age")
			}
			if *detail.Age != tt.want {
				t.Errorf("age = %d, want %d", *detail.Age, tt.want)
			}
			if detail.Birthday != "1990-06-15" {
				t.Errorf("birthday = %q", detail.Birthday)
			}
		})
	}
}

func TestPersonBadBirthdaySuppressed(t *testing.T) {
	r := personRenderer("2024-06-14")

	detail := r.PersonDetail(&model.DetailPayload{
		ID:       1,
		Name:     "Person",
		Birthday: "June 15, 1990",
	})

	// A parse failure suppresses both fields, silently
	if detail.Age != nil {
		t.Errorf("expected no age, got %d", *detail.Age)
	}
	if detail.Birthday != "" {
		t.Errorf("expected no birthday, got %q", detail.Birthday)
	}
}

func TestPersonRealName(t *testing.T) {
	r := newTestRenderer()

	detail := r.PersonDetail(&model.DetailPayload{
		ID:          1,
		Name:        "Stage Name",
		AlsoKnownAs: []string{"Birth Name", "Other"},
	})
	if detail.RealName != "Birth Name" {
		t.Errorf("real name = %q", detail.RealName)
	}

	// Shown only when the first alias differs from the display name
	detail = r.PersonDetail(&model.DetailPayload{
		ID:          1,
		Name:        "Same Name",
		AlsoKnownAs: []string{"Same Name"},
	})
	if detail.RealName != "" {
		t.Errorf("expected no real name, got %q", detail.RealName)
	}
}

func TestPersonKnownForSortedByPopularity(t *testing.T) {
	r := newTestRenderer()

	detail := r.PersonDetail(&model.DetailPayload{
		ID:   1,
		Name: "Person",
		CombinedCredits: &model.CombinedCredits{Cast: []model.CreditRole{
			{ID: 1, Title: "Low", Popularity: 1},
			{ID: 2, Title: "TieA", Popularity: 5},
			{ID: 3, Title: "High", Popularity: 9},
			{ID: 4, Title: "TieB", Popularity: 5},
			{ID: 5, Name: "Show", Popularity: 7},
			{ID: 6, Title: "Mid", Popularity: 3},
			{ID: 7, Title: "Tail", Popularity: 2},
		}},
	})

	if len(detail.KnownFor) != 5 {
		t.Fatalf("known for = %d roles, want 5", len(detail.KnownFor))
	}

	wantOrder := []string{"High", "Show", "TieA", "TieB", "Mid"}
	for i, want := range wantOrder {
		if detail.KnownFor[i].Title != want {
			t.Errorf("role %d = %q, want %q (descending popularity, ties stable)", i, detail.KnownFor[i].Title, want)
		}
	}
}

func TestPersonGalleryCapped(t *testing.T) {
	r := newTestRenderer()

	var profiles []model.ProfileImage
	for i := 0; i < 9; i++ {
		profiles = append(profiles, model.ProfileImage{FilePath: "/g.jpg"})
	}

	detail := r.PersonDetail(&model.DetailPayload{
		ID:     1,
		Name:   "Person",
		Images: &model.ImageList{Profiles: profiles},
	})

	if len(detail.Gallery) != 5 {
		t.Errorf("gallery = %d, want 5", len(detail.Gallery))
	}
}

func TestPersonBiographyDefault(t *testing.T) {
	r := newTestRenderer()

	detail := r.PersonDetail(&model.DetailPayload{ID: 1, Name: "Person"})
	if detail.Biography != NotAvailable {
		t.Errorf("biography = %q", detail.Biography)
	}
}
