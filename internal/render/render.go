package render

import (
	"fmt"
	"time"
)

// Placeholder is the single user-visible text for both an empty
// listing and a failed fetch; the two states are intentionally not
// distinguished.
const Placeholder = "No results found or failed to load."

// NotAvailable is the default substituted for an absent detail field
const NotAvailable = "Not available"

// Favorite-toggle labels reflecting favorite-set membership
const (
	LabelFavorite   = "Favorite"
	LabelUnfavorite = "Unfavorite"
)

// Image size tokens for the TMDb image CDN
const (
	sizePoster = "w200"
	sizeLogo   = "w200"
)

// ImageURLFunc builds an image CDN URL from a size token and a path.
// An empty path yields an empty URL, meaning no image is shown.
type ImageURLFunc func(size, path string) string

// Limits caps the rendered sections
type Limits struct {
	GridCards       int
	GridColumns     int
	Cast            int
	Providers       int
	Recommendations int
	Credits         int
	Gallery         int
}

// Renderer turns parsed TMDb payloads into view models. It is a pure
// consumer of its inputs: every field may be absent and every gap maps
// to a documented default or an omitted element, never an error.
type Renderer struct {
	imageURL ImageURLFunc
	limits   Limits
	now      func() time.Time
}

// New creates a Renderer
func New(imageURL ImageURLFunc, limits Limits) *Renderer {
	return &Renderer{
		imageURL: imageURL,
		limits:   limits,
		now:      time.Now,
	}
}

// ratingBadge formats vote_average as a truncated integer percentage.
// Presence of the field, not its value, gates display.
func ratingBadge(voteAverage *float64) string {
	if voteAverage == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", int(*voteAverage*10))
}
