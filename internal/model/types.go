package model

// ================== Generic response ==================

// APIResponse is the standard API response format
type APIResponse struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Source  string      `json:"source,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ================== TMDb payloads ==================

// ListingResponse is a TMDb listing ("results" array) response
type ListingResponse struct {
	Page    int           `json:"page"`
	Results []ListingItem `json:"results"`
}

// ListingItem is one entry of a TMDb listing. Movies carry "title",
// TV shows and people carry "name"; every other field is optional.
type ListingItem struct {
	ID           int         `json:"id"`
	Title        string      `json:"title,omitempty"`
	Name         string      `json:"name,omitempty"`
	PosterPath   string      `json:"poster_path,omitempty"`
	ProfilePath  string      `json:"profile_path,omitempty"`
	VoteAverage  *float64    `json:"vote_average,omitempty"`
	ReleaseDate  string      `json:"release_date,omitempty"`
	FirstAirDate string      `json:"first_air_date,omitempty"`
	Popularity   float64     `json:"popularity,omitempty"`
	KnownFor     []KnownFor  `json:"known_for,omitempty"`
}

// KnownFor is a sub-item on person listing entries
type KnownFor struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// DisplayTitle returns the title for movies, the name otherwise
func (i ListingItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	if i.Name != "" {
		return i.Name
	}
	return "Unknown"
}

// ImagePath returns the poster path for movies/TV or the profile path
// for people. Empty means no image exists upstream.
func (i ListingItem) ImagePath() string {
	if i.PosterPath != "" {
		return i.PosterPath
	}
	return i.ProfilePath
}

// DisplayDate returns the release or first-air date, "N/A" when absent
func (i ListingItem) DisplayDate() string {
	if i.ReleaseDate != "" {
		return i.ReleaseDate
	}
	if i.FirstAirDate != "" {
		return i.FirstAirDate
	}
	return "N/A"
}

// DetailPayload is the full record for one item, including the sections
// requested via append_to_response. Movie/TV and person fields coexist;
// the renderer branches on content kind.
type DetailPayload struct {
	ID           int      `json:"id"`
	Title        string   `json:"title,omitempty"`
	Name         string   `json:"name,omitempty"`
	PosterPath   string   `json:"poster_path,omitempty"`
	ProfilePath  string   `json:"profile_path,omitempty"`
	Overview     string   `json:"overview,omitempty"`
	VoteAverage  *float64 `json:"vote_average,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	FirstAirDate string   `json:"first_air_date,omitempty"`

	Credits         *Credits         `json:"credits,omitempty"`
	Videos          *VideoList       `json:"videos,omitempty"`
	Reviews         *ReviewList      `json:"reviews,omitempty"`
	Recommendations *ListingResponse `json:"recommendations,omitempty"`
	WatchProviders  *WatchProviders  `json:"watch/providers,omitempty"`

	// Person-only fields
	AlsoKnownAs     []string         `json:"also_known_as,omitempty"`
	Birthday        string           `json:"birthday,omitempty"`
	PlaceOfBirth    string           `json:"place_of_birth,omitempty"`
	Biography       string           `json:"biography,omitempty"`
	CombinedCredits *CombinedCredits `json:"combined_credits,omitempty"`
	Images          *ImageList       `json:"images,omitempty"`
}

// Credits holds the ordered cast list of a movie or TV show
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// CastMember is one cast entry
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// VideoList holds the videos section
type VideoList struct {
	Results []Video `json:"results"`
}

// Video is one video entry; a trailer is the first entry with type
// "Trailer" and site "YouTube" in upstream order
type Video struct {
	Key  string `json:"key"`
	Type string `json:"type"`
	Site string `json:"site"`
}

// ReviewList holds the reviews section
type ReviewList struct {
	Results []Review `json:"results"`
}

// Review is one review entry
type Review struct {
	Author  string `json:"author,omitempty"`
	Content string `json:"content"`
}

// WatchProviders holds the watch/providers section keyed by region
type WatchProviders struct {
	Results map[string]RegionProviders `json:"results"`
}

// RegionProviders holds provider lists for one region
type RegionProviders struct {
	Flatrate []Provider `json:"flatrate,omitempty"`
}

// Provider is one streaming provider
type Provider struct {
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path,omitempty"`
}

// CombinedCredits holds a person's combined movie and TV credits
type CombinedCredits struct {
	Cast []CreditRole `json:"cast"`
}

// CreditRole is one role in a person's combined credits
type CreditRole struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	Character   string  `json:"character,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
	MediaType   string  `json:"media_type,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// DisplayTitle returns the title for movie roles, the name for TV roles
func (r CreditRole) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// ImageList holds a person's profile images
type ImageList struct {
	Profiles []ProfileImage `json:"profiles"`
}

// ProfileImage is one profile image entry
type ProfileImage struct {
	FilePath string `json:"file_path"`
}

// ================== View models ==================

// Grid is the rendered layout for a listing response: up to the
// configured cap of cards placed row-major over a fixed column count,
// or a single placeholder when there is nothing to show.
type Grid struct {
	Kind        string `json:"kind"`
	Filter      string `json:"filter,omitempty"`
	Window      string `json:"window,omitempty"`
	Query       string `json:"query,omitempty"`
	Columns     int    `json:"columns"`
	Cards       []Card `json:"cards"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Card is one rendered grid cell
type Card struct {
	ID            int    `json:"id"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Rating        string `json:"rating,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	ImageStatus   string `json:"image_status,omitempty"`
	FavoriteLabel string `json:"favorite_label"`
}

// MovieDetail is the rendered detail layout for a movie or TV show
type MovieDetail struct {
	ID              int              `json:"id"`
	Kind            string           `json:"kind"`
	Title           string           `json:"title"`
	PosterURL       string           `json:"poster_url,omitempty"`
	Overview        string           `json:"overview"`
	Cast            string           `json:"cast"`
	Trailer         string           `json:"trailer"`
	Providers       []ProviderView   `json:"providers,omitempty"`
	Review          string           `json:"review,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// ProviderView is one rendered streaming provider
type ProviderView struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Recommendation is one rendered recommended item
type Recommendation struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url,omitempty"`
	Rating    string `json:"rating,omitempty"`
}

// PersonDetail is the rendered detail layout for a person
type PersonDetail struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	ProfileURL   string     `json:"profile_url,omitempty"`
	RealName     string     `json:"real_name,omitempty"`
	Birthday     string     `json:"birthday,omitempty"`
	Age          *int       `json:"age,omitempty"`
	PlaceOfBirth string     `json:"place_of_birth,omitempty"`
	Biography    string     `json:"biography"`
	KnownFor     []RoleView `json:"known_for,omitempty"`
	Gallery      []string   `json:"gallery,omitempty"`
}

// RoleView is one rendered combined-credits role
type RoleView struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Character string `json:"character,omitempty"`
	PosterURL string `json:"poster_url,omitempty"`
}
