package session

import (
	"sync"

	"tmdb-explorer-service/internal/model"
)

// Context is the current navigation state: content kind, listing
// filter, trending time window and the last search query.
type Context struct {
	Kind   string `json:"kind"`
	Filter string `json:"filter"`
	Window string `json:"window"`
	Query  string `json:"query,omitempty"`
}

// Session holds all in-memory, process-lifetime state: the navigation
// context, the favorite set, the simulated login and the currently
// visible grid. Nothing here is ever persisted; every run starts from
// the defaults.
//
// All mutation goes through the mutex since handlers run on their own
// goroutines.
type Session struct {
	mu sync.Mutex

	ctx       Context
	username  string
	favorites map[int]struct{}

	// generation increments on every navigation trigger; a completed
	// fetch updates the visible grid only while its token is still
	// current, so a late response never clobbers a newer one.
	generation uint64
	grid       *model.Grid
}

// New creates a Session with the startup defaults: trending movies of
// the day, logged out, no favorites.
func New() *Session {
	return &Session{
		ctx: Context{
			Kind:   "movie",
			Filter: "trending",
			Window: "day",
		},
		favorites: make(map[int]struct{}),
	}
}

// Context returns a copy of the current navigation context
func (s *Session) Context() Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// BeginNavigation records a navigation action and returns the request
// token for the fetch it triggers
func (s *Session) BeginNavigation(kind, filter, window string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.Kind = kind
	s.ctx.Filter = filter
	s.ctx.Window = window
	s.ctx.Query = ""
	s.generation++
	return s.generation
}

// BeginSearch records a search action and returns its request token
func (s *Session) BeginSearch(kind, query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.Kind = kind
	s.ctx.Query = query
	s.generation++
	return s.generation
}

// ApplyGrid installs a rendered grid as the visible one if the token
// is still current. It reports whether the grid was applied; a stale
// token means a newer navigation superseded this fetch.
func (s *Session) ApplyGrid(token uint64, grid model.Grid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return false
	}
	s.grid = &grid
	return true
}

// Grid returns the currently visible grid, or nil before the first load
func (s *Session) Grid() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// ToggleFavorite adds or removes an item id from the favorite set and
// reports the new membership
func (s *Session) ToggleFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = struct{}{}
	return true
}

// IsFavorite reports favorite-set membership for an item id
func (s *Session) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[id]
	return ok
}

// Favorites returns the favorited ids in unspecified order
func (s *Session) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	return ids
}

// Login accepts any non-empty username and password pair. There is no
// credential verification; logging in only changes the display name.
func (s *Session) Login(username, password string) bool {
	if username == "" || password == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	return true
}

// Logout clears the simulated login
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
}

// Username returns the logged-in display name and whether a user is
// logged in
func (s *Session) Username() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, s.username != ""
}
