package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/railmax/railmax/pkg/railmax"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// State is one user session: their starred routes and theme choice. It lives
// only as long as the process - there is deliberately no durable storage.
type State struct {
	ID string `groups:"basic" json:"id"`

	Favourites []railmax.Favourite `groups:"basic" json:"favourites"`
	Theme      Theme               `groups:"basic" json:"theme"`
}

// Store holds every live session. All mutation goes through the store so a
// session never needs its own locking discipline.
type Store struct {
	mutex    sync.RWMutex
	sessions map[string]*State
}

func NewStore() *Store {
	return &Store{
		sessions: map[string]*State{},
	}
}

func (s *Store) Create() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state := &State{
		ID:         uuid.NewString(),
		Favourites: []railmax.Favourite{},
		Theme:      ThemeLight,
	}
	s.sessions[state.ID] = state

	return *state
}

func (s *Store) Get(id string) (State, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	state, found := s.sessions[id]
	if !found {
		return State{}, false
	}

	// The copy must not share the favourites backing array with the live
	// session
	snapshot := *state
	snapshot.Favourites = append([]railmax.Favourite{}, state.Favourites...)

	return snapshot, true
}

// AddFavourite stars a route, deduplicating by value. It reports whether the
// favourite was newly added.
func (s *Store) AddFavourite(id string, favourite railmax.Favourite) (bool, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, found := s.sessions[id]
	if !found {
		return false, false
	}

	for _, existing := range state.Favourites {
		if existing == favourite {
			return false, true
		}
	}

	state.Favourites = append(state.Favourites, favourite)

	return true, true
}

// RemoveFavourite unstars a route. It reports whether anything was removed.
func (s *Store) RemoveFavourite(id string, favourite railmax.Favourite) (bool, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, found := s.sessions[id]
	if !found {
		return false, false
	}

	for index, existing := range state.Favourites {
		if existing == favourite {
			state.Favourites = append(state.Favourites[:index], state.Favourites[index+1:]...)

			return true, true
		}
	}

	return false, true
}

// ToggleTheme flips the session between light and dark, returning the new
// theme.
func (s *Store) ToggleTheme(id string) (Theme, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, found := s.sessions[id]
	if !found {
		return "", false
	}

	if state.Theme == ThemeLight {
		state.Theme = ThemeDark
	} else {
		state.Theme = ThemeLight
	}

	return state.Theme, true
}
