// Package favorites persists the user's favorite movies as one serialized
// collection in the local store.
package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// StoreKey is the single store entry holding the collection.
const StoreKey = "favorite_movies"

// Service implements domain.Favorites over a domain.Store.
// Every mutation reads the whole collection, changes it in memory and
// writes the whole collection back.
type Service struct {
	store  domain.Store
	logger *slog.Logger
	mu     sync.Mutex
}

var _ domain.Favorites = (*Service)(nil)

// NewService creates a new favorites service.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// List returns the favorites in insertion order.
// A missing or corrupt entry reads as an empty collection.
func (s *Service) List() []domain.MovieSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends movie unless its ID is already present.
func (s *Service) Add(movie domain.MovieSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := s.load()
	if indexOf(movies, movie.ID) >= 0 {
		return nil
	}
	movies = append(movies, movie.Minimal())
	if err := s.save(movies); err != nil {
		return err
	}
	s.logger.Debug("added favorite", "id", movie.ID, "count", len(movies))
	return nil
}

// Remove deletes the movie with id; removing an absent id is a no-op.
func (s *Service) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := s.load()
	kept := movies[:0]
	for _, m := range movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if err := s.save(kept); err != nil {
		return err
	}
	s.logger.Debug("removed favorite", "id", id, "count", len(kept))
	return nil
}

// IsFavorite reports whether id is in the collection.
func (s *Service) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.load(), id) >= 0
}

// Toggle adds or removes movie and returns the new membership.
func (s *Service) Toggle(movie domain.MovieSummary) (bool, error) {
	if s.IsFavorite(movie.ID) {
		if err := s.Remove(movie.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(movie); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) load() []domain.MovieSummary {
	data, ok := s.store.Get(StoreKey)
	if !ok {
		return []domain.MovieSummary{}
	}
	var movies []domain.MovieSummary
	if err := json.Unmarshal(data, &movies); err != nil {
		s.logger.Warn("favorites entry is corrupt, clearing it", "error", err)
		if err := s.store.Delete(StoreKey); err != nil {
			s.logger.Error("failed to clear corrupt favorites", "error", err)
		}
		return []domain.MovieSummary{}
	}
	if movies == nil {
		movies = []domain.MovieSummary{}
	}
	return movies
}

func (s *Service) save(movies []domain.MovieSummary) error {
	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.store.Set(StoreKey, data); err != nil {
		s.logger.Error("failed to save favorites", "error", err)
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func indexOf(movies []domain.MovieSummary, id int) int {
	for i, m := range movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
