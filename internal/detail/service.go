// Package detail loads the full record shown on a movie's detail screen.
package detail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/marquee/internal/domain"
)

// State is the lifecycle of one detail screen
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateNotFound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CastLimit is the number of cast members shown
const CastLimit = 10

// Service fetches movie details from the catalog
type Service struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewService creates a new detail service
func NewService(catalog domain.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, logger: logger}
}

// Load fetches the movie with id. The detail is trimmed to the top cast.
func (s *Service) Load(ctx context.Context, id int) (*domain.MovieDetail, error) {
	d, err := s.catalog.Details(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			s.logger.Info("movie not found", "id", id)
		} else {
			s.logger.Error("failed to load movie", "id", id, "error", err)
		}
		return nil, err
	}
	d.Cast = d.TopCast(CastLimit)
	return d, nil
}

// StateOf classifies the outcome of Load
func StateOf(err error) State {
	switch {
	case err == nil:
		return StateLoaded
	case errors.Is(err, domain.ErrMovieNotFound):
		return StateNotFound
	default:
		return StateFailed
	}
}
