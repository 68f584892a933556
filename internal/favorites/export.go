package favorites

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mmcdole/marquee/internal/domain"
)

// exportFile is the on-disk layout of an exported collection.
type exportFile struct {
	Movies []exportMovie `toml:"movie"`
}

type exportMovie struct {
	ID          int     `toml:"id"`
	Title       string  `toml:"title"`
	PosterPath  string  `toml:"poster_path,omitempty"`
	VoteAverage float64 `toml:"vote_average"`
	ReleaseDate string  `toml:"release_date,omitempty"`
}

// Export writes the collection to path as TOML, creating directories as needed.
func (s *Service) Export(path string) (int, error) {
	movies := s.List()

	file := exportFile{Movies: make([]exportMovie, len(movies))}
	for i, m := range movies {
		file.Movies[i] = exportMovie{
			ID:          m.ID,
			Title:       m.Title,
			PosterPath:  m.PosterPath,
			VoteAverage: m.VoteAverage,
			ReleaseDate: m.ReleaseDate,
		}
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return 0, fmt.Errorf("marshal favorites: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}

	s.logger.Info("exported favorites", "path", path, "count", len(movies))
	return len(movies), nil
}

// Import merges the movies in a TOML export into the collection.
// Movies already present are left untouched. Returns the number added.
func (s *Service) Import(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read import: %w", err)
	}

	var file exportFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse import: %w", err)
	}

	added := 0
	for _, m := range file.Movies {
		if m.ID <= 0 {
			continue
		}
		if s.IsFavorite(m.ID) {
			continue
		}
		err := s.Add(domain.MovieSummary{
			ID:          m.ID,
			Title:       m.Title,
			PosterPath:  m.PosterPath,
			VoteAverage: m.VoteAverage,
			ReleaseDate: m.ReleaseDate,
		})
		if err != nil {
			return added, err
		}
		added++
	}

	s.logger.Info("imported favorites", "path", path, "added", added)
	return added, nil
}
