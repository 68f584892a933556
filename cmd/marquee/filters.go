package main

import (
	"fmt"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
)

// cliFilters holds the raw start filter flags. Negative ratings mean unset.
type cliFilters struct {
	genre     string
	language  string
	year      int
	minRating float64
	maxRating float64
}

// criteria resolves the flags to filter criteria. Unknown names are dropped
// with a warning that suggests the closest known name. Returns nil when no
// usable filter remains.
func (f cliFilters) criteria() (*domain.FilterCriteria, []string) {
	var (
		c        domain.FilterCriteria
		warnings []string
	)

	if f.genre != "" {
		if name := tmdb.CanonicalGenre(f.genre); name != "" {
			c.Genre = name
		} else {
			warnings = append(warnings, unknownName("genre", f.genre, tmdb.SuggestGenre))
		}
	}

	if f.language != "" {
		if name := tmdb.CanonicalLanguage(f.language); name != "" {
			c.Language = name
		} else {
			warnings = append(warnings, unknownName("language", f.language, tmdb.SuggestLanguage))
		}
	}

	if f.year > 0 {
		c.Year = f.year
	} else if f.year < 0 {
		warnings = append(warnings, fmt.Sprintf("ignoring year %d", f.year))
	}

	minSet, maxSet := f.minRating >= 0, f.maxRating >= 0
	lo, hi := clampRating(f.minRating), clampRating(f.maxRating)
	if minSet && maxSet && lo > hi {
		warnings = append(warnings, fmt.Sprintf("min rating %g is above max rating %g, swapping", lo, hi))
		lo, hi = hi, lo
	}
	if minSet {
		c.MinRating = domain.Rating(lo)
	}
	if maxSet {
		c.MaxRating = domain.Rating(hi)
	}

	if c.IsZero() {
		return nil, warnings
	}
	return &c, warnings
}

func unknownName(kind, name string, suggest func(string) (string, bool)) string {
	if s, ok := suggest(name); ok {
		return fmt.Sprintf("unknown %s %q, did you mean %q?", kind, name, s)
	}
	return fmt.Sprintf("unknown %s %q", kind, name)
}

func clampRating(v float64) float64 {
	return min(max(v, 0), 10)
}
