package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MovieSummary is the minimal movie record used in listings and favorites
type MovieSummary struct {
	ID           int     `json:"id"`                      // TMDB identifier
	Title        string  `json:"title"`                   // Display title
	PosterPath   string  `json:"poster_path"`             // Relative poster image path
	BackdropPath string  `json:"backdrop_path,omitempty"` // Relative backdrop image path (listings only)
	VoteAverage  float64 `json:"vote_average"`            // Community rating, 0-10
	ReleaseDate  string  `json:"release_date"`            // "YYYY-MM-DD", may be empty
}

// Year returns the release year parsed from ReleaseDate (0 if unknown)
func (m MovieSummary) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// HasArtwork reports whether both the poster and the backdrop are present
func (m MovieSummary) HasArtwork() bool {
	return m.PosterPath != "" && m.BackdropPath != ""
}

// Minimal returns the record persisted in the favorites collection
func (m MovieSummary) Minimal() MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
	}
}

// DisplayTitle returns "Title (Year)" when the year is known
func (m MovieSummary) DisplayTitle() string {
	if y := m.Year(); y > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, y)
	}
	return m.Title
}

// FormattedRating returns the rating as "7.3"
func (m MovieSummary) FormattedRating() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// Genre is a catalog genre
type Genre struct {
	ID   int
	Name string
}

// Language is a spoken language of a movie
type Language struct {
	Code        string // ISO 639-1
	EnglishName string
	Name        string // Native name
}

// Company is a production company
type Company struct {
	ID       int
	Name     string
	LogoPath string
}

// CastMember is one credited actor
type CastMember struct {
	ID          int
	Name        string
	Character   string
	ProfilePath string // Optional
}

// Video is an upstream video reference (trailers, teasers)
type Video struct {
	Key  string
	Site string // "YouTube", "Vimeo"
	Type string // "Trailer", "Teaser", "Featurette"
	Name string
}

// URL returns the watch URL for known video sites
func (v Video) URL() string {
	switch strings.ToLower(v.Site) {
	case "youtube":
		return "https://www.youtube.com/watch?v=" + v.Key
	case "vimeo":
		return "https://vimeo.com/" + v.Key
	default:
		return ""
	}
}

// MovieDetail is the full movie record shown on the detail view.
// Fetched on demand and never persisted.
type MovieDetail struct {
	MovieSummary

	Overview            string
	Tagline             string
	Runtime             int // Minutes
	OriginalLanguage    string
	Genres              []Genre
	SpokenLanguages     []Language
	ProductionCompanies []Company
	Cast                []CastMember // Best effort, may be empty
	Videos              []Video
}

// FormattedRuntime returns the runtime as "2h 15m"
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	mins := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// GenreNames returns the genre names in upstream order
func (d MovieDetail) GenreNames() []string {
	names := make([]string, len(d.Genres))
	for i, g := range d.Genres {
		names[i] = g.Name
	}
	return names
}

// LanguageNames returns the English names of the spoken languages
func (d MovieDetail) LanguageNames() []string {
	names := make([]string, 0, len(d.SpokenLanguages))
	for _, l := range d.SpokenLanguages {
		name := l.EnglishName
		if name == "" {
			name = l.Name
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Trailer returns the first trailer with a playable URL
func (d MovieDetail) Trailer() (Video, bool) {
	for _, v := range d.Videos {
		if strings.EqualFold(v.Type, "Trailer") && v.URL() != "" {
			return v, true
		}
	}
	return Video{}, false
}

// TopCast returns at most n cast members in billing order
func (d MovieDetail) TopCast(n int) []CastMember {
	if n <= 0 || len(d.Cast) <= n {
		return d.Cast
	}
	return d.Cast[:n]
}

// FilterCriteria holds the discover constraints chosen in the filter panel.
// Zero values mean "no constraint" and are never sent upstream.
type FilterCriteria struct {
	Genre     string   // Genre display name, "" for any
	Language  string   // Language display name, "" for any
	Year      int      // Primary release year, 0 for any
	MinRating *float64 // Lower rating bound, nil for none
	MaxRating *float64 // Upper rating bound, nil for none
}

// Rating returns a pointer to v for use as a FilterCriteria bound
func Rating(v float64) *float64 {
	return &v
}

// IsZero reports whether no constraint is set
func (f FilterCriteria) IsZero() bool {
	return f.Genre == "" && f.Language == "" && f.Year == 0 && f.MinRating == nil && f.MaxRating == nil
}

// Describe returns a short human readable summary of the active constraints
func (f FilterCriteria) Describe() string {
	var parts []string
	if f.Genre != "" {
		parts = append(parts, f.Genre)
	}
	if f.Language != "" {
		parts = append(parts, f.Language)
	}
	if f.Year > 0 {
		parts = append(parts, strconv.Itoa(f.Year))
	}
	if f.MinRating != nil || f.MaxRating != nil {
		lo, hi := 0.0, 10.0
		if f.MinRating != nil {
			lo = *f.MinRating
		}
		if f.MaxRating != nil {
			hi = *f.MaxRating
		}
		parts = append(parts, fmt.Sprintf("★ %g-%g", lo, hi))
	}
	if len(parts) == 0 {
		return "all movies"
	}
	return strings.Join(parts, " · ")
}

// PageResult is one page of an upstream listing
type PageResult struct {
	Movies       []MovieSummary
	Page         int
	TotalPages   int
	TotalResults int
}
