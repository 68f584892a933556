package tmdb

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// Named is one entry of a fixed lookup table
type Named struct {
	Name string
	Code string // numeric genre id or ISO 639-1 code
}

// genres are the filterable genres, in panel order
var genres = []Named{
	{"Action", "28"},
	{"Adventure", "12"},
	{"Animation", "16"},
	{"Comedy", "35"},
	{"Crime", "80"},
	{"Documentary", "99"},
	{"Drama", "18"},
	{"Family", "10751"},
	{"Fantasy", "14"},
	{"Horror", "27"},
	{"Mystery", "9648"},
	{"Romance", "10749"},
	{"Sci-Fi", "878"},
	{"Thriller", "53"},
}

// languages are the filterable original languages, in panel order
var languages = []Named{
	{"English", "en"},
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Hindi", "hi"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
}

var fold = cases.Fold()

// suggestDistance is the largest edit distance still offered as a suggestion
const suggestDistance = 3

func lookup(table []Named, name string) (string, bool) {
	key := fold.String(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	for _, n := range table {
		if fold.String(n.Name) == key {
			return n.Code, true
		}
	}
	return "", false
}

// GenreID returns the upstream genre id for a display name
func GenreID(name string) (string, bool) {
	return lookup(genres, name)
}

// LanguageCode returns the ISO 639-1 code for a display name
func LanguageCode(name string) (string, bool) {
	return lookup(languages, name)
}

// CanonicalGenre returns the table spelling of name, or "" if unknown
func CanonicalGenre(name string) string {
	return canonical(genres, name)
}

// CanonicalLanguage returns the table spelling of name, or "" if unknown
func CanonicalLanguage(name string) string {
	return canonical(languages, name)
}

func canonical(table []Named, name string) string {
	code, ok := lookup(table, name)
	if !ok {
		return ""
	}
	for _, n := range table {
		if n.Code == code {
			return n.Name
		}
	}
	return ""
}

// Genres returns the genre table in panel order
func Genres() []Named {
	return append([]Named(nil), genres...)
}

// Languages returns the language table in panel order
func Languages() []Named {
	return append([]Named(nil), languages...)
}

// SuggestGenre returns the closest known genre name for a misspelling
func SuggestGenre(name string) (string, bool) {
	return suggest(genres, name)
}

// SuggestLanguage returns the closest known language name for a misspelling
func SuggestLanguage(name string) (string, bool) {
	return suggest(languages, name)
}

func suggest(table []Named, name string) (string, bool) {
	query := strings.TrimSpace(name)
	if query == "" {
		return "", false
	}

	names := make([]string, len(table))
	for i, n := range table {
		names[i] = n.Name
	}

	// Prefix-ish matches ("thrill", "doc") rank first
	if ranks := fuzzy.RankFindFold(query, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target, true
	}

	// Typos ("horor", "comdy") fall back to edit distance
	best, bestDist := "", suggestDistance+1
	lower := strings.ToLower(query)
	for _, n := range names {
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(n)); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, best != ""
}
