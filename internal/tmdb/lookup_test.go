package tmdb

import "testing"

func TestGenreID_CaseInsensitive(t *testing.T) {
	cases := map[string]string{
		"Horror":    "27",
		"horror":    "27",
		" SCI-FI ":  "878",
		"Family":    "10751",
		"Thriller":  "53",
		"Romance":   "10749",
		"Mystery":   "9648",
		"Animation": "16",
	}
	for name, want := range cases {
		got, ok := GenreID(name)
		if !ok || got != want {
			t.Errorf("GenreID(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
	if _, ok := GenreID(""); ok {
		t.Errorf("GenreID(\"\") ok = true")
	}
	if _, ok := GenreID("Western"); ok {
		t.Errorf("GenreID(Western) ok = true")
	}
}

func TestLanguageCode(t *testing.T) {
	for _, n := range Languages() {
		got, ok := LanguageCode(n.Name)
		if !ok || got != n.Code {
			t.Errorf("LanguageCode(%q) = %q, %v; want %q", n.Name, got, ok, n.Code)
		}
	}
	if got := CanonicalLanguage("korean"); got != "Korean" {
		t.Errorf("CanonicalLanguage(korean) = %q", got)
	}
	if got := CanonicalGenre("klingon"); got != "" {
		t.Errorf("CanonicalGenre(klingon) = %q, want empty", got)
	}
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"thrill", "Thriller"},
		{"comdy", "Comedy"},
		{"doc", "Documentary"},
	}
	for _, tc := range cases {
		got, ok := SuggestGenre(tc.in)
		if !ok || got != tc.want {
			t.Errorf("SuggestGenre(%q) = %q, %v; want %q", tc.in, got, ok, tc.want)
		}
	}
	if got, ok := SuggestLanguage("japanse"); !ok || got != "Japanese" {
		t.Errorf("SuggestLanguage(japanse) = %q, %v", got, ok)
	}
	if _, ok := SuggestGenre("zzzzzzzzzz"); ok {
		t.Errorf("SuggestGenre(zzzzzzzzzz) ok = true")
	}
}

func TestImageURL(t *testing.T) {
	if got := ImageURL("https://image.tmdb.org/t/p", "w500", "/abc.jpg"); got != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Errorf("ImageURL = %q", got)
	}
	if got := ImageURL("https://image.tmdb.org/t/p", "w500", ""); got != "" {
		t.Errorf("ImageURL(empty) = %q, want empty", got)
	}
	img := DefaultImages()
	if got := img.Backdrop("/b.jpg"); got != "https://image.tmdb.org/t/p/original/b.jpg" {
		t.Errorf("Backdrop = %q", got)
	}
	if got := img.Profile("/k.jpg"); got != "https://image.tmdb.org/t/p/w185/k.jpg" {
		t.Errorf("Profile = %q", got)
	}
}
