package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(names ...string) []domain.MovieSummary {
	movies := make([]domain.MovieSummary, len(names))
	for i, n := range names {
		movies[i] = domain.MovieSummary{ID: i + 1, Title: n}
	}
	return movies
}

func TestMovieList_FilterNarrowsCurrentPage(t *testing.T) {
	l := NewMovieList()
	l.SetSize(60, 20)
	l.SetMovies(titles("Alien", "Aliens", "Heat", "Arrival"))

	l.StartFilter()
	for _, r := range "HEAT" {
		l.Update(runes(string(r)))
	}

	if got := l.ItemCount(); got != 1 {
		t.Fatalf("ItemCount = %d, want 1", got)
	}
	if sel := l.SelectedMovie(); sel == nil || sel.Title != "Heat" {
		t.Fatalf("SelectedMovie = %+v, want Heat", sel)
	}

	l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if l.IsFiltering() || l.ItemCount() != 4 {
		t.Fatalf("after esc filtering=%v count=%d, want cleared with 4", l.IsFiltering(), l.ItemCount())
	}
}

func TestMovieList_NoMatches(t *testing.T) {
	l := NewMovieList()
	l.SetMovies(titles("Alien", "Heat"))

	l.StartFilter()
	l.Update(runes("z"))

	if got := l.ItemCount(); got != 0 {
		t.Fatalf("ItemCount = %d, want 0", got)
	}
	if l.SelectedMovie() != nil {
		t.Fatalf("SelectedMovie not nil with no matches")
	}
}

func TestMovieList_SetMoviesKeepsSelection(t *testing.T) {
	l := NewMovieList()
	l.SetSize(60, 20)
	l.SetMovies(titles("A", "B", "C"))

	l.Update(runes("j"))
	l.Update(runes("j"))
	if sel := l.SelectedMovie(); sel == nil || sel.ID != 3 {
		t.Fatalf("SelectedMovie = %+v, want id 3", sel)
	}

	reordered := []domain.MovieSummary{{ID: 3, Title: "C"}, {ID: 1, Title: "A"}}
	l.SetMovies(reordered)
	if sel := l.SelectedMovie(); sel == nil || sel.ID != 3 || l.SelectedIndex() != 0 {
		t.Fatalf("SelectedMovie = %+v at %d, want id 3 at 0", sel, l.SelectedIndex())
	}

	l.SetMovies(titles("X", "Y"))
	if l.SelectedIndex() != 0 {
		t.Fatalf("SelectedIndex = %d after selection vanished, want 0", l.SelectedIndex())
	}
}
