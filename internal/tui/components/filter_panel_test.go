package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/domain"
)

func press(p *FilterPanel, keys ...string) FilterAction {
	var action FilterAction
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, action = p.HandleKey(msg)
	}
	return action
}

func TestFilterPanel_DefaultsSendFullRatingRange(t *testing.T) {
	p := NewFilterPanel(2025)
	p.Show(domain.FilterCriteria{})

	c := p.Criteria()
	if c.Genre != "" || c.Language != "" || c.Year != 0 {
		t.Fatalf("Criteria = %+v, want no genre/language/year", c)
	}
	if *c.MinRating != 0 || *c.MaxRating != 10 {
		t.Fatalf("ratings = %v..%v, want 0..10", *c.MinRating, *c.MaxRating)
	}
}

func TestFilterPanel_ShowPreloadsCriteria(t *testing.T) {
	p := NewFilterPanel(2025)
	p.Show(domain.FilterCriteria{Genre: "horror", Year: 2020, MinRating: domain.Rating(7)})

	c := p.Criteria()
	if c.Genre != "Horror" || c.Year != 2020 || *c.MinRating != 7 || *c.MaxRating != 10 {
		t.Fatalf("Criteria = %+v (%v..%v)", c, *c.MinRating, *c.MaxRating)
	}
}

func TestFilterPanel_RatingBoundsStayOrdered(t *testing.T) {
	p := NewFilterPanel(2025)
	p.Show(domain.FilterCriteria{})

	// Year row: newest year first
	press(&p, "j", "j", "l")
	if got := p.Criteria().Year; got != 2025 {
		t.Fatalf("Year = %d, want 2025", got)
	}

	// Min rating up to 10
	press(&p, "j")
	for i := 0; i < 30; i++ {
		press(&p, "l")
	}
	// Max rating down by one step pulls min with it
	press(&p, "j", "h")

	c := p.Criteria()
	if *c.MinRating != 9.5 || *c.MaxRating != 9.5 {
		t.Fatalf("ratings = %v..%v, want 9.5..9.5", *c.MinRating, *c.MaxRating)
	}
}

func TestFilterPanel_Actions(t *testing.T) {
	p := NewFilterPanel(2025)

	p.Show(domain.FilterCriteria{})
	if got := press(&p, "enter"); got != FilterApply || p.IsVisible() {
		t.Fatalf("enter = %v visible=%v, want apply and hidden", got, p.IsVisible())
	}

	p.Show(domain.FilterCriteria{})
	if got := press(&p, "esc"); got != FilterCancel || p.IsVisible() {
		t.Fatalf("esc = %v visible=%v, want cancel and hidden", got, p.IsVisible())
	}

	p.Show(domain.FilterCriteria{Genre: "Drama"})
	if got := press(&p, "r"); got != FilterReset {
		t.Fatalf("r = %v, want reset", got)
	}
	if p.Criteria().Genre != "" {
		t.Fatalf("Genre = %q after reset, want empty", p.Criteria().Genre)
	}
}

func TestNativeLanguageName(t *testing.T) {
	if got := NativeLanguageName("ja"); got != "日本語" {
		t.Fatalf("NativeLanguageName(ja) = %q, want 日本語", got)
	}
	if got := NativeLanguageName("not a tag!"); got != "" {
		t.Fatalf("NativeLanguageName(invalid) = %q, want empty", got)
	}
}
