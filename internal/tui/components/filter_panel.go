package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Rating bounds of the panel sliders
const (
	RatingMin  = 0.0
	RatingMax  = 10.0
	RatingStep = 0.5

	// YearCount is how many years the year selector offers
	YearCount = 24
)

// FilterField is one row of the filter panel
type FilterField int

const (
	FieldGenre FilterField = iota
	FieldLanguage
	FieldYear
	FieldMinRating
	FieldMaxRating
	fieldCount
)

// String returns the row label
func (f FilterField) String() string {
	switch f {
	case FieldGenre:
		return "Genre"
	case FieldLanguage:
		return "Language"
	case FieldYear:
		return "Year"
	case FieldMinRating:
		return "Min rating"
	case FieldMaxRating:
		return "Max rating"
	default:
		return "Unknown"
	}
}

// FilterAction is what the user chose when leaving the panel
type FilterAction int

const (
	FilterNone FilterAction = iota
	FilterApply
	FilterReset
	FilterCancel
)

// FilterPanel is a modal for choosing discover constraints
type FilterPanel struct {
	visible bool
	cursor  FilterField

	genres    []tmdb.Named
	languages []tmdb.Named
	years     []int

	// Selected option per field; 0 is "Any" for genre/language/year
	genreIdx int
	langIdx  int
	yearIdx  int
	minStep  int // rating = step * RatingStep
	maxStep  int

	keys FilterPanelKeyMap
}

// NewFilterPanel creates a panel whose year list counts down from
// currentYear.
func NewFilterPanel(currentYear int) FilterPanel {
	years := make([]int, YearCount)
	for i := range years {
		years[i] = currentYear - i
	}
	p := FilterPanel{
		genres:    tmdb.Genres(),
		languages: tmdb.Languages(),
		years:     years,
		keys:      DefaultFilterPanelKeyMap(),
	}
	p.clear()
	return p
}

func maxStep() int {
	return int(RatingMax / RatingStep)
}

func (p *FilterPanel) clear() {
	p.genreIdx = 0
	p.langIdx = 0
	p.yearIdx = 0
	p.minStep = 0
	p.maxStep = maxStep()
}

// Show displays the panel preloaded with the active criteria
func (p *FilterPanel) Show(current domain.FilterCriteria) {
	p.visible = true
	p.cursor = FieldGenre
	p.clear()

	for i, g := range p.genres {
		if strings.EqualFold(g.Name, current.Genre) {
			p.genreIdx = i + 1
		}
	}
	for i, l := range p.languages {
		if strings.EqualFold(l.Name, current.Language) {
			p.langIdx = i + 1
		}
	}
	for i, y := range p.years {
		if y == current.Year {
			p.yearIdx = i + 1
		}
	}
	if current.MinRating != nil {
		p.minStep = ratingToStep(*current.MinRating)
	}
	if current.MaxRating != nil {
		p.maxStep = ratingToStep(*current.MaxRating)
	}
}

// Hide dismisses the panel
func (p *FilterPanel) Hide() {
	p.visible = false
}

// IsVisible returns whether the panel is shown
func (p FilterPanel) IsVisible() bool {
	return p.visible
}

// Criteria returns the current selection. Rating bounds are always set.
func (p FilterPanel) Criteria() domain.FilterCriteria {
	c := domain.FilterCriteria{
		MinRating: domain.Rating(float64(p.minStep) * RatingStep),
		MaxRating: domain.Rating(float64(p.maxStep) * RatingStep),
	}
	if p.genreIdx > 0 {
		c.Genre = p.genres[p.genreIdx-1].Name
	}
	if p.langIdx > 0 {
		c.Language = p.languages[p.langIdx-1].Name
	}
	if p.yearIdx > 0 {
		c.Year = p.years[p.yearIdx-1]
	}
	return c
}

// HandleKey processes a key press and reports the user's decision.
// All keys are consumed while the panel is visible.
func (p *FilterPanel) HandleKey(msg tea.KeyMsg) (handled bool, action FilterAction) {
	if !p.visible {
		return false, FilterNone
	}

	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < fieldCount-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Prev):
		p.adjust(-1)
	case key.Matches(msg, p.keys.Next):
		p.adjust(1)
	case key.Matches(msg, p.keys.Apply):
		p.visible = false
		return true, FilterApply
	case key.Matches(msg, p.keys.Reset):
		p.clear()
		p.visible = false
		return true, FilterReset
	case key.Matches(msg, p.keys.Cancel):
		p.visible = false
		return true, FilterCancel
	}
	return true, FilterNone
}

// adjust moves the value of the focused row, keeping min <= max
func (p *FilterPanel) adjust(delta int) {
	switch p.cursor {
	case FieldGenre:
		p.genreIdx = cycle(p.genreIdx+delta, len(p.genres)+1)
	case FieldLanguage:
		p.langIdx = cycle(p.langIdx+delta, len(p.languages)+1)
	case FieldYear:
		p.yearIdx = cycle(p.yearIdx+delta, len(p.years)+1)
	case FieldMinRating:
		p.minStep = clampInt(p.minStep+delta, 0, maxStep())
		if p.minStep > p.maxStep {
			p.maxStep = p.minStep
		}
	case FieldMaxRating:
		p.maxStep = clampInt(p.maxStep+delta, 0, maxStep())
		if p.maxStep < p.minStep {
			p.minStep = p.maxStep
		}
	}
}

func (p FilterPanel) valueLabel(f FilterField) string {
	switch f {
	case FieldGenre:
		if p.genreIdx == 0 {
			return "Any"
		}
		return p.genres[p.genreIdx-1].Name
	case FieldLanguage:
		if p.langIdx == 0 {
			return "Any"
		}
		l := p.languages[p.langIdx-1]
		if native := NativeLanguageName(l.Code); native != "" && native != l.Name {
			return fmt.Sprintf("%s (%s)", l.Name, native)
		}
		return l.Name
	case FieldYear:
		if p.yearIdx == 0 {
			return "Any"
		}
		return strconv.Itoa(p.years[p.yearIdx-1])
	case FieldMinRating:
		return strconv.FormatFloat(float64(p.minStep)*RatingStep, 'f', 1, 64)
	case FieldMaxRating:
		return strconv.FormatFloat(float64(p.maxStep)*RatingStep, 'f', 1, 64)
	}
	return ""
}

// NativeLanguageName returns the language's name in that language, e.g.
// "日本語" for "ja".
func NativeLanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}

// View renders the panel
func (p FilterPanel) View() string {
	if !p.visible {
		return ""
	}

	const rowWidth = 40

	var lines []string
	for f := FilterField(0); f < fieldCount; f++ {
		label := styles.Pad(f.String(), 12)
		value := "‹ " + p.valueLabel(f) + " ›"
		text := styles.Pad(label+value, rowWidth)

		if f == p.cursor {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.LightGray).
				Render(text))
		}
	}

	hints := styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" apply  ") +
		styles.HelpKeyStyle.Render("r") + styles.HelpDescStyle.Render(" reset  ") +
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.MarqueeGold).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Filter movies") + "\n" +
			strings.Join(lines, "\n") + "\n\n" + hints)
}

func ratingToStep(v float64) int {
	return clampInt(int(v/RatingStep+0.5), 0, maxStep())
}

func cycle(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
