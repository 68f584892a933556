package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the movie list
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// MovieList is a scrollable list of movie rows with a local fuzzy filter
// that narrows the current page only.
type MovieList struct {
	movies    []domain.MovieSummary
	favorites map[int]bool

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title   string
	loading bool
	spinner string // current spinner frame, rendered while loading
	empty   string // message shown with no movies

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int         // indices into movies
	matchedIdx   map[int][]int // movie index -> matched byte offsets in title
	keys         MovieListKeyMap
}

// NewMovieList creates an empty movie list
func NewMovieList() *MovieList {
	ti := textinput.New()
	ti.Placeholder = "type to filter this page..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &MovieList{
		favorites:   make(map[int]bool),
		filterInput: ti,
		empty:       "No movies",
		keys:        DefaultMovieListKeyMap(),
		focused:     true,
	}
}

// SetMovies replaces the rows. The cursor is kept on the same movie when it
// is still present, otherwise it returns to the top.
func (l *MovieList) SetMovies(movies []domain.MovieSummary) {
	selectedID := 0
	if m := l.SelectedMovie(); m != nil {
		selectedID = m.ID
	}

	l.movies = movies
	l.cursor = 0
	l.offset = 0
	if l.filterActive {
		l.applyFilter()
	}
	for i := 0; i < l.ItemCount(); i++ {
		if l.movies[l.mapIndex(i)].ID == selectedID && selectedID != 0 {
			l.cursor = i
			break
		}
	}
	l.ensureVisible()
}

// SetFavorites sets the IDs marked with a heart
func (l *MovieList) SetFavorites(ids map[int]bool) {
	l.favorites = ids
}

// SetTitle sets the header line
func (l *MovieList) SetTitle(title string) {
	l.title = title
}

// SetLoading toggles the loading line
func (l *MovieList) SetLoading(loading bool) {
	l.loading = loading
}

// SetSpinnerFrame sets the rendered spinner frame
func (l *MovieList) SetSpinnerFrame(frame string) {
	l.spinner = frame
}

// SetEmptyMessage sets the text shown with no rows
func (l *MovieList) SetEmptyMessage(msg string) {
	l.empty = msg
}

// SetSize updates the component dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetFocused marks the list as the active pane
func (l *MovieList) SetFocused(focused bool) {
	l.focused = focused
}

// Update handles navigation and filter keys
func (l *MovieList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// Filter typing mode
	if l.filterActive && l.filterInput.Focused() {
		if isKey {
			switch {
			case key.Matches(keyMsg, l.keys.Escape):
				l.clearFilter()
				return nil
			case key.Matches(keyMsg, l.keys.Accept):
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				return nil
			case keyMsg.String() == "backspace" && l.filterInput.Value() == "":
				l.clearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		return cmd
	}

	if !isKey {
		return nil
	}

	// Filter active but blurred: esc clears, / resumes typing
	if l.filterActive {
		switch {
		case key.Matches(keyMsg, l.keys.Escape):
			l.clearFilter()
			return nil
		case key.Matches(keyMsg, l.keys.Filter):
			return l.filterInput.Focus()
		}
	}

	count := l.ItemCount()
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, l.keys.Down):
		if l.cursor < count-1 {
			l.cursor++
			l.ensureVisible()
		}
	case key.Matches(keyMsg, l.keys.Up):
		if l.cursor > 0 {
			l.cursor--
			l.ensureVisible()
		}
	case key.Matches(keyMsg, l.keys.Home):
		l.cursor = 0
		l.offset = 0
	case key.Matches(keyMsg, l.keys.End):
		l.cursor = count - 1
		l.ensureVisible()
	case key.Matches(keyMsg, l.keys.HalfDown):
		l.cursor = min(l.cursor+max(l.maxVisible/2, 1), count-1)
		l.ensureVisible()
	case key.Matches(keyMsg, l.keys.HalfUp):
		l.cursor = max(l.cursor-max(l.maxVisible/2, 1), 0)
		l.ensureVisible()
	}
	return nil
}

// SelectedMovie returns the movie under the cursor, nil when empty
func (l *MovieList) SelectedMovie() *domain.MovieSummary {
	if l.ItemCount() == 0 {
		return nil
	}
	m := l.movies[l.mapIndex(l.cursor)]
	return &m
}

// SelectedIndex returns the cursor position among visible rows
func (l *MovieList) SelectedIndex() int {
	return l.cursor
}

// ItemCount returns the number of visible rows
func (l *MovieList) ItemCount() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.movies)
}

// StartFilter activates the filter input
func (l *MovieList) StartFilter() tea.Cmd {
	l.filterActive = true
	l.recalcMaxVisible()
	return l.filterInput.Focus()
}

// IsFiltering returns true if the filter is active
func (l *MovieList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if the filter input has focus
func (l *MovieList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all rows
func (l *MovieList) ClearFilter() {
	l.clearFilter()
}

func (l *MovieList) recalcMaxVisible() {
	// Reserve title line and scroll indicators inside the border
	l.maxVisible = l.height - BorderHeight - ScrollIndicatorLines - 1
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *MovieList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *MovieList) clearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.filteredIdx = nil
	l.matchedIdx = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

// titleSource adapts lowercased movie titles to fuzzy.Source
type titleSource []domain.MovieSummary

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

func (l *MovieList) applyFilter() {
	query := l.filterInput.Value()
	l.filterQuery = query

	if query == "" {
		l.filteredIdx = nil
		l.matchedIdx = nil
		return
	}

	// Case-insensitive matching
	matches := fuzzy.FindFrom(strings.ToLower(query), titleSource(l.movies))

	l.filteredIdx = make([]int, len(matches))
	l.matchedIdx = make(map[int][]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
		l.matchedIdx[match.Index] = match.MatchedIndexes
	}

	l.cursor = 0
	l.offset = 0
}

func (l *MovieList) mapIndex(i int) int {
	if l.filteredIdx != nil && i < len(l.filteredIdx) {
		return l.filteredIdx[i]
	}
	return i
}

// View renders the list inside a border
func (l *MovieList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}
	return style.
		Width(max(l.width-BorderWidth, 1)).
		Height(max(l.height-BorderHeight, 1)).
		Render(l.renderContent())
}

func (l *MovieList) renderContent() string {
	itemWidth := max(l.width-BorderWidth, 10)

	lines := []string{styles.AccentStyle.Render(styles.Truncate(l.title, itemWidth))}

	if l.filterActive {
		lines = append(lines, l.renderFilterBar())
	}

	if l.loading && len(l.movies) == 0 {
		lines = append(lines, " ", styles.DimStyle.Render(l.spinner+" Loading..."))
		return strings.Join(lines, "\n")
	}

	count := l.ItemCount()
	if count == 0 {
		msg := l.empty
		if l.filterActive && l.filterQuery != "" {
			msg = "No matches"
		}
		lines = append(lines, " ", styles.DimStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	// Scroll indicator (top)
	if l.offset > 0 {
		lines = append(lines, styles.DimStyle.Render("  ↑ more"))
	} else {
		lines = append(lines, " ")
	}

	end := min(l.offset+l.maxVisible, count)
	for i := l.offset; i < end; i++ {
		idx := l.mapIndex(i)
		lines = append(lines, l.renderRow(idx, i == l.cursor, itemWidth))
	}

	// Scroll indicator (bottom)
	if end < count {
		lines = append(lines, styles.DimStyle.Render("  ↓ more"))
	}

	return strings.Join(lines, "\n")
}

func (l *MovieList) renderRow(idx int, selected bool, width int) string {
	movie := l.movies[idx]

	heart := " "
	heartFg := styles.Pink
	if l.favorites[movie.ID] {
		heart = styles.FavoriteChar
	}

	year := "    "
	if y := movie.Year(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	rating := styles.StarChar + " " + movie.FormattedRating()
	gold := styles.MarqueeGold
	dim := styles.DimGray

	// heart + space + year + space + rating(5) + space = fixed columns
	fixed := 1 + 1 + 4 + 1 + lipgloss.Width(rating) + 1
	titleWidth := max(width-fixed-2, 5)
	title := styles.Pad(styles.Truncate(movie.Title, titleWidth), titleWidth)
	if matched, ok := l.matchedIdx[idx]; ok && !selected {
		title = highlightMatches(title, matched)
	}

	parts := []styles.RowPart{
		{Text: heart, Foreground: &heartFg},
		{Text: " " + title},
		{Text: " " + year, Foreground: &dim},
		{Text: " " + rating, Foreground: &gold},
	}
	return styles.RenderListRow(parts, selected, width)
}

// highlightMatches colors the runes starting at the matched byte offsets
func highlightMatches(s string, matched []int) string {
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (l *MovieList) renderFilterBar() string {
	countStr := ""
	if l.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", l.ItemCount(), len(l.movies)))
	}
	return l.filterInput.View() + countStr
}
