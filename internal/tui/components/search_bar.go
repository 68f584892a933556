package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchBar is the title search input at the top of the listing
type SearchBar struct {
	input    textinput.Model
	disabled bool
	width    int
}

// NewSearchBar creates a new search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies... (s)"
	ti.CharLimit = 100
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus starts capturing keys
func (s *SearchBar) Focus() tea.Cmd {
	if s.disabled {
		return nil
	}
	return s.input.Focus()
}

// Blur stops capturing keys, keeping the text
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused returns whether the bar is capturing keys
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// SetDisabled greys the bar out; a disabled bar never takes focus
func (s *SearchBar) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.input.Blur()
	}
}

// Value returns the current text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the text without reporting a change
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetWidth sets the rendered width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-4, 10)
}

// Update handles input events, returns (bar, cmd, changed)
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// View renders the search bar
func (s SearchBar) View() string {
	if s.disabled {
		return styles.DimStyle.Render("⌕ search is off while showing favorites")
	}
	return s.input.View()
}
