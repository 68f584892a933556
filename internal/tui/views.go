package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/listing"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	if m.Route == ViewDetail {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader("Movie details"),
			m.Detail.View(),
			m.renderFooter(),
		)
	}

	var body string
	if m.FilterPanel.IsVisible() {
		body = lipgloss.Place(m.Width, m.calculateListingLayout().contentHeight,
			lipgloss.Center, lipgloss.Center,
			m.FilterPanel.View(),
		)
	} else {
		body = m.renderListing()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(modeLabel(m.Listing.Mode())),
		m.SearchBar.View(),
		body,
		m.renderFooter(),
	)
}

// renderListing renders the movie list with the inspector beside it
func (m Model) renderListing() string {
	if m.calculateListingLayout().inspectorWidth == 0 {
		return m.List.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), m.Inspector.View())
}

// renderHeader renders the title bar
func (m Model) renderHeader(section string) string {
	title := styles.HeaderStyle.Render("🎬 Marquee")
	sub := styles.SubtitleStyle.Render(" " + section)
	line := title + sub
	if gap := m.Width - lipgloss.Width(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// renderFooter renders the status and paging line
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	case m.Route == ViewListing && m.Listing.State().Loading:
		left = m.Spinner.View() + styles.DimStyle.Render(" Loading...")
	}

	var middle string
	if m.Route == ViewListing {
		s := m.Listing.State()
		middle = styles.DimStyle.Render("page " + m.Pager.View())
		if s.TotalResults > 0 {
			middle += styles.DimStyle.Render(fmt.Sprintf(" · %d movies", s.TotalResults))
		}
	}

	right := styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")

	used := lipgloss.Width(left) + lipgloss.Width(middle) + lipgloss.Width(right)
	space := max(m.Width-used, 2)
	leftGap := space / 2
	return left + strings.Repeat(" ", leftGap) + middle + strings.Repeat(" ", space-leftGap) + right
}

// renderHelp renders the key binding overlay
func (m Model) renderHelp() string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Browse", []key.Binding{Keys.Search, Keys.LocalFilter, Keys.FilterPanel, Keys.Favorites, Keys.Reset, Keys.PrevPage, Keys.NextPage, Keys.Open}},
		{"Movie", []key.Binding{Keys.ToggleFavorite, Keys.OpenWeb, Keys.Trailer, Keys.Back}},
		{"General", []key.Binding{Keys.Help, Keys.Quit}},
	}

	var lines []string
	lines = append(lines, styles.ModalTitleStyle.Render("Keyboard shortcuts"))
	for _, sec := range sections {
		lines = append(lines, styles.AccentStyle.Render(sec.title))
		for _, b := range sec.bindings {
			h := b.Help()
			lines = append(lines, "  "+styles.HelpKeyStyle.Render(styles.Pad(h.Key, 8))+styles.HelpDescStyle.Render(h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styles.DimStyle.Render("press any key to close"))

	box := styles.ModalStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// modeLabel names the listing mode in the header
func modeLabel(mode listing.Mode) string {
	switch mode {
	case listing.ModeSearching:
		return "Search"
	case listing.ModeFiltered:
		return "Discover"
	case listing.ModeFavorites:
		return "Favorites"
	default:
		return "Trending"
	}
}
