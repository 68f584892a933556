package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/listing"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses help
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if m.Route == ViewDetail {
		return m.handleDetailKey(msg)
	}

	// Route to active input if any
	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	favorites := m.Listing.Mode() == listing.ModeFavorites

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case msg.String() == "esc":
		if m.List.IsFiltering() {
			m.List.ClearFilter()
			m.updateInspector()
			return m, nil
		}
		if favorites {
			return m, m.resetListing()
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		if favorites {
			return m, m.setStatus("Search is off while showing favorites (v to go back)", false)
		}
		return m, m.SearchBar.Focus()

	case key.Matches(msg, Keys.LocalFilter):
		return m, m.List.StartFilter()

	case key.Matches(msg, Keys.FilterPanel):
		if favorites {
			return m, m.setStatus("Filters are off while showing favorites (v to go back)", false)
		}
		m.FilterPanel.Show(m.Listing.State().Criteria)
		return m, nil

	case key.Matches(msg, Keys.Favorites):
		if favorites {
			return m, m.resetListing()
		}
		m.Listing.ShowFavorites(m.Favorites.List())
		m.SearchBar.SetValue("")
		m.SearchBar.Blur()
		m.List.ClearFilter()
		m.syncListing()
		return m, nil

	case key.Matches(msg, Keys.Reset):
		return m, m.resetListing()

	case key.Matches(msg, Keys.NextPage):
		return m, m.runQuery(m.Listing.NextPage())

	case key.Matches(msg, Keys.PrevPage):
		return m, m.runQuery(m.Listing.PrevPage())

	case key.Matches(msg, Keys.ToggleFavorite):
		if sel := m.List.SelectedMovie(); sel != nil {
			return m, ToggleFavoriteCmd(m.Favorites, *sel)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenWeb):
		if sel := m.List.SelectedMovie(); sel != nil {
			return m, OpenURLCmd(m.Opener, tmdb.MoviePageURL(sel.ID))
		}
		return m, nil

	case key.Matches(msg, Keys.Open):
		if sel := m.List.SelectedMovie(); sel != nil {
			return m, m.openDetail(sel.ID)
		}
		return m, nil
	}

	// Everything else moves the cursor
	cmd := m.List.Update(msg)
	m.updateInspector()
	return m, cmd
}

// routeToInput sends keys to the filter panel, the search bar or the
// page filter when one of them owns the keyboard.
func (m Model) routeToInput(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.FilterPanel.IsVisible() {
		_, action := m.FilterPanel.HandleKey(msg)
		switch action {
		case components.FilterApply:
			q := m.Listing.ApplyFilters(m.FilterPanel.Criteria())
			m.SearchBar.SetValue("")
			m.SearchBar.Blur()
			m.List.ClearFilter()
			return true, m, m.runQuery(q)
		case components.FilterReset:
			return true, m, m.resetListing()
		}
		return true, m, nil
	}

	if m.SearchBar.Focused() {
		switch msg.String() {
		case "esc", "enter", "tab", "down":
			m.SearchBar.Blur()
			return true, m, nil
		}

		var cmd tea.Cmd
		var changed bool
		m.SearchBar, cmd, changed = m.SearchBar.Update(msg)
		if !changed {
			return true, m, cmd
		}
		ticket := m.Listing.SetSearchText(m.SearchBar.Value())
		return true, m, tea.Batch(cmd, SearchDebounceCmd(m.debounce, ticket))
	}

	if m.List.IsFilterTyping() {
		cmd := m.List.Update(msg)
		m.updateInspector()
		return true, m, cmd
	}

	return false, m, nil
}

// handleDetailKey handles keys on the detail screen
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Back):
		m.Route = ViewListing
		m.updateInspector()
		return m, nil

	case key.Matches(msg, Keys.ToggleFavorite):
		if movie := m.Detail.Movie(); movie != nil {
			return m, ToggleFavoriteCmd(m.Favorites, movie.MovieSummary)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenWeb):
		if id := m.Detail.MovieID(); id > 0 {
			return m, OpenURLCmd(m.Opener, tmdb.MoviePageURL(id))
		}
		return m, nil

	case key.Matches(msg, Keys.Trailer):
		movie := m.Detail.Movie()
		if movie == nil {
			return m, nil
		}
		trailer, ok := movie.Trailer()
		if !ok {
			return m, m.setStatus("No trailer available", false)
		}
		return m, OpenURLCmd(m.Opener, trailer.URL())
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}
