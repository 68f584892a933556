package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/detail"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/listing"
)

// Command factories for async operations

const (
	queryTimeout   = 30 * time.Second
	statusLifetime = 4 * time.Second
)

// RunQueryCmd runs a listing query against the catalog
func RunQueryCmd(catalog domain.Catalog, q *listing.Query) tea.Cmd {
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		var (
			page domain.PageResult
			err  error
		)
		switch q.Kind {
		case listing.QueryTrending:
			page, err = catalog.Trending(ctx, q.Page)
		case listing.QuerySearch:
			page, err = catalog.Search(ctx, q.Text, q.Page)
		case listing.QueryDiscover:
			page, err = catalog.Discover(ctx, q.Criteria, q.Page)
		default:
			err = fmt.Errorf("unknown query kind %d", q.Kind)
		}
		if err != nil {
			return PageFailedMsg{Query: q, Err: err}
		}
		return PageLoadedMsg{Query: q, Page: page}
	}
}

// SearchDebounceCmd fires a SearchDebounceMsg after the quiet window
func SearchDebounceCmd(window time.Duration, ticket uint64) tea.Cmd {
	if ticket == 0 {
		return nil
	}
	return tea.Tick(window, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Ticket: ticket}
	})
}

// LoadDetailCmd loads a movie for the detail screen
func LoadDetailCmd(svc *detail.Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		d, err := svc.Load(ctx, id)
		if err != nil {
			return DetailFailedMsg{ID: id, Err: err}
		}
		return DetailLoadedMsg{ID: id, Detail: d}
	}
}

// ToggleFavoriteCmd flips the favorite membership of movie
func ToggleFavoriteCmd(favs FavoriteStore, movie domain.MovieSummary) tea.Cmd {
	return func() tea.Msg {
		on, err := favs.Toggle(movie)
		if err != nil {
			return ErrMsg{Err: err, Context: "updating favorites"}
		}
		return FavoriteToggledMsg{Movie: movie, IsFavorite: on}
	}
}

// OpenURLCmd hands url to the external opener
func OpenURLCmd(opener URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "opening link"}
		}
		return URLOpenedMsg{URL: url}
	}
}

// ClearStatusCmd clears the status line after its lifetime
func ClearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}
