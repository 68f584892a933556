package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/listing"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries the results of a listing query
type PageLoadedMsg struct {
	Query *listing.Query
	Page  domain.PageResult
}

// PageFailedMsg reports a failed listing query
type PageFailedMsg struct {
	Query *listing.Query
	Err   error
}

// SearchDebounceMsg fires when the search quiet window for Ticket elapsed
type SearchDebounceMsg struct {
	Ticket uint64
}

// DetailLoadedMsg carries a loaded movie for the detail screen
type DetailLoadedMsg struct {
	ID     int
	Detail *domain.MovieDetail
}

// DetailFailedMsg reports a failed detail load
type DetailFailedMsg struct {
	ID  int
	Err error
}

// FavoriteToggledMsg reports the new membership of a movie
type FavoriteToggledMsg struct {
	Movie      domain.MovieSummary
	IsFavorite bool
}

// URLOpenedMsg reports that a URL was handed to the system
type URLOpenedMsg struct {
	URL string
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message set at generation Gen
type ClearStatusMsg struct {
	Gen int
}
