// Package listing owns the state of the movie listing screen: which mode is
// active, which page is shown, and which upstream query results are still
// wanted.
package listing

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// Mode is the source of the visible list
type Mode int

const (
	ModeTrending Mode = iota
	ModeSearching
	ModeFiltered
	ModeFavorites
)

func (m Mode) String() string {
	switch m {
	case ModeTrending:
		return "trending"
	case ModeSearching:
		return "searching"
	case ModeFiltered:
		return "filtered"
	case ModeFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// QueryKind selects the catalog call a Query maps to
type QueryKind int

const (
	QueryTrending QueryKind = iota
	QuerySearch
	QueryDiscover
)

// Query is one catalog request issued by the machine. Gen identifies it;
// only the most recently issued Gen may change the visible list.
type Query struct {
	Kind     QueryKind
	Page     int
	Text     string
	Criteria domain.FilterCriteria
	Gen      uint64
}

// State is a snapshot of the listing
type State struct {
	Mode         Mode
	Movies       []domain.MovieSummary
	Page         int
	TotalPages   int
	TotalResults int
	SearchText   string
	Criteria     domain.FilterCriteria
	Loading      bool
	Err          error
}

// Machine is the single owner of listing state. Intents are methods that
// mutate state and return the query to run, or nil when nothing is fetched.
type Machine struct {
	state    State
	gen      uint64
	last     *Query
	debounce Debouncer

	// What produced the visible list, restored when a query fails
	shown shown
	// Search text changed since the last query was issued
	edited bool
}

type shown struct {
	mode       Mode
	searchText string
	criteria   domain.FilterCriteria
	page       int
	last       *Query
}

// NewMachine returns a machine in trending mode with nothing loaded
func NewMachine() *Machine {
	m := &Machine{state: State{Mode: ModeTrending, Page: 1, TotalPages: 1}}
	m.settle()
	return m
}

// State returns a copy of the current state
func (m *Machine) State() State {
	s := m.state
	s.Movies = append([]domain.MovieSummary(nil), m.state.Movies...)
	return s
}

// Mode returns the active mode
func (m *Machine) Mode() Mode {
	return m.state.Mode
}

// Generation returns the token of the latest issued query or mode switch
func (m *Machine) Generation() uint64 {
	return m.gen
}

// SearchTicket returns the newest debounce ticket
func (m *Machine) SearchTicket() uint64 {
	return m.debounce.latest
}

// Start loads the first trending page
func (m *Machine) Start() *Query {
	return m.ResetFilters()
}

// SetSearchText records text and returns the debounce ticket to fire after
// the quiet window. Returns 0 while showing favorites.
func (m *Machine) SetSearchText(text string) uint64 {
	if m.state.Mode == ModeFavorites {
		return 0
	}
	m.state.SearchText = text
	m.edited = true
	return m.debounce.Next()
}

// FireSearch runs the search for a ticket whose window elapsed. Stale tickets
// return nil. Non-empty text searches from page 1; empty text returns to
// trending unless filters or favorites are active.
func (m *Machine) FireSearch(ticket uint64) *Query {
	if !m.debounce.IsCurrent(ticket) {
		return nil
	}

	text := strings.TrimSpace(m.state.SearchText)
	switch {
	case m.state.Mode == ModeFavorites:
		return nil
	case text != "":
		m.state.Mode = ModeSearching
		m.state.Criteria = domain.FilterCriteria{}
		return m.issue(Query{Kind: QuerySearch, Page: 1, Text: text})
	case m.state.Mode == ModeFiltered:
		return nil
	default:
		m.state.Mode = ModeTrending
		return m.issue(Query{Kind: QueryTrending, Page: 1})
	}
}

// ApplyFilters switches to discover results for criteria from page 1.
// Any search text is cleared.
func (m *Machine) ApplyFilters(criteria domain.FilterCriteria) *Query {
	m.debounce.Cancel()
	m.state.Mode = ModeFiltered
	m.state.SearchText = ""
	m.state.Criteria = criteria
	return m.issue(Query{Kind: QueryDiscover, Page: 1, Criteria: criteria})
}

// ResetFilters clears criteria, search text and favorites and loads
// trending page 1. It is also the way back from favorites.
func (m *Machine) ResetFilters() *Query {
	m.debounce.Cancel()
	m.state.Mode = ModeTrending
	m.state.SearchText = ""
	m.state.Criteria = domain.FilterCriteria{}
	return m.issue(Query{Kind: QueryTrending, Page: 1})
}

// ShowFavorites replaces the list with favorites. Nothing is fetched, but the
// generation advances so in-flight results are dropped.
func (m *Machine) ShowFavorites(favorites []domain.MovieSummary) {
	m.debounce.Cancel()
	m.gen++
	m.last = nil

	m.state.Mode = ModeFavorites
	m.state.SearchText = ""
	m.state.Criteria = domain.FilterCriteria{}
	m.state.Loading = false
	m.state.Err = nil
	m.setFavorites(favorites)
	m.settle()
}

// RefreshFavorites replaces the list when favorites are showing
func (m *Machine) RefreshFavorites(favorites []domain.MovieSummary) {
	if m.state.Mode != ModeFavorites {
		return
	}
	m.setFavorites(favorites)
}

func (m *Machine) setFavorites(favorites []domain.MovieSummary) {
	m.state.Movies = append([]domain.MovieSummary(nil), favorites...)
	m.state.Page = 1
	m.state.TotalPages = 1
	m.state.TotalResults = len(favorites)
}

// ChangePage re-issues the current mode's query for page n, clamped to the
// known page range. Favorites have a single page.
func (m *Machine) ChangePage(n int) *Query {
	if m.state.Mode == ModeFavorites || m.last == nil {
		return nil
	}
	if n > m.state.TotalPages {
		n = m.state.TotalPages
	}
	if n < 1 {
		n = 1
	}
	if n == m.state.Page {
		return nil
	}
	q := *m.last
	q.Page = n
	return m.issue(q)
}

// NextPage is ChangePage(page+1)
func (m *Machine) NextPage() *Query {
	return m.ChangePage(m.state.Page + 1)
}

// PrevPage is ChangePage(page-1)
func (m *Machine) PrevPage() *Query {
	return m.ChangePage(m.state.Page - 1)
}

// Apply installs the results of q. Results of superseded queries are
// discarded and Apply returns false. Entries missing a poster or backdrop
// are never shown.
func (m *Machine) Apply(q *Query, page domain.PageResult) bool {
	if !m.current(q) {
		return false
	}

	movies := make([]domain.MovieSummary, 0, len(page.Movies))
	for _, movie := range page.Movies {
		if movie.HasArtwork() {
			movies = append(movies, movie)
		}
	}

	m.state.Movies = movies
	m.state.Page = q.Page
	if page.Page > 0 {
		m.state.Page = page.Page
	}
	m.state.TotalPages = max(page.TotalPages, 1)
	m.state.TotalResults = page.TotalResults
	m.state.Loading = false
	m.state.Err = nil
	m.settle()
	return true
}

// Fail records a failed query. The previous list stays visible together with
// the mode, search text, criteria and page that produced it, so paging
// continues from that list. Search text typed after q was issued is kept.
func (m *Machine) Fail(q *Query, err error) bool {
	if !m.current(q) {
		return false
	}
	m.state.Mode = m.shown.mode
	m.state.Criteria = m.shown.criteria
	if !m.edited {
		m.state.SearchText = m.shown.searchText
	}
	m.state.Page = m.shown.page
	m.last = m.shown.last
	m.state.Loading = false
	m.state.Err = err
	return true
}

// settle records the visible list as the state a failed query returns to
func (m *Machine) settle() {
	m.shown = shown{
		mode:     m.state.Mode,
		criteria: m.state.Criteria,
		page:     m.state.Page,
		last:     m.last,
	}
	if m.last != nil && m.last.Kind == QuerySearch {
		m.shown.searchText = m.last.Text
	}
}

func (m *Machine) current(q *Query) bool {
	return q != nil && q.Gen == m.gen
}

func (m *Machine) issue(q Query) *Query {
	m.gen++
	q.Gen = m.gen

	last := q
	m.last = &last

	m.edited = false
	m.state.Page = q.Page
	m.state.Loading = true
	m.state.Err = nil
	return &q
}
