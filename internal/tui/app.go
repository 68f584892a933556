package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/detail"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/listing"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ViewKind is the routed screen
type ViewKind int

const (
	ViewListing ViewKind = iota
	ViewDetail
)

// FavoriteStore is the favorites collection as seen by the UI
type FavoriteStore interface {
	List() []domain.MovieSummary
	IsFavorite(id int) bool
	Toggle(movie domain.MovieSummary) (bool, error)
}

// URLOpener hands links to something outside the terminal
type URLOpener interface {
	Open(url string) error
}

// DefaultSearchDebounce is the quiet window used when none is configured
const DefaultSearchDebounce = 500 * time.Millisecond

// Options configures a Model
type Options struct {
	Catalog   domain.Catalog
	Favorites FavoriteStore
	Details   *detail.Service
	Opener    URLOpener
	Images    tmdb.Images
	Logger    *slog.Logger

	SearchDebounce time.Duration
	CurrentYear    int

	// Startup state, at most one of the listing options applies
	StartMovieID   int
	StartCriteria  *domain.FilterCriteria
	StartSearch    string
	StartFavorites bool
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready    bool
	Route    ViewKind
	ShowHelp bool

	// Services
	Catalog   domain.Catalog
	Favorites FavoriteStore
	Details   *detail.Service
	Opener    URLOpener
	Logger    *slog.Logger

	// Listing state owner
	Listing *listing.Machine

	// UI Components
	SearchBar   components.SearchBar
	List        *components.MovieList
	Inspector   components.Inspector
	FilterPanel components.FilterPanel
	Detail      components.DetailView
	Spinner     spinner.Model
	Pager       paginator.Model

	// Dimensions
	Width  int
	Height int

	// Status line
	StatusMsg   string
	StatusIsErr bool
	statusGen   int

	debounce    time.Duration
	favoriteIDs map[int]bool
	startCmds   []tea.Cmd
}

// NewModel creates the application model and queues the startup loads
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := opts.SearchDebounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	year := opts.CurrentYear
	if year <= 0 {
		year = time.Now().Year()
	}

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "%d/%d"

	m := Model{
		Catalog:   opts.Catalog,
		Favorites: opts.Favorites,
		Details:   opts.Details,
		Opener:    opts.Opener,
		Logger:    logger,

		Listing:     listing.NewMachine(),
		SearchBar:   components.NewSearchBar(),
		List:        components.NewMovieList(),
		Inspector:   components.NewInspector(opts.Images),
		FilterPanel: components.NewFilterPanel(year),
		Detail:      components.NewDetailView(opts.Images),
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		Pager: pager,

		debounce: debounce,
	}
	m.List.SetFocused(true)
	m.loadFavoriteIDs()

	var q *listing.Query
	switch {
	case opts.StartFavorites:
		m.Listing.ShowFavorites(m.Favorites.List())
	case opts.StartCriteria != nil:
		q = m.Listing.ApplyFilters(*opts.StartCriteria)
	case strings.TrimSpace(opts.StartSearch) != "":
		m.SearchBar.SetValue(opts.StartSearch)
		ticket := m.Listing.SetSearchText(opts.StartSearch)
		q = m.Listing.FireSearch(ticket)
	default:
		q = m.Listing.Start()
	}
	if cmd := RunQueryCmd(m.Catalog, q); cmd != nil {
		m.startCmds = append(m.startCmds, cmd)
	}

	if opts.StartMovieID > 0 {
		m.startCmds = append(m.startCmds, m.openDetail(opts.StartMovieID))
	}

	m.syncListing()
	return m
}

// Init starts the spinner and the startup loads
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{m.Spinner.Tick}, m.startCmds...)
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		frame := m.Spinner.View()
		m.List.SetSpinnerFrame(frame)
		m.Detail.SetSpinnerFrame(frame)
		return m, cmd

	case SearchDebounceMsg:
		q := m.Listing.FireSearch(msg.Ticket)
		if q == nil {
			return m, nil
		}
		m.List.ClearFilter()
		m.syncListing()
		return m, RunQueryCmd(m.Catalog, q)

	case PageLoadedMsg:
		if !m.Listing.Apply(msg.Query, msg.Page) {
			m.Logger.Debug("discarding stale page", "gen", msg.Query.Gen, "page", msg.Query.Page)
			return m, nil
		}
		m.syncListing()
		return m, nil

	case PageFailedMsg:
		if !m.Listing.Fail(msg.Query, msg.Err) {
			return m, nil
		}
		m.Logger.Error("listing query failed", "kind", msg.Query.Kind, "page", msg.Query.Page, "error", msg.Err)
		if !m.SearchBar.Focused() {
			m.SearchBar.SetValue(m.Listing.State().SearchText)
		}
		m.syncListing()
		return m, m.setStatus(listingErrorText(msg.Err), true)

	case DetailLoadedMsg:
		if m.Route != ViewDetail || msg.ID != m.Detail.MovieID() {
			return m, nil
		}
		m.Detail.SetDetail(msg.Detail, m.favoriteIDs[msg.ID])
		return m, nil

	case DetailFailedMsg:
		if m.Route != ViewDetail || msg.ID != m.Detail.MovieID() {
			return m, nil
		}
		m.Detail.SetError(msg.Err)
		return m, nil

	case FavoriteToggledMsg:
		m.loadFavoriteIDs()
		m.Listing.RefreshFavorites(m.Favorites.List())
		m.syncListing()
		if m.Detail.MovieID() == msg.Movie.ID {
			m.Detail.SetFavorite(msg.IsFavorite)
		}
		if msg.IsFavorite {
			return m, m.setStatus("Added "+msg.Movie.Title+" to favorites", false)
		}
		return m, m.setStatus("Removed "+msg.Movie.Title+" from favorites", false)

	case URLOpenedMsg:
		return m, m.setStatus("Opened in browser", false)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case ErrMsg:
		m.Logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)
	}

	return m, nil
}

// openDetail routes to the detail screen and loads id
func (m *Model) openDetail(id int) tea.Cmd {
	m.Route = ViewDetail
	m.Detail.SetLoading(id)
	m.updateLayout()
	return LoadDetailCmd(m.Details, id)
}

// resetListing clears search, filters and favorites and loads trending
func (m *Model) resetListing() tea.Cmd {
	q := m.Listing.ResetFilters()
	m.SearchBar.SetValue("")
	m.SearchBar.Blur()
	m.List.ClearFilter()
	m.syncListing()
	return RunQueryCmd(m.Catalog, q)
}

// runQuery issues q after syncing the loading state
func (m *Model) runQuery(q *listing.Query) tea.Cmd {
	if q == nil {
		return nil
	}
	m.syncListing()
	return RunQueryCmd(m.Catalog, q)
}

func (m *Model) loadFavoriteIDs() {
	ids := make(map[int]bool)
	if m.Favorites != nil {
		for _, f := range m.Favorites.List() {
			ids[f.ID] = true
		}
	}
	m.favoriteIDs = ids
}

// syncListing pushes the listing state into the components
func (m *Model) syncListing() {
	s := m.Listing.State()

	m.List.SetMovies(s.Movies)
	m.List.SetFavorites(m.favoriteIDs)
	m.List.SetLoading(s.Loading)
	m.List.SetTitle(listingTitle(s))
	if s.Mode == listing.ModeFavorites {
		m.List.SetEmptyMessage("No favorites yet. Press space on a movie to add it.")
	} else {
		m.List.SetEmptyMessage("No movies found")
	}

	m.SearchBar.SetDisabled(s.Mode == listing.ModeFavorites)

	m.Pager.TotalPages = max(s.TotalPages, 1)
	m.Pager.Page = min(max(s.Page-1, 0), m.Pager.TotalPages-1)

	m.updateInspector()
}

// updateInspector shows the selected movie in the side panel
func (m *Model) updateInspector() {
	sel := m.List.SelectedMovie()
	if sel == nil {
		m.Inspector.SetMovie(nil, false)
		return
	}
	m.Inspector.SetMovie(sel, m.favoriteIDs[sel.ID])
}

// setStatus shows a status message until a newer one replaces it or it expires
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	m.statusGen++
	return ClearStatusCmd(m.statusGen)
}

// listingTitle is the list header for the active mode
func listingTitle(s listing.State) string {
	switch s.Mode {
	case listing.ModeSearching:
		return "Search: " + strings.TrimSpace(s.SearchText)
	case listing.ModeFiltered:
		return "Filtered: " + s.Criteria.Describe()
	case listing.ModeFavorites:
		return "My Favorite Movies"
	default:
		return "Trending this week"
	}
}

// listingErrorText is the status line shown when a listing query fails
func listingErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "TMDB rejected the API key. Check tmdb.api_key in your config."
	case errors.Is(err, context.DeadlineExceeded):
		return "TMDB took too long to answer. Try again."
	default:
		return "Couldn't load movies. Check your connection and try again."
	}
}
