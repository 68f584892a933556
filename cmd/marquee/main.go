package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/detail"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearLine clears the progress line from the terminal
const clearLine = "\r                                    \r"

// options holds the parsed command line
type options struct {
	movieID    int
	search     string
	favorites  bool
	filters    cliFilters
	exportPath string
	importPath string
}

func main() {
	var (
		showVersion bool
		opts        options
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.IntVar(&opts.movieID, "movie", 0, "open the detail view for a TMDB movie ID")
	flag.StringVar(&opts.search, "search", "", "start with a title search")
	flag.BoolVar(&opts.favorites, "favorites", false, "start on your favorite movies")
	flag.StringVar(&opts.filters.genre, "genre", "", "start filtered by genre (e.g. Horror)")
	flag.StringVar(&opts.filters.language, "language", "", "start filtered by original language (e.g. Japanese)")
	flag.IntVar(&opts.filters.year, "year", 0, "start filtered by release year")
	flag.Float64Var(&opts.filters.minRating, "min-rating", -1, "start filtered by minimum rating (0-10)")
	flag.Float64Var(&opts.filters.maxRating, "max-rating", -1, "start filtered by maximum rating (0-10)")
	flag.StringVar(&opts.exportPath, "export-favorites", "", "write favorites to a TOML file and exit")
	flag.StringVar(&opts.importPath, "import-favorites", "", "merge favorites from a TOML file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logCloser, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, logCloser = adapter.NullLogger(), io.NopCloser(nil)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Open favorites storage
	st, err := store.NewLocalStore(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()
	favs := favorites.NewService(st, logger)

	if opts.exportPath != "" || opts.importPath != "" {
		return runTransfer(favs, opts)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("marquee needs an interactive terminal")
	}

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(cfg, logger); err != nil {
			return err
		}
	}

	client, err := tmdb.NewClient(clientOptions(cfg, cfg.TMDB.APIKey), logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	criteria, warnings := opts.filters.criteria()
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning: "+w)
		logger.Warn("ignoring start filter", "reason", w)
	}

	model := tui.NewModel(tui.Options{
		Catalog:   client,
		Favorites: favs,
		Details:   detail.NewService(client, logger),
		Opener:    adapter.NewOpener(cfg.Opener, logger),
		Images: tmdb.Images{
			Host:         cfg.TMDB.ImageBaseURL,
			PosterSize:   cfg.TMDB.PosterSize,
			BackdropSize: cfg.TMDB.BackdropSize,
			ProfileSize:  cfg.TMDB.ProfileSize,
		},
		Logger:         logger,
		SearchDebounce: cfg.UI.SearchDebounce,
		StartMovieID:   opts.movieID,
		StartCriteria:  criteria,
		StartSearch:    opts.search,
		StartFavorites: opts.favorites,
	})

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runTransfer handles -export-favorites and -import-favorites
func runTransfer(favs *favorites.Service, opts options) error {
	if opts.importPath != "" {
		added, err := favs.Import(opts.importPath)
		if err != nil {
			return fmt.Errorf("failed to import favorites: %w", err)
		}
		fmt.Printf("✓ Imported %d new favorites from %s\n", added, opts.importPath)
	}
	if opts.exportPath != "" {
		n, err := favs.Export(opts.exportPath)
		if err != nil {
			return fmt.Errorf("failed to export favorites: %w", err)
		}
		fmt.Printf("✓ Exported %d favorites to %s\n", n, opts.exportPath)
	}
	return nil
}

// clientOptions builds TMDB client options from config with the given key
func clientOptions(cfg *adapter.Config, apiKey string) tmdb.Options {
	return tmdb.Options{
		BaseURL: cfg.TMDB.BaseURL,
		APIKey:  apiKey,
		Timeout: cfg.TMDB.Timeout,
	}
}

// runSetupFlow asks for a TMDB API key, checks it and saves it
func runSetupFlow(cfg *adapter.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee needs a TMDB API key (v3 auth).")
	fmt.Println("Create one at https://www.themoviedb.org/settings/api")
	fmt.Println()

	for {
		fmt.Print("API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		apiKey := strings.TrimSpace(string(raw))
		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		fmt.Print("Checking key with TMDB...")
		err = checkAPIKey(cfg, apiKey, logger)
		fmt.Print(clearLine)
		if errors.Is(err, domain.ErrUnauthorized) {
			fmt.Println("✗ TMDB rejected that key. Please try again.")
			fmt.Println()
			continue
		}
		if err != nil {
			return fmt.Errorf("could not reach TMDB: %w", err)
		}

		cfg.TMDB.APIKey = apiKey
		if err := adapter.SaveAPIKey(apiKey); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("✓ Key saved to %s\n", adapter.ConfigFile())
		fmt.Println()
		logger.Info("api key configured")
		return nil
	}
}

// checkAPIKey makes one trending request with apiKey
func checkAPIKey(cfg *adapter.Config, apiKey string, logger *slog.Logger) error {
	client, err := tmdb.NewClient(clientOptions(cfg, apiKey), logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err = client.Trending(ctx, 1)
	return err
}
