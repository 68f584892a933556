package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Listing
	Search      key.Binding
	LocalFilter key.Binding
	FilterPanel key.Binding
	Favorites   key.Binding
	Reset       key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Open        key.Binding

	// Shared
	ToggleFavorite key.Binding
	OpenWeb        key.Binding
	Trailer        key.Binding
	Back           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search titles"),
		),
		LocalFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter this page"),
		),
		FilterPanel: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "genre/language/year/rating"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "favorites"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to trending"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "movie details"),
		),

		ToggleFavorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle favorite"),
		),
		OpenWeb: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on TMDB"),
		),
		Trailer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "play trailer"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "left", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
