package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Inspector is the inline detail panel for the selected listing row.
// It only shows what the summary carries; the full record lives on the
// detail screen.
type Inspector struct {
	movie      *domain.MovieSummary
	isFavorite bool
	images     tmdb.Images
	width      int
	height     int
}

// NewInspector creates a new inspector component
func NewInspector(images tmdb.Images) Inspector {
	return Inspector{images: images}
}

// SetMovie sets the movie to display (nil clears the panel)
func (i *Inspector) SetMovie(movie *domain.MovieSummary, isFavorite bool) {
	i.movie = movie
	i.isFavorite = isFavorite
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// HasMovie returns true if there is a movie to display
func (i Inspector) HasMovie() bool {
	return i.movie != nil
}

// View renders the component
func (i Inspector) View() string {
	contentWidth := max(i.width-3, 10)

	var lines []string
	lines = append(lines, styles.AccentStyle.Render("Info"), "")

	if i.movie == nil {
		lines = append(lines, styles.DimStyle.Render("Nothing selected"))
	} else {
		lines = append(lines, i.render(contentWidth)...)
	}

	if len(lines) > i.height-2 && i.height > 2 {
		lines = lines[:i.height-2]
	}

	return styles.InactiveBorder.
		Width(max(i.width-2, 1)).
		Height(max(i.height-2, 1)).
		Render(strings.Join(lines, "\n"))
}

func (i Inspector) render(width int) []string {
	m := i.movie
	var lines []string

	for _, l := range wrap(m.Title, width) {
		lines = append(lines, styles.TitleStyle.Render(l))
	}

	meta := []string{}
	if y := m.Year(); y > 0 {
		meta = append(meta, fmt.Sprintf("%d", y))
	}
	if m.ReleaseDate != "" {
		meta = append(meta, "released "+m.ReleaseDate)
	}
	if len(meta) > 0 {
		lines = append(lines, styles.SubtitleStyle.Render(strings.Join(meta, " · ")))
	}
	lines = append(lines, "")

	lines = append(lines, styles.RenderStars(m.VoteAverage)+" "+
		styles.DimStyle.Render(fmt.Sprintf("%s/10", m.FormattedRating())))

	if i.isFavorite {
		lines = append(lines, styles.FavoriteMark+" "+styles.SubtitleStyle.Render("In your favorites"))
	} else {
		lines = append(lines, styles.DimStyle.Render("space to add to favorites"))
	}
	lines = append(lines, "")

	if url := i.images.Poster(m.PosterPath); url != "" {
		lines = append(lines, styles.DimStyle.Render("Poster"))
		lines = append(lines, styles.Truncate(url, width))
	}
	if url := i.images.Backdrop(m.BackdropPath); url != "" {
		lines = append(lines, styles.DimStyle.Render("Backdrop"))
		lines = append(lines, styles.Truncate(url, width))
	}
	lines = append(lines, "", styles.DimStyle.Render("enter for details · o to open on TMDB"))

	return lines
}

// wrap breaks s into lines of at most width display columns on word boundaries
func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
