package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/detail"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// DetailView is the full-screen movie detail page
type DetailView struct {
	state      detail.State
	movie      *domain.MovieDetail
	movieID    int
	err        error
	isFavorite bool
	spinner    string

	images   tmdb.Images
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailView creates an empty detail view
func NewDetailView(images tmdb.Images) DetailView {
	return DetailView{images: images, viewport: viewport.New(0, 0)}
}

// SetLoading shows the loading state for id
func (d *DetailView) SetLoading(id int) {
	d.state = detail.StateLoading
	d.movieID = id
	d.movie = nil
	d.err = nil
	d.refresh()
	d.viewport.GotoTop()
}

// SetDetail shows a loaded movie
func (d *DetailView) SetDetail(movie *domain.MovieDetail, isFavorite bool) {
	d.state = detail.StateLoaded
	d.movie = movie
	d.movieID = movie.ID
	d.isFavorite = isFavorite
	d.err = nil
	d.refresh()
	d.viewport.GotoTop()
}

// SetError shows the not found or failed state
func (d *DetailView) SetError(err error) {
	d.state = detail.StateOf(err)
	d.movie = nil
	d.err = err
	d.refresh()
}

// SetFavorite updates the heart without reloading
func (d *DetailView) SetFavorite(isFavorite bool) {
	d.isFavorite = isFavorite
	d.refresh()
}

// SetSpinnerFrame sets the rendered spinner frame
func (d *DetailView) SetSpinnerFrame(frame string) {
	d.spinner = frame
	if d.state == detail.StateLoading {
		d.refresh()
	}
}

// State returns the current lifecycle state
func (d DetailView) State() detail.State {
	return d.state
}

// Movie returns the loaded movie, nil unless loaded
func (d DetailView) Movie() *domain.MovieDetail {
	return d.movie
}

// MovieID returns the id being shown or loaded
func (d DetailView) MovieID() int {
	return d.movieID
}

// SetSize updates the component dimensions
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = height
	d.refresh()
}

// Update scrolls the viewport
func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the component
func (d DetailView) View() string {
	return d.viewport.View()
}

func (d *DetailView) refresh() {
	d.viewport.SetContent(d.render())
}

func (d DetailView) render() string {
	width := max(d.width-4, 20)

	switch d.state {
	case detail.StateLoading:
		return styles.DimStyle.Render(fmt.Sprintf("%s Loading movie %d...", d.spinner, d.movieID))
	case detail.StateNotFound:
		return styles.TitleStyle.Render("Movie not found") + "\n\n" +
			styles.DimStyle.Render("esc to go back")
	case detail.StateFailed:
		msg := "Something went wrong loading this movie."
		if d.err != nil {
			msg += "\n" + d.err.Error()
		}
		return styles.ErrorStyle.Render(msg) + "\n\n" + styles.DimStyle.Render("esc to go back")
	}

	m := d.movie
	if m == nil {
		return ""
	}

	var b strings.Builder

	title := m.Title
	if d.isFavorite {
		title = styles.FavoriteMark + " " + styles.TitleStyle.Render(title)
	} else {
		title = styles.TitleStyle.Render(title)
	}
	b.WriteString(title + "\n")
	if m.Tagline != "" {
		b.WriteString(styles.SubtitleStyle.Italic(true).Render(m.Tagline) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.RenderStars(m.VoteAverage) + " " +
		styles.AccentStyle.Render(m.FormattedRating()) + styles.DimStyle.Render("/10") + "\n")
	if genres := m.GenreNames(); len(genres) > 0 {
		b.WriteString(styles.SubtitleStyle.Render(strings.Join(genres, " · ")) + "\n")
	}
	b.WriteString("\n")

	if m.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Render(m.Overview) + "\n\n")
	}

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.DimStyle.Render(styles.Pad(label, 12)) + value + "\n")
	}
	field("Released", m.ReleaseDate)
	field("Runtime", m.FormattedRuntime())
	field("Languages", strings.Join(m.LanguageNames(), ", "))
	if len(m.ProductionCompanies) > 0 {
		names := make([]string, len(m.ProductionCompanies))
		for i, c := range m.ProductionCompanies {
			names[i] = c.Name
		}
		field("Studios", strings.Join(names, ", "))
	}
	if v, ok := m.Trailer(); ok {
		field("Trailer", v.URL())
	}
	field("Poster", d.images.Poster(m.PosterPath))
	field("Backdrop", d.images.Backdrop(m.BackdropPath))

	cast := m.TopCast(detail.CastLimit)
	if len(cast) > 0 {
		b.WriteString("\n" + styles.AccentStyle.Render("Top cast") + "\n")
		for _, c := range cast {
			line := styles.Pad(c.Name, 28)
			if c.Character != "" {
				line += styles.DimStyle.Render(c.Character)
			}
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + styles.DimStyle.Render("space favorite · o open on TMDB · t trailer · esc back"))
	return b.String()
}
