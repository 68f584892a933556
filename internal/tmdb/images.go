package tmdb

import "strings"

// Default image sizes
const (
	PosterSize   = "w500"
	BackdropSize = "original"
	ProfileSize  = "w185"
)

// ImageURL builds host + "/" + size + path. An empty path yields "".
func ImageURL(host, size, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(host, "/") + "/" + size + path
}

// Images resolves relative image paths using configured sizes
type Images struct {
	Host         string
	PosterSize   string
	BackdropSize string
	ProfileSize  string
}

// DefaultImages returns the public image host with default sizes
func DefaultImages() Images {
	return Images{
		Host:         "https://image.tmdb.org/t/p",
		PosterSize:   PosterSize,
		BackdropSize: BackdropSize,
		ProfileSize:  ProfileSize,
	}
}

func (i Images) Poster(path string) string   { return ImageURL(i.Host, i.PosterSize, path) }
func (i Images) Backdrop(path string) string { return ImageURL(i.Host, i.BackdropSize, path) }
func (i Images) Profile(path string) string  { return ImageURL(i.Host, i.ProfileSize, path) }

// MoviePageURL returns the public web page of a movie
func MoviePageURL(id int) string {
	return "https://www.themoviedb.org/movie/" + itoa(id)
}
