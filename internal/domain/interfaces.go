package domain

import "context"

// Catalog is the remote movie metadata service.
// All methods are plain request/response; nothing is cached locally.
type Catalog interface {
	// Trending returns a page of movies ranked by popularity over the last week
	Trending(ctx context.Context, page int) (PageResult, error)

	// Search returns a page of movies matching free text
	Search(ctx context.Context, query string, page int) (PageResult, error)

	// Discover returns a page of movies matching every set constraint,
	// sorted by descending popularity
	Discover(ctx context.Context, criteria FilterCriteria, page int) (PageResult, error)

	// Details returns the full record, including cast, in one round trip
	Details(ctx context.Context, id int) (*MovieDetail, error)
}

// Favorites is the local favorites collection keyed by movie ID.
type Favorites interface {
	List() []MovieSummary
	Add(movie MovieSummary) error
	Remove(id int) error
	IsFavorite(id int) bool
}
