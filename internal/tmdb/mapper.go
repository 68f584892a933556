package tmdb

import (
	"sort"

	"github.com/mmcdole/marquee/internal/domain"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mapSummary converts a list entry to a domain summary
func mapSummary(m movieSummary) domain.MovieSummary {
	return domain.MovieSummary{
		ID:           m.ID,
		Title:        m.Title,
		PosterPath:   deref(m.PosterPath),
		BackdropPath: deref(m.BackdropPath),
		VoteAverage:  m.VoteAverage,
		ReleaseDate:  m.ReleaseDate,
	}
}

// mapPage converts a list envelope. Entries are passed through unfiltered;
// dropping incomplete artwork is the listing's job.
func mapPage(p pageResponse) domain.PageResult {
	movies := make([]domain.MovieSummary, 0, len(p.Results))
	for _, r := range p.Results {
		movies = append(movies, mapSummary(r))
	}
	return domain.PageResult{
		Movies:       movies,
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

// mapDetail converts the detail payload, keeping cast in billing order
func mapDetail(d movieDetail) *domain.MovieDetail {
	detail := &domain.MovieDetail{
		MovieSummary:     mapSummary(d.movieSummary),
		Overview:         d.Overview,
		Tagline:          d.Tagline,
		Runtime:          d.Runtime,
		OriginalLanguage: d.OriginalLanguage,
	}

	for _, g := range d.Genres {
		detail.Genres = append(detail.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	for _, l := range d.SpokenLanguages {
		detail.SpokenLanguages = append(detail.SpokenLanguages, domain.Language{
			Code:        l.ISO6391,
			EnglishName: l.EnglishName,
			Name:        l.Name,
		})
	}
	for _, c := range d.ProductionCompanies {
		detail.ProductionCompanies = append(detail.ProductionCompanies, domain.Company{
			ID:       c.ID,
			Name:     c.Name,
			LogoPath: deref(c.LogoPath),
		})
	}

	if d.Credits != nil {
		cast := append([]castMember(nil), d.Credits.Cast...)
		sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
		for _, c := range cast {
			detail.Cast = append(detail.Cast, domain.CastMember{
				ID:          c.ID,
				Name:        c.Name,
				Character:   c.Character,
				ProfilePath: deref(c.ProfilePath),
			})
		}
	}

	if d.Videos != nil {
		// Official uploads first, upstream order otherwise
		vids := append([]video(nil), d.Videos.Results...)
		sort.SliceStable(vids, func(i, j int) bool { return vids[i].Official && !vids[j].Official })
		for _, v := range vids {
			detail.Videos = append(detail.Videos, domain.Video{
				Key:  v.Key,
				Site: v.Site,
				Type: v.Type,
				Name: v.Name,
			})
		}
	}

	return detail
}
