package tmdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/3", APIKey: "secret"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Options{}, nil); !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("NewClient error = %v, want ErrNotConfigured", err)
	}
	if _, err := NewClient(Options{APIKey: "k", BaseURL: "::bad"}, nil); err == nil {
		t.Fatalf("NewClient accepted an invalid base url")
	}
}

func TestClient_TrendingAndSearch(t *testing.T) {
	var gotPaths []string
	var gotQueries []url.Values

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		gotQueries = append(gotQueries, r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"page":2,"total_pages":9,"total_results":170,"results":[
			{"id":27205,"title":"Inception","poster_path":"/p.jpg","backdrop_path":"/b.jpg","vote_average":8.4,"release_date":"2010-07-15"},
			{"id":1,"title":"No Art","poster_path":null,"backdrop_path":null,"vote_average":5,"release_date":""}
		]}`)
	})
	ctx := testContext(t)

	page, err := c.Trending(ctx, 2)
	if err != nil {
		t.Fatalf("Trending returned error: %v", err)
	}
	if page.Page != 2 || page.TotalPages != 9 || page.TotalResults != 170 || len(page.Movies) != 2 {
		t.Fatalf("Trending = %+v", page)
	}
	if page.Movies[0].PosterPath != "/p.jpg" || page.Movies[1].PosterPath != "" {
		t.Fatalf("poster paths = %q, %q", page.Movies[0].PosterPath, page.Movies[1].PosterPath)
	}

	if _, err := c.Search(ctx, "star wars", 1); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if gotPaths[0] != "/3/trending/movie/week" || gotQueries[0].Get("page") != "2" {
		t.Fatalf("trending request = %s ? %v", gotPaths[0], gotQueries[0])
	}
	if gotPaths[1] != "/3/search/movie" || gotQueries[1].Get("query") != "star wars" || gotQueries[1].Get("page") != "1" {
		t.Fatalf("search request = %s ? %v", gotPaths[1], gotQueries[1])
	}
	for i, q := range gotQueries {
		if q.Get("api_key") != "secret" {
			t.Fatalf("request %d missing api_key: %v", i, q)
		}
	}
}

func TestClient_DiscoverSendsOnlySetFilters(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/discover/movie" {
			http.NotFound(w, r)
			return
		}
		got = r.URL.Query()
		_, _ = io.WriteString(w, `{"page":1,"total_pages":1,"total_results":0,"results":[]}`)
	})

	criteria := domain.FilterCriteria{Genre: "Horror", MinRating: domain.Rating(7), MaxRating: domain.Rating(10)}
	if _, err := c.Discover(testContext(t), criteria, 1); err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	want := map[string]string{
		"with_genres":      "27",
		"vote_average.gte": "7",
		"vote_average.lte": "10",
		"include_adult":    "false",
		"sort_by":          "popularity.desc",
		"page":             "1",
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, got.Get(k), v)
		}
	}
	for _, k := range []string{"primary_release_year", "with_original_language"} {
		if got.Has(k) {
			t.Errorf("%s present, want omitted", k)
		}
	}
}

func TestDiscoverQuery_AllFiltersAndUnknownNames(t *testing.T) {
	q := DiscoverQuery(domain.FilterCriteria{Genre: "sci-fi", Language: "JAPANESE", Year: 1988, MinRating: domain.Rating(6.5)}, 3)
	if q.Get("with_genres") != "878" || q.Get("with_original_language") != "ja" {
		t.Fatalf("lookups = %v", q)
	}
	if q.Get("primary_release_year") != "1988" || q.Get("vote_average.gte") != "6.5" || q.Has("vote_average.lte") {
		t.Fatalf("query = %v", q)
	}

	q = DiscoverQuery(domain.FilterCriteria{Genre: "Western", Language: "Klingon"}, 0)
	if q.Has("with_genres") || q.Has("with_original_language") {
		t.Fatalf("unknown names should be omitted: %v", q)
	}
	if q.Get("page") != "1" {
		t.Fatalf("page = %q, want 1", q.Get("page"))
	}
}

func TestClient_DetailsAppendsCreditsAndVideos(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = io.WriteString(w, `{
			"id":603,"title":"The Matrix","poster_path":"/m.jpg","backdrop_path":"/mb.jpg",
			"vote_average":8.2,"release_date":"1999-03-30","runtime":136,"overview":"Neo.",
			"genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}],
			"spoken_languages":[{"iso_639_1":"en","english_name":"English","name":"English"}],
			"production_companies":[{"id":79,"name":"Village Roadshow","logo_path":null}],
			"credits":{"cast":[
				{"id":2,"name":"Laurence Fishburne","character":"Morpheus","order":1,"profile_path":null},
				{"id":1,"name":"Keanu Reeves","character":"Neo","order":0,"profile_path":"/k.jpg"}
			]},
			"videos":{"results":[
				{"key":"teaser","site":"YouTube","type":"Teaser","official":false},
				{"key":"vKQi3bBA1y8","site":"YouTube","type":"Trailer","official":true}
			]}
		}`)
	})

	d, err := c.Details(testContext(t), 603)
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if got.URL.Path != "/3/movie/603" || got.URL.Query().Get("append_to_response") != "credits,videos" {
		t.Fatalf("request = %s", got.URL.String())
	}
	if d.Runtime != 136 || d.Year() != 1999 || len(d.Genres) != 2 {
		t.Fatalf("detail = %+v", d)
	}
	if len(d.Cast) != 2 || d.Cast[0].Name != "Keanu Reeves" || d.Cast[1].ProfilePath != "" {
		t.Fatalf("cast = %+v", d.Cast)
	}
	if v, ok := d.Trailer(); !ok || v.Key != "vKQi3bBA1y8" {
		t.Fatalf("Trailer = %+v, %v", v, ok)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrMovieNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusTooManyRequests, domain.ErrUpstream},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = io.WriteString(w, `{"status_code":34,"status_message":"nope"}`)
		})
		if _, err := c.Details(testContext(t), 999999); !errors.Is(err, tc.want) {
			t.Errorf("status %d: error = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestClient_ListNotFoundIsUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	calls := map[string]func() error{
		"Trending": func() error { _, err := c.Trending(testContext(t), 1); return err },
		"Search":   func() error { _, err := c.Search(testContext(t), "dune", 1); return err },
		"Discover": func() error { _, err := c.Discover(testContext(t), domain.FilterCriteria{}, 1); return err },
	}
	for name, call := range calls {
		err := call()
		if !errors.Is(err, domain.ErrUpstream) {
			t.Errorf("%s error = %v, want ErrUpstream", name, err)
		}
		if errors.Is(err, domain.ErrMovieNotFound) {
			t.Errorf("%s error = %v, must not be ErrMovieNotFound", name, err)
		}
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"page": "one"`)
	})
	_, err := c.Trending(testContext(t), 1)
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("Trending error = %v, want parse error", err)
	}
}
