package tmdb

// pageResponse is the envelope of every paginated list endpoint
type pageResponse struct {
	Page         int            `json:"page"`
	Results      []movieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// movieSummary is one entry of a list endpoint
type movieSummary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`   // null when missing
	BackdropPath *string `json:"backdrop_path"` // null when missing
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
}

// movieDetail is the /movie/{id} payload with credits and videos appended
type movieDetail struct {
	movieSummary

	Overview            string              `json:"overview"`
	Tagline             string              `json:"tagline"`
	Runtime             int                 `json:"runtime"`
	OriginalLanguage    string              `json:"original_language"`
	Genres              []genre             `json:"genres"`
	SpokenLanguages     []spokenLanguage    `json:"spoken_languages"`
	ProductionCompanies []productionCompany `json:"production_companies"`
	Credits             *credits            `json:"credits"`
	Videos              *videos             `json:"videos"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type spokenLanguage struct {
	ISO6391     string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

type productionCompany struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	LogoPath *string `json:"logo_path"`
}

type credits struct {
	Cast []castMember `json:"cast"`
}

type castMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

type videos struct {
	Results []video `json:"results"`
}

type video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

// errorResponse is the body TMDB returns with non-2xx statuses
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
