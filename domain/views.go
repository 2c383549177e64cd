package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PublicUser is the identity subset returned after registration
type PublicUser struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UserProfile is the user projection returned with a token
type UserProfile struct {
	ID                string   `json:"id"`
	Email             *string  `json:"email"`
	Phone             *string  `json:"phone"`
	FirstName         *string  `json:"firstName"`
	LastName          *string  `json:"lastName"`
	PreferredLanguage Language `json:"preferredLanguage"`
	IsVerified        bool     `json:"isVerified"`
}

// AuthResponse is returned by password login and OTP verification
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserProfile `json:"user"`
}

// OTPRequestResult tells the caller how long the issued code lives
type OTPRequestResult struct {
	ExpiresIn int `json:"expiresIn"`
}

// GenreView is a genre resolved to one language
type GenreView struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// PlatformView is a platform link; availability fields are only set on detail views
type PlatformView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	IsAvailable    *bool      `json:"isAvailable,omitempty"`
	AvailableFrom  *time.Time `json:"availableFrom,omitempty"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
}

// MovieSummary is a movie list row
type MovieSummary struct {
	ID           string         `json:"id"`
	Title        *string        `json:"title"`
	Slug         string         `json:"slug"`
	Description  *string        `json:"description"`
	ReleaseDate  *time.Time     `json:"releaseDate"`
	Duration     int            `json:"duration"`
	Rating       float64        `json:"rating"`
	PosterURL    string         `json:"posterUrl"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	BackdropURL  string         `json:"backdropUrl"`
	Genre        *GenreView     `json:"genre"`
	Platforms    []PlatformView `json:"platforms"`
}

// ReviewView is a review resolved to one language
type ReviewView struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Rating  float64 `json:"rating"`
	Author  string  `json:"author"`
}

// MovieDetail is the full movie projection
type MovieDetail struct {
	MovieSummary
	AverageUserRating *string      `json:"averageUserRating"`
	TrailerURL        string       `json:"trailerUrl"`
	Director          *string      `json:"director"`
	Cast              []string     `json:"cast"`
	Reviews           []ReviewView `json:"reviews"`
}

// ShowSummary is a show list row
type ShowSummary struct {
	ID            string         `json:"id"`
	Title         *string        `json:"title"`
	Slug          string         `json:"slug"`
	Description   *string        `json:"description"`
	ReleaseDate   *time.Time     `json:"releaseDate"`
	TotalSeasons  int            `json:"totalSeasons"`
	TotalEpisodes int            `json:"totalEpisodes"`
	Rating        float64        `json:"rating"`
	PosterURL     string         `json:"posterUrl"`
	ThumbnailURL  string         `json:"thumbnailUrl"`
	Genre         *GenreView     `json:"genre"`
	Platforms     []PlatformView `json:"platforms"`
}

// EpisodeView is an episode resolved to one language
type EpisodeView struct {
	ID            string     `json:"id"`
	EpisodeNumber int        `json:"episodeNumber"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Duration      int        `json:"duration"`
	ReleaseDate   *time.Time `json:"releaseDate"`
	ThumbnailURL  string     `json:"thumbnailUrl"`
}

// SeasonView is a season with its ordered episodes
type SeasonView struct {
	ID           string        `json:"id"`
	SeasonNumber int           `json:"seasonNumber"`
	Title        *string       `json:"title"`
	Episodes     []EpisodeView `json:"episodes"`
}

// ShowDetail is the full show projection
type ShowDetail struct {
	ShowSummary
	BackdropURL string       `json:"backdropUrl"`
	Seasons     []SeasonView `json:"seasons"`
}

// ChannelView is a live channel resolved to one language
type ChannelView struct {
	ID          string         `json:"id"`
	Name        *string        `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description"`
	LogoURL     string         `json:"logoUrl"`
	Category    *string        `json:"category"`
	StreamURL   string         `json:"streamUrl"`
	Platforms   []PlatformView `json:"platforms"`
}

// SearchHit is one search result tagged with its content type
type SearchHit struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	PosterURL     string     `json:"posterUrl,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	TotalSeasons  *int       `json:"totalSeasons,omitempty"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Author        string     `json:"author,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
}

// SearchResults groups hits by content type
type SearchResults struct {
	Movies   []SearchHit `json:"movies"`
	Shows    []SearchHit `json:"shows"`
	Articles []SearchHit `json:"articles"`
}

// Total is the number of hits across all content types.
func (r *SearchResults) Total() int {
	return len(r.Movies) + len(r.Shows) + len(r.Articles)
}

// WatchlistItem is a watchlist entry joined with its content
type WatchlistItem struct {
	ID              string    `json:"id"`
	ContentID       string    `json:"contentId"`
	ContentType     string    `json:"contentType"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	PosterURL       string    `json:"posterUrl"`
	Status          string    `json:"status"`
	WatchedProgress float64   `json:"watchedProgress"`
	AddedAt         time.Time `json:"addedAt"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewPublicUser projects the identity fields of a user.
func NewPublicUser(u *User) PublicUser {
	return PublicUser{ID: u.ID, Email: nullable(u.Email), Phone: nullable(u.Phone)}
}

// NewUserProfile projects a user, resolving names in the user's preferred language.
func NewUserProfile(u *User) UserProfile {
	lang := u.PreferredLanguage
	if lang == "" {
		lang = DefaultLanguage
	}
	return UserProfile{
		ID:                u.ID,
		Email:             nullable(u.Email),
		Phone:             nullable(u.Phone),
		FirstName:         u.FirstName.Resolve(lang),
		LastName:          u.LastName.Resolve(lang),
		PreferredLanguage: lang,
		IsVerified:        u.IsVerified,
	}
}

func newGenreView(g *Genre, lang Language) *GenreView {
	if g == nil {
		return nil
	}
	return &GenreView{ID: g.ID, Name: g.Name.Resolve(lang)}
}

func newPlatformViews(links []PlatformAvailability, detailed bool) []PlatformView {
	views := make([]PlatformView, 0, len(links))
	for _, l := range links {
		v := PlatformView{ID: l.Platform.ID, Name: l.Platform.Name}
		if detailed {
			available := l.IsAvailable
			v.IsAvailable = &available
			v.AvailableFrom = l.AvailableFrom
			v.AvailableUntil = l.AvailableUntil
		}
		views = append(views, v)
	}
	return views
}

// NewMovieSummary projects a movie list row.
func NewMovieSummary(m *Movie, lang Language) MovieSummary {
	platforms := newPlatformViews(m.Platforms, false)
	for i := range platforms {
		available := m.Platforms[i].IsAvailable
		platforms[i].IsAvailable = &available
	}
	return MovieSummary{
		ID:           m.ID,
		Title:        m.Title.Resolve(lang),
		Slug:         m.Slug,
		Description:  m.Description.Resolve(lang),
		ReleaseDate:  m.ReleaseDate,
		Duration:     m.Duration,
		Rating:       m.Rating,
		PosterURL:    m.PosterURL,
		ThumbnailURL: m.ThumbnailURL,
		BackdropURL:  m.BackdropURL,
		Genre:        newGenreView(m.Genre, lang),
		Platforms:    platforms,
	}
}

// NewMovieDetail projects a movie with reviews, cast and average user rating.
func NewMovieDetail(m *Movie, lang Language) MovieDetail {
	summary := NewMovieSummary(m, lang)
	summary.Platforms = newPlatformViews(m.Platforms, true)

	reviews := make([]ReviewView, 0, len(m.Reviews))
	for _, r := range m.Reviews {
		reviews = append(reviews, ReviewView{
			ID:      r.ID,
			Title:   r.Title.Resolve(lang),
			Content: r.Content.Resolve(lang),
			Rating:  r.Rating,
			Author:  r.AuthorName,
		})
	}

	return MovieDetail{
		MovieSummary:      summary,
		AverageUserRating: AverageRating(m.Ratings),
		TrailerURL:        m.TrailerURL,
		Director:          m.Director.Resolve(lang),
		Cast:              ResolveCast(m.Cast, lang),
		Reviews:           reviews,
	}
}

// AverageRating returns the mean score formatted to one decimal, or nil without ratings.
func AverageRating(ratings []UserRating) *string {
	if len(ratings) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Score
	}
	avg := fmt.Sprintf("%.1f", sum/float64(len(ratings)))
	return &avg
}

// ResolveCast decodes the JSON cast list stored for the resolved language.
// Undecodable or missing values yield an empty list.
func ResolveCast(cast LocalizedText, lang Language) []string {
	names := []string{}
	raw := cast.Resolve(lang)
	if raw == nil {
		return names
	}
	if err := json.Unmarshal([]byte(*raw), &names); err != nil || names == nil {
		return []string{}
	}
	return names
}

// NewShowSummary projects a show list row.
func NewShowSummary(s *Show, lang Language) ShowSummary {
	return ShowSummary{
		ID:            s.ID,
		Title:         s.Title.Resolve(lang),
		Slug:          s.Slug,
		Description:   s.Description.Resolve(lang),
		ReleaseDate:   s.ReleaseDate,
		TotalSeasons:  s.TotalSeasons,
		TotalEpisodes: s.TotalEpisodes,
		Rating:        s.Rating,
		PosterURL:     s.PosterURL,
		ThumbnailURL:  s.ThumbnailURL,
		Genre:         newGenreView(s.Genre, lang),
		Platforms:     newPlatformViews(s.Platforms, false),
	}
}

// NewShowDetail projects a show with its seasons and episodes in stored order.
func NewShowDetail(s *Show, lang Language) ShowDetail {
	seasons := make([]SeasonView, 0, len(s.Seasons))
	for _, season := range s.Seasons {
		episodes := make([]EpisodeView, 0, len(season.Episodes))
		for _, e := range season.Episodes {
			episodes = append(episodes, EpisodeView{
				ID:            e.ID,
				EpisodeNumber: e.EpisodeNumber,
				Title:         e.Title.Resolve(lang),
				Description:   e.Description.Resolve(lang),
				Duration:      e.Duration,
				ReleaseDate:   e.ReleaseDate,
				ThumbnailURL:  e.ThumbnailURL,
			})
		}
		seasons = append(seasons, SeasonView{
			ID:           season.ID,
			SeasonNumber: season.SeasonNumber,
			Title:        season.Title.Resolve(lang),
			Episodes:     episodes,
		})
	}

	return ShowDetail{
		ShowSummary: NewShowSummary(s, lang),
		BackdropURL: s.BackdropURL,
		Seasons:     seasons,
	}
}

// NewChannelView projects a live channel.
func NewChannelView(c *LiveChannel, lang Language) ChannelView {
	return ChannelView{
		ID:          c.ID,
		Name:        c.Name.Resolve(lang),
		Slug:        c.Slug,
		Description: c.Description.Resolve(lang),
		LogoURL:     c.LogoURL,
		Category:    c.Category.Resolve(lang),
		StreamURL:   c.StreamURL,
		Platforms:   newPlatformViews(c.Platforms, false),
	}
}

// NewMovieHit projects a movie search result.
func NewMovieHit(m *Movie, lang Language) SearchHit {
	rating := m.Rating
	return SearchHit{
		ID:          m.ID,
		Type:        ContentTypeMovie,
		Title:       m.Title.Resolve(lang),
		Description: m.Description.Resolve(lang),
		PosterURL:   m.PosterURL,
		Rating:      &rating,
		ReleaseDate: m.ReleaseDate,
	}
}

// NewShowHit projects a show search result.
func NewShowHit(s *Show, lang Language) SearchHit {
	rating := s.Rating
	seasons := s.TotalSeasons
	return SearchHit{
		ID:           s.ID,
		Type:         ContentTypeShow,
		Title:        s.Title.Resolve(lang),
		Description:  s.Description.Resolve(lang),
		PosterURL:    s.PosterURL,
		Rating:       &rating,
		TotalSeasons: &seasons,
	}
}

// NewArticleHit projects an article search result.
func NewArticleHit(a *Article, lang Language) SearchHit {
	return SearchHit{
		ID:            a.ID,
		Type:          ContentTypeArticle,
		Title:         a.Title.Resolve(lang),
		Excerpt:       a.Excerpt.Resolve(lang),
		FeaturedImage: a.FeaturedImage,
		Author:        a.AuthorName,
		PublishedAt:   a.PublishedAt,
	}
}

// NewWatchlistItem projects an entry through whichever content it references.
func NewWatchlistItem(e *WatchlistEntry, lang Language) WatchlistItem {
	item := WatchlistItem{
		ID:              e.ID,
		ContentType:     e.ContentType(),
		Status:          e.Status,
		WatchedProgress: e.WatchedProgress,
		AddedAt:         e.CreatedAt,
	}

	switch {
	case e.Movie != nil:
		item.ContentID = e.Movie.ID
		item.Title = e.Movie.Title.Resolve(lang)
		item.Description = e.Movie.Description.Resolve(lang)
		item.PosterURL = e.Movie.PosterURL
	case e.Show != nil:
		item.ContentID = e.Show.ID
		item.Title = e.Show.Title.Resolve(lang)
		item.Description = e.Show.Description.Resolve(lang)
		item.PosterURL = e.Show.PosterURL
	case e.MovieID != "":
		item.ContentID = e.MovieID
	default:
		item.ContentID = e.ShowID
	}

	return item
}
