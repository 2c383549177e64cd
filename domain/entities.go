package domain

import (
	"math"
	"time"
)

// RoleUser is the role assigned to every registered account
const RoleUser = "user"

// User represents an account holder
type User struct {
	ID                string
	Email             string
	Phone             string
	PasswordHash      string
	Role              string
	IsActive          bool
	IsVerified        bool
	PreferredLanguage Language
	FirstName         LocalizedText
	LastName          LocalizedText
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserPreferences holds per-user playback and notification settings
type UserPreferences struct {
	UserID             string
	Language           Language
	EmailNotifications bool
	Autoplay           bool
}

// OTPRecord is a single-use code issued to a user
type OTPRecord struct {
	ID          string
	UserID      string
	Destination string
	Code        string
	ExpiresAt   time.Time
	IsUsed      bool
	CreatedAt   time.Time
}

// Usable reports whether the record can still authenticate at the given instant.
func (o *OTPRecord) Usable(now time.Time) bool {
	return !o.IsUsed && o.ExpiresAt.After(now)
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    string `json:"sub"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	TokenID   string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// Genre classifies movies and shows
type Genre struct {
	ID   string
	Slug string
	Name LocalizedText
}

// StreamingPlatform is a service content can be watched on
type StreamingPlatform struct {
	ID      string
	Name    string
	LogoURL string
}

// PlatformAvailability links content to a platform with its own availability window
type PlatformAvailability struct {
	Platform       StreamingPlatform
	IsAvailable    bool
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
}

// Movie is a standalone feature
type Movie struct {
	ID           string
	Slug         string
	Title        LocalizedText
	Description  LocalizedText
	Director     LocalizedText
	Cast         LocalizedText // JSON array per language
	ReleaseDate  *time.Time
	Duration     int
	Rating       float64
	PosterURL    string
	ThumbnailURL string
	BackdropURL  string
	TrailerURL   string
	IsAvailable  bool
	Genre        *Genre
	Platforms    []PlatformAvailability
	Reviews      []Review
	Ratings      []UserRating
}

// UserRating is a single numeric score left by a user
type UserRating struct {
	UserID string
	Score  float64
}

// Review is a written opinion about a movie
type Review struct {
	ID         string
	Title      LocalizedText
	Content    LocalizedText
	Rating     float64
	AuthorName string
}

// Show is an episodic series
type Show struct {
	ID            string
	Slug          string
	Title         LocalizedText
	Description   LocalizedText
	ReleaseDate   *time.Time
	TotalSeasons  int
	TotalEpisodes int
	Rating        float64
	PosterURL     string
	ThumbnailURL  string
	BackdropURL   string
	IsAvailable   bool
	Genre         *Genre
	Platforms     []PlatformAvailability
	Seasons       []Season
}

// Season belongs to a show; episodes are ordered by episode number
type Season struct {
	ID           string
	SeasonNumber int
	Title        LocalizedText
	Episodes     []Episode
}

// Episode is a single installment of a season
type Episode struct {
	ID            string
	EpisodeNumber int
	Title         LocalizedText
	Description   LocalizedText
	Duration      int
	ReleaseDate   *time.Time
	ThumbnailURL  string
}

// LiveChannel is a linear TV channel
type LiveChannel struct {
	ID          string
	Slug        string
	Name        LocalizedText
	Description LocalizedText
	Category    LocalizedText
	LogoURL     string
	StreamURL   string
	IsLive      bool
	Platforms   []PlatformAvailability
}

// Article is an editorial piece
type Article struct {
	ID            string
	Slug          string
	Title         LocalizedText
	Excerpt       LocalizedText
	Content       LocalizedText
	FeaturedImage string
	IsPublished   bool
	PublishedAt   *time.Time
	AuthorName    string
}

// Watchlist statuses
const (
	WatchStatusToWatch  = "to_watch"
	WatchStatusWatching = "watching"
	WatchStatusWatched  = "watched"
)

// Content types
const (
	ContentTypeMovie   = "movie"
	ContentTypeShow    = "show"
	ContentTypeArticle = "article"
	ContentTypeAll     = "all"
)

// WatchlistEntry references exactly one of a movie or a show
type WatchlistEntry struct {
	ID              string
	UserID          string
	MovieID         string
	ShowID          string
	Status          string
	WatchedProgress float64
	CreatedAt       time.Time
	Movie           *Movie
	Show            *Show
}

// ContentType returns which kind of content the entry points at.
func (w *WatchlistEntry) ContentType() string {
	if w.MovieID != "" {
		return ContentTypeMovie
	}
	return ContentTypeShow
}

// SearchLog records a single search invocation
type SearchLog struct {
	ID           string
	Query        string
	Language     Language
	ResultsCount int
	CreatedAt    time.Time
}

// TrendingQuery is an aggregated count of identical queries
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Pagination describes one page of a list result
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes total pages for the given page request.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Offset is the number of rows to skip for this page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// HasNextPage reports whether a later page exists.
func (p Pagination) HasNextPage() bool { return p.Page < p.TotalPages }

// HasPreviousPage reports whether an earlier page exists.
func (p Pagination) HasPreviousPage() bool { return p.Page > 1 }
