package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	CreatePreferences(ctx context.Context, prefs *UserPreferences) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByIdentifier matches the value exactly against either email or phone
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	MarkVerified(ctx context.Context, userID string) error
	UpdatePreferredLanguage(ctx context.Context, userID string, lang Language) error
}

// OTPRepository defines one-time code persistence
type OTPRepository interface {
	Create(ctx context.Context, record *OTPRecord) error
	// FindUsable returns an unused record for the user and code expiring after now
	FindUsable(ctx context.Context, userID, code string, now time.Time) (*OTPRecord, error)
	MarkUsed(ctx context.Context, id string) error
}

// Sort fields accepted by catalog listings
const (
	SortByReleaseDate = "releaseDate"
	SortByRating      = "rating"
	SortByCreatedAt   = "createdAt"
	SortByTitle       = "title"
)

// IsSortField reports whether field is an accepted catalog sort field.
func IsSortField(field string) bool {
	switch field {
	case SortByReleaseDate, SortByRating, SortByCreatedAt, SortByTitle:
		return true
	}
	return false
}

// ListFilter narrows a catalog listing query. Available is always matched.
type ListFilter struct {
	Offset    int
	Limit     int
	GenreID   string
	Available bool
	SortField string
}

// CatalogRepository defines movie, show and live channel reads
type CatalogRepository interface {
	ListMovies(ctx context.Context, filter ListFilter) ([]Movie, int64, error)
	// FindMovie loads by id or slug with genre, platforms, latest reviews and all ratings
	FindMovie(ctx context.Context, identifier string, reviewLimit int) (*Movie, error)
	ListShows(ctx context.Context, filter ListFilter) ([]Show, int64, error)
	// FindShow loads by id or slug with seasons and episodes in ascending order
	FindShow(ctx context.Context, identifier string) (*Show, error)
	ListLiveChannels(ctx context.Context, limit int) ([]LiveChannel, error)
	MovieExists(ctx context.Context, id string) (bool, error)
	ShowExists(ctx context.Context, id string) (bool, error)
}

// SearchRepository defines substring search and the search log
type SearchRepository interface {
	SearchMovies(ctx context.Context, query string, limit int) ([]Movie, error)
	SearchShows(ctx context.Context, query string, limit int) ([]Show, error)
	SearchArticles(ctx context.Context, query string, limit int) ([]Article, error)
	CreateLog(ctx context.Context, log *SearchLog) error
	Trending(ctx context.Context, limit int) ([]TrendingQuery, error)
}

// WatchlistFilter narrows a watchlist listing
type WatchlistFilter struct {
	UserID string
	Status string
	Offset int
	Limit  int
}

// WatchlistRepository defines watchlist persistence
type WatchlistRepository interface {
	Create(ctx context.Context, entry *WatchlistEntry) error
	// List returns entries with their movie or show loaded
	List(ctx context.Context, filter WatchlistFilter) ([]WatchlistEntry, int64, error)
	FindByID(ctx context.Context, id string) (*WatchlistEntry, error)
	Update(ctx context.Context, entry *WatchlistEntry) error
	Delete(ctx context.Context, id string) error
}

// TokenDenylist records revoked token ids until they would have expired anyway
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	// Issue signs claims, filling in TokenID, IssuedAt and ExpiresAt
	Issue(claims *TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// NotificationService defines provider-level message delivery
type NotificationService interface {
	SendSMS(ctx context.Context, to, message string) error
	SendEmail(ctx context.Context, to, subject, body string) error
}

// OTPDispatcher delivers a one-time code to a phone number or email address
type OTPDispatcher interface {
	Send(ctx context.Context, destination, code string) error
}

// RegisterInput carries the optional registration fields
type RegisterInput struct {
	Email     string
	Phone     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService defines account and session business logic
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*PublicUser, error)
	Login(ctx context.Context, emailOrPhone, password string) (*AuthResponse, error)
	// Authenticate verifies a bearer token and rejects revoked ones
	Authenticate(ctx context.Context, token string) (*TokenClaims, error)
	Logout(ctx context.Context, claims *TokenClaims) error
	Me(ctx context.Context, userID string) (*UserProfile, error)
	UpdatePreferences(ctx context.Context, userID string, lang Language) (*UserProfile, error)
}

// OTPService defines OTP issuance and verification
type OTPService interface {
	Request(ctx context.Context, phoneOrEmail string) (*OTPRequestResult, error)
	Verify(ctx context.Context, phoneOrEmail, code string) (*AuthResponse, error)
}

// ListOptions are the caller-facing catalog listing parameters
type ListOptions struct {
	Page      int
	Limit     int
	Language  Language
	GenreID   string
	SortField string
	// Available selects available or unavailable titles; nil means available
	Available *bool
}

// CatalogService defines catalog browsing
type CatalogService interface {
	ListMovies(ctx context.Context, opts ListOptions) ([]MovieSummary, Pagination, error)
	ListShows(ctx context.Context, opts ListOptions) ([]ShowSummary, Pagination, error)
	MovieDetail(ctx context.Context, identifier string, lang Language) (*MovieDetail, error)
	ShowDetail(ctx context.Context, identifier string, lang Language) (*ShowDetail, error)
	LiveTV(ctx context.Context, lang Language, limit int) ([]ChannelView, error)
}

// SearchOptions are the search parameters besides the query text
type SearchOptions struct {
	Language    Language
	ContentType string
	Limit       int
}

// SearchService defines content search and trending queries
type SearchService interface {
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResults, error)
	Trending(ctx context.Context, limit int) ([]TrendingQuery, error)
}

// WatchlistQuery are the watchlist listing parameters
type WatchlistQuery struct {
	Language Language
	Status   string
	Page     int
	Limit    int
}

// WatchlistService defines per-user watchlist management
type WatchlistService interface {
	Add(ctx context.Context, userID, contentID, contentType string, lang Language) (*WatchlistItem, error)
	List(ctx context.Context, userID string, query WatchlistQuery) ([]WatchlistItem, Pagination, error)
	Update(ctx context.Context, userID, entryID, status string, progress *float64, lang Language) (*WatchlistItem, error)
	Remove(ctx context.Context, userID, entryID string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
}
