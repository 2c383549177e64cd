package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDModel gives a table a string UUID primary key assigned on insert
type UUIDModel struct {
	ID string `gorm:"primaryKey;size:36"`
}

// BeforeCreate assigns an ID when the caller did not supply one
func (m *UUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	UUIDModel
	Email             *string `gorm:"uniqueIndex;size:255"`
	Phone             *string `gorm:"uniqueIndex;size:32"`
	PasswordHash      string  `gorm:"column:password_hash"`
	Role              string  `gorm:"index;size:64;default:user"`
	IsActive          bool    `gorm:"index"`
	IsVerified        bool
	PreferredLanguage string `gorm:"size:8;default:en"`
	FirstNameEn       string `gorm:"size:128"`
	FirstNameAr       string `gorm:"size:128"`
	LastNameEn        string `gorm:"size:128"`
	LastNameAr        string `gorm:"size:128"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (DBUser) TableName() string { return "users" }

type DBUserPreferences struct {
	UUIDModel
	UserID             string `gorm:"uniqueIndex;size:36"`
	Language           string `gorm:"size:8;default:en"`
	EmailNotifications bool
	Autoplay           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (DBUserPreferences) TableName() string { return "user_preferences" }

type DBOTPRecord struct {
	UUIDModel
	UserID    string  `gorm:"index;size:36"`
	Phone     *string `gorm:"size:32"`
	Email     *string `gorm:"size:255"`
	Code      string  `gorm:"size:12;index"`
	ExpiresAt time.Time
	IsUsed    bool `gorm:"index"`
	CreatedAt time.Time
}

func (DBOTPRecord) TableName() string { return "otp_records" }

type DBGenre struct {
	UUIDModel
	Slug   string `gorm:"uniqueIndex;size:128"`
	NameEn string `gorm:"size:128"`
	NameAr string `gorm:"size:128"`
}

func (DBGenre) TableName() string { return "genres" }

type DBStreamingPlatform struct {
	UUIDModel
	Name    string `gorm:"uniqueIndex;size:128"`
	LogoURL string
}

func (DBStreamingPlatform) TableName() string { return "streaming_platforms" }

// DBContentPlatform links one of a movie, show or live channel to a platform
type DBContentPlatform struct {
	UUIDModel
	PlatformID     string              `gorm:"index;size:36"`
	Platform       DBStreamingPlatform `gorm:"foreignKey:PlatformID"`
	MovieID        *string             `gorm:"index;size:36"`
	ShowID         *string             `gorm:"index;size:36"`
	ChannelID      *string             `gorm:"index;size:36"`
	IsAvailable    bool
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
}

func (DBContentPlatform) TableName() string { return "content_platforms" }

type DBMovie struct {
	UUIDModel
	Slug          string     `gorm:"uniqueIndex;size:191"`
	TitleEn       string     `gorm:"size:255"`
	TitleAr       string     `gorm:"size:255"`
	DescriptionEn string     `gorm:"type:text"`
	DescriptionAr string     `gorm:"type:text"`
	DirectorEn    string     `gorm:"size:255"`
	DirectorAr    string     `gorm:"size:255"`
	CastEn        string     `gorm:"type:text"`
	CastAr        string     `gorm:"type:text"`
	ReleaseDate   *time.Time `gorm:"index"`
	Duration      int
	Rating        float64 `gorm:"index"`
	PosterURL     string
	ThumbnailURL  string
	BackdropURL   string
	TrailerURL    string
	IsAvailable   bool   `gorm:"index"`
	GenreID       string `gorm:"index;size:36"`
	Genre         *DBGenre
	Platforms     []DBContentPlatform `gorm:"foreignKey:MovieID"`
	Reviews       []DBReview          `gorm:"foreignKey:MovieID"`
	Ratings       []DBRating          `gorm:"foreignKey:MovieID"`
	CreatedAt     time.Time           `gorm:"index"`
	UpdatedAt     time.Time
}

func (DBMovie) TableName() string { return "movies" }

type DBReview struct {
	UUIDModel
	MovieID   string `gorm:"index;size:36"`
	UserID    string `gorm:"index;size:36"`
	User      *DBUser
	TitleEn   string `gorm:"size:255"`
	TitleAr   string `gorm:"size:255"`
	ContentEn string `gorm:"type:text"`
	ContentAr string `gorm:"type:text"`
	Rating    float64
	CreatedAt time.Time `gorm:"index"`
}

func (DBReview) TableName() string { return "reviews" }

type DBRating struct {
	UUIDModel
	MovieID   string `gorm:"index;size:36"`
	UserID    string `gorm:"index;size:36"`
	Score     float64
	CreatedAt time.Time
}

func (DBRating) TableName() string { return "user_ratings" }

type DBShow struct {
	UUIDModel
	Slug          string     `gorm:"uniqueIndex;size:191"`
	TitleEn       string     `gorm:"size:255"`
	TitleAr       string     `gorm:"size:255"`
	DescriptionEn string     `gorm:"type:text"`
	DescriptionAr string     `gorm:"type:text"`
	ReleaseDate   *time.Time `gorm:"index"`
	TotalSeasons  int
	TotalEpisodes int
	Rating        float64 `gorm:"index"`
	PosterURL     string
	ThumbnailURL  string
	BackdropURL   string
	IsAvailable   bool   `gorm:"index"`
	GenreID       string `gorm:"index;size:36"`
	Genre         *DBGenre
	Platforms     []DBContentPlatform `gorm:"foreignKey:ShowID"`
	Seasons       []DBSeason          `gorm:"foreignKey:ShowID"`
	CreatedAt     time.Time           `gorm:"index"`
	UpdatedAt     time.Time
}

func (DBShow) TableName() string { return "shows" }

type DBSeason struct {
	UUIDModel
	ShowID       string `gorm:"index;size:36"`
	SeasonNumber int
	TitleEn      string      `gorm:"size:255"`
	TitleAr      string      `gorm:"size:255"`
	Episodes     []DBEpisode `gorm:"foreignKey:SeasonID"`
}

func (DBSeason) TableName() string { return "seasons" }

type DBEpisode struct {
	UUIDModel
	SeasonID      string `gorm:"index;size:36"`
	EpisodeNumber int
	TitleEn       string `gorm:"size:255"`
	TitleAr       string `gorm:"size:255"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`
	Duration      int
	ReleaseDate   *time.Time
	ThumbnailURL  string
}

func (DBEpisode) TableName() string { return "episodes" }

type DBLiveChannel struct {
	UUIDModel
	Slug          string `gorm:"uniqueIndex;size:191"`
	NameEn        string `gorm:"size:255"`
	NameAr        string `gorm:"size:255"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`
	CategoryEn    string `gorm:"size:128"`
	CategoryAr    string `gorm:"size:128"`
	LogoURL       string
	StreamURL     string
	IsLive        bool                `gorm:"index"`
	Platforms     []DBContentPlatform `gorm:"foreignKey:ChannelID"`
	CreatedAt     time.Time
}

func (DBLiveChannel) TableName() string { return "live_channels" }

type DBArticle struct {
	UUIDModel
	Slug          string `gorm:"uniqueIndex;size:191"`
	TitleEn       string `gorm:"size:255"`
	TitleAr       string `gorm:"size:255"`
	ExcerptEn     string `gorm:"type:text"`
	ExcerptAr     string `gorm:"type:text"`
	ContentEn     string `gorm:"type:text"`
	ContentAr     string `gorm:"type:text"`
	FeaturedImage string
	IsPublished   bool `gorm:"index"`
	PublishedAt   *time.Time
	AuthorID      string `gorm:"index;size:36"`
	Author        *DBUser
	CreatedAt     time.Time
}

func (DBArticle) TableName() string { return "articles" }

type DBWatchlistEntry struct {
	UUIDModel
	UserID          string   `gorm:"index;size:36"`
	MovieID         *string  `gorm:"index;size:36"`
	ShowID          *string  `gorm:"index;size:36"`
	Movie           *DBMovie `gorm:"foreignKey:MovieID"`
	Show            *DBShow  `gorm:"foreignKey:ShowID"`
	Status          string   `gorm:"index;size:16"`
	WatchedProgress float64
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (DBWatchlistEntry) TableName() string { return "watchlist_entries" }

type DBSearchLog struct {
	UUIDModel
	Query        string `gorm:"index;size:255"`
	Language     string `gorm:"size:8"`
	ResultsCount int
	CreatedAt    time.Time `gorm:"index"`
}

func (DBSearchLog) TableName() string { return "search_logs" }

// Models lists every table in migration order
func Models() []interface{} {
	return []interface{}{
		&DBUser{},
		&DBUserPreferences{},
		&DBOTPRecord{},
		&DBGenre{},
		&DBStreamingPlatform{},
		&DBMovie{},
		&DBShow{},
		&DBSeason{},
		&DBEpisode{},
		&DBLiveChannel{},
		&DBContentPlatform{},
		&DBReview{},
		&DBRating{},
		&DBArticle{},
		&DBWatchlistEntry{},
		&DBSearchLog{},
	}
}
