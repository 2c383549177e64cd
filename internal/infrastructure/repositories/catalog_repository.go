package repositories

import (
	"context"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	domain.SortByReleaseDate: "release_date",
	domain.SortByRating:      "rating",
	domain.SortByCreatedAt:   "created_at",
	domain.SortByTitle:       "title_en",
}

// SortColumn returns the column backing a sort field and whether the field is allowed.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// CatalogRepositoryImpl implements domain.CatalogRepository using GORM
type CatalogRepositoryImpl struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) listScope(filter domain.ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_available = ?", filter.Available)
		if filter.GenreID != "" {
			db = db.Where("genre_id = ?", filter.GenreID)
		}
		return db
	}
}

func orderClause(field string) string {
	col, ok := SortColumn(field)
	if !ok {
		col = sortColumns[domain.SortByReleaseDate]
	}
	return col + " DESC, id ASC"
}

// ListMovies implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) ListMovies(ctx context.Context, filter domain.ListFilter) ([]domain.Movie, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBMovie{}).Scopes(r.listScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, translate("count movies", err)
	}

	var rows []DBMovie
	err := r.db.WithContext(ctx).
		Scopes(r.listScope(filter)).
		Preload("Genre").
		Preload("Platforms.Platform").
		Order(orderClause(filter.SortField)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate("list movies", err)
	}

	movies := make([]domain.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, *movieToDomain(&rows[i]))
	}
	return movies, total, nil
}

// FindMovie implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) FindMovie(ctx context.Context, identifier string, reviewLimit int) (*domain.Movie, error) {
	var row DBMovie
	err := r.db.WithContext(ctx).
		Where("id = ? OR slug = ?", identifier, identifier).
		Preload("Genre").
		Preload("Platforms.Platform").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(reviewLimit)
		}).
		Preload("Reviews.User").
		Preload("Ratings").
		First(&row).Error
	if err != nil {
		return nil, translate("find movie", err)
	}
	return movieToDomain(&row), nil
}

// ListShows implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) ListShows(ctx context.Context, filter domain.ListFilter) ([]domain.Show, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBShow{}).Scopes(r.listScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, translate("count shows", err)
	}

	var rows []DBShow
	err := r.db.WithContext(ctx).
		Scopes(r.listScope(filter)).
		Preload("Genre").
		Preload("Platforms.Platform").
		Order(orderClause(filter.SortField)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate("list shows", err)
	}

	shows := make([]domain.Show, 0, len(rows))
	for i := range rows {
		shows = append(shows, *showToDomain(&rows[i]))
	}
	return shows, total, nil
}

// FindShow implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) FindShow(ctx context.Context, identifier string) (*domain.Show, error) {
	var row DBShow
	err := r.db.WithContext(ctx).
		Where("id = ? OR slug = ?", identifier, identifier).
		Preload("Genre").
		Preload("Platforms.Platform").
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("season_number ASC")
		}).
		Preload("Seasons.Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episode_number ASC")
		}).
		First(&row).Error
	if err != nil {
		return nil, translate("find show", err)
	}
	return showToDomain(&row), nil
}

// ListLiveChannels implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) ListLiveChannels(ctx context.Context, limit int) ([]domain.LiveChannel, error) {
	var rows []DBLiveChannel
	err := r.db.WithContext(ctx).
		Where("is_live = ?", true).
		Preload("Platforms.Platform").
		Order("name_en ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("list live channels", err)
	}

	channels := make([]domain.LiveChannel, 0, len(rows))
	for i := range rows {
		channels = append(channels, *channelToDomain(&rows[i]))
	}
	return channels, nil
}

// MovieExists implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) MovieExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBMovie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate("count movie", err)
}

// ShowExists implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) ShowExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBShow{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate("count show", err)
}
