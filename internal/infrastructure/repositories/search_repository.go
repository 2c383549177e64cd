package repositories

import (
	"context"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// SearchRepositoryImpl implements domain.SearchRepository using GORM
type SearchRepositoryImpl struct {
	db *gorm.DB
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *gorm.DB) domain.SearchRepository {
	return &SearchRepositoryImpl{db: db}
}

// matchAny ORs a case-insensitive substring match over the given columns
func matchAny(db *gorm.DB, query string, columns ...string) *gorm.DB {
	pattern := likePattern(query)
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, col := range columns {
		clause := "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		if i == 0 {
			cond = cond.Where(clause, pattern)
		} else {
			cond = cond.Or(clause, pattern)
		}
	}
	return db.Where(cond)
}

// SearchMovies implements domain.SearchRepository
func (r *SearchRepositoryImpl) SearchMovies(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	var rows []DBMovie
	err := matchAny(r.db.WithContext(ctx), query, "title_en", "title_ar", "description_en", "description_ar").
		Order("rating DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("search movies", err)
	}

	movies := make([]domain.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, *movieToDomain(&rows[i]))
	}
	return movies, nil
}

// SearchShows implements domain.SearchRepository
func (r *SearchRepositoryImpl) SearchShows(ctx context.Context, query string, limit int) ([]domain.Show, error) {
	var rows []DBShow
	err := matchAny(r.db.WithContext(ctx), query, "title_en", "title_ar", "description_en", "description_ar").
		Order("rating DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("search shows", err)
	}

	shows := make([]domain.Show, 0, len(rows))
	for i := range rows {
		shows = append(shows, *showToDomain(&rows[i]))
	}
	return shows, nil
}

// SearchArticles implements domain.SearchRepository. Only published articles match.
func (r *SearchRepositoryImpl) SearchArticles(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	var rows []DBArticle
	err := matchAny(r.db.WithContext(ctx).Where("is_published = ?", true), query, "title_en", "title_ar", "content_en", "content_ar").
		Preload("Author").
		Order("published_at DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("search articles", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, *articleToDomain(&rows[i]))
	}
	return articles, nil
}

// CreateLog implements domain.SearchRepository
func (r *SearchRepositoryImpl) CreateLog(ctx context.Context, log *domain.SearchLog) error {
	row := &DBSearchLog{
		Query:        log.Query,
		Language:     string(log.Language),
		ResultsCount: log.ResultsCount,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("create search log", err)
	}
	log.ID = row.ID
	log.CreatedAt = row.CreatedAt
	return nil
}

// Trending implements domain.SearchRepository
func (r *SearchRepositoryImpl) Trending(ctx context.Context, limit int) ([]domain.TrendingQuery, error) {
	var rows []domain.TrendingQuery
	err := r.db.WithContext(ctx).
		Model(&DBSearchLog{}).
		Select("query, COUNT(*) AS count").
		Group("query").
		Order("count DESC, query ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate("trending searches", err)
	}
	return rows, nil
}
