package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit   = 50
	defaultTrendingLimit = 10
)

// SearchServiceImpl implements domain.SearchService
type SearchServiceImpl struct {
	searchRepo domain.SearchRepository
	logger     *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(searchRepo domain.SearchRepository, logger *zap.Logger) domain.SearchService {
	return &SearchServiceImpl{searchRepo: searchRepo, logger: logger}
}

func validContentType(t string) bool {
	switch t {
	case domain.ContentTypeAll, domain.ContentTypeMovie, domain.ContentTypeShow, domain.ContentTypeArticle:
		return true
	}
	return false
}

// Search implements domain.SearchService. Every call is recorded in the search log,
// including ones with no results or a failed sub-search.
func (s *SearchServiceImpl) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("Search query is required")
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = domain.ContentTypeAll
	}
	if !validContentType(contentType) {
		return nil, domain.NewValidationError("Invalid content type")
	}

	limit := opts.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}
	lang := opts.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	results := &domain.SearchResults{
		Movies:   []domain.SearchHit{},
		Shows:    []domain.SearchHit{},
		Articles: []domain.SearchHit{},
	}
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeMovie {
		movies, err := s.searchRepo.SearchMovies(ctx, query, limit)
		keep(err)
		for i := range movies {
			results.Movies = append(results.Movies, domain.NewMovieHit(&movies[i], lang))
		}
	}

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeShow {
		shows, err := s.searchRepo.SearchShows(ctx, query, limit)
		keep(err)
		for i := range shows {
			results.Shows = append(results.Shows, domain.NewShowHit(&shows[i], lang))
		}
	}

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeArticle {
		articles, err := s.searchRepo.SearchArticles(ctx, query, limit)
		keep(err)
		for i := range articles {
			results.Articles = append(results.Articles, domain.NewArticleHit(&articles[i], lang))
		}
	}

	entry := &domain.SearchLog{Query: query, Language: lang, ResultsCount: results.Total()}
	if err := s.searchRepo.CreateLog(ctx, entry); err != nil {
		s.logger.Error("failed to record search", zap.String("query", query), zap.Error(err))
		keep(err)
	}

	if firstErr != nil {
		return nil, fmt.Errorf("search failed: %w", firstErr)
	}
	return results, nil
}

// Trending implements domain.SearchService
func (s *SearchServiceImpl) Trending(ctx context.Context, limit int) ([]domain.TrendingQuery, error) {
	if limit < 1 {
		limit = defaultTrendingLimit
	}

	trending, err := s.searchRepo.Trending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load trending searches: %w", err)
	}
	if trending == nil {
		trending = []domain.TrendingQuery{}
	}
	return trending, nil
}
