package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockSearchRepository implements domain.SearchRepository interface for testing
type MockSearchRepository struct {
	SearchMoviesFunc   func(ctx context.Context, query string, limit int) ([]domain.Movie, error)
	SearchShowsFunc    func(ctx context.Context, query string, limit int) ([]domain.Show, error)
	SearchArticlesFunc func(ctx context.Context, query string, limit int) ([]domain.Article, error)
	CreateLogFunc      func(ctx context.Context, log *domain.SearchLog) error
	TrendingFunc       func(ctx context.Context, limit int) ([]domain.TrendingQuery, error)
}

// NewMockSearchRepository creates a new MockSearchRepository with default behaviors
func NewMockSearchRepository() *MockSearchRepository {
	return &MockSearchRepository{}
}

// SearchMovies matches movies
func (m *MockSearchRepository) SearchMovies(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	if m.SearchMoviesFunc != nil {
		return m.SearchMoviesFunc(ctx, query, limit)
	}
	return nil, nil
}

// SearchShows matches shows
func (m *MockSearchRepository) SearchShows(ctx context.Context, query string, limit int) ([]domain.Show, error) {
	if m.SearchShowsFunc != nil {
		return m.SearchShowsFunc(ctx, query, limit)
	}
	return nil, nil
}

// SearchArticles matches published articles
func (m *MockSearchRepository) SearchArticles(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	if m.SearchArticlesFunc != nil {
		return m.SearchArticlesFunc(ctx, query, limit)
	}
	return nil, nil
}

// CreateLog appends a search log
func (m *MockSearchRepository) CreateLog(ctx context.Context, log *domain.SearchLog) error {
	if m.CreateLogFunc != nil {
		return m.CreateLogFunc(ctx, log)
	}
	return nil
}

// Trending aggregates search logs
func (m *MockSearchRepository) Trending(ctx context.Context, limit int) ([]domain.TrendingQuery, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, limit)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.SearchRepository = (*MockSearchRepository)(nil)
