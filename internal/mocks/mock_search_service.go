package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockSearchService implements domain.SearchService interface for testing
type MockSearchService struct {
	SearchFunc   func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error)
	TrendingFunc func(ctx context.Context, limit int) ([]domain.TrendingQuery, error)
}

// NewMockSearchService creates a new MockSearchService with default behaviors
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{}
}

// Search runs a content search
func (m *MockSearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return &domain.SearchResults{Movies: []domain.SearchHit{}, Shows: []domain.SearchHit{}, Articles: []domain.SearchHit{}}, nil
}

// Trending returns top queries
func (m *MockSearchService) Trending(ctx context.Context, limit int) ([]domain.TrendingQuery, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, limit)
	}
	return []domain.TrendingQuery{}, nil
}

// Compile-time interface compliance verification
var _ domain.SearchService = (*MockSearchService)(nil)
