package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockCatalogService implements domain.CatalogService interface for testing
type MockCatalogService struct {
	ListMoviesFunc  func(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error)
	ListShowsFunc   func(ctx context.Context, opts domain.ListOptions) ([]domain.ShowSummary, domain.Pagination, error)
	MovieDetailFunc func(ctx context.Context, identifier string, lang domain.Language) (*domain.MovieDetail, error)
	ShowDetailFunc  func(ctx context.Context, identifier string, lang domain.Language) (*domain.ShowDetail, error)
	LiveTVFunc      func(ctx context.Context, lang domain.Language, limit int) ([]domain.ChannelView, error)
}

// NewMockCatalogService creates a new MockCatalogService with default behaviors
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

// ListMovies returns a page of movie summaries
func (m *MockCatalogService) ListMovies(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx, opts)
	}
	return []domain.MovieSummary{}, domain.NewPagination(opts.Page, opts.Limit, 0), nil
}

// ListShows returns a page of show summaries
func (m *MockCatalogService) ListShows(ctx context.Context, opts domain.ListOptions) ([]domain.ShowSummary, domain.Pagination, error) {
	if m.ListShowsFunc != nil {
		return m.ListShowsFunc(ctx, opts)
	}
	return []domain.ShowSummary{}, domain.NewPagination(opts.Page, opts.Limit, 0), nil
}

// MovieDetail returns one movie
func (m *MockCatalogService) MovieDetail(ctx context.Context, identifier string, lang domain.Language) (*domain.MovieDetail, error) {
	if m.MovieDetailFunc != nil {
		return m.MovieDetailFunc(ctx, identifier, lang)
	}
	return nil, domain.NewNotFoundError("Movie")
}

// ShowDetail returns one show
func (m *MockCatalogService) ShowDetail(ctx context.Context, identifier string, lang domain.Language) (*domain.ShowDetail, error) {
	if m.ShowDetailFunc != nil {
		return m.ShowDetailFunc(ctx, identifier, lang)
	}
	return nil, domain.NewNotFoundError("Show")
}

// LiveTV returns live channels
func (m *MockCatalogService) LiveTV(ctx context.Context, lang domain.Language, limit int) ([]domain.ChannelView, error) {
	if m.LiveTVFunc != nil {
		return m.LiveTVFunc(ctx, lang, limit)
	}
	return []domain.ChannelView{}, nil
}

// Compile-time interface compliance verification
var _ domain.CatalogService = (*MockCatalogService)(nil)
