package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockCatalogRepository implements domain.CatalogRepository interface for testing
type MockCatalogRepository struct {
	ListMoviesFunc       func(ctx context.Context, filter domain.ListFilter) ([]domain.Movie, int64, error)
	FindMovieFunc        func(ctx context.Context, identifier string, reviewLimit int) (*domain.Movie, error)
	ListShowsFunc        func(ctx context.Context, filter domain.ListFilter) ([]domain.Show, int64, error)
	FindShowFunc         func(ctx context.Context, identifier string) (*domain.Show, error)
	ListLiveChannelsFunc func(ctx context.Context, limit int) ([]domain.LiveChannel, error)
	MovieExistsFunc      func(ctx context.Context, id string) (bool, error)
	ShowExistsFunc       func(ctx context.Context, id string) (bool, error)
}

// NewMockCatalogRepository creates a new MockCatalogRepository with default behaviors
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

// ListMovies returns a page of movies
func (m *MockCatalogRepository) ListMovies(ctx context.Context, filter domain.ListFilter) ([]domain.Movie, int64, error) {
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx, filter)
	}
	return nil, 0, nil
}

// FindMovie loads a movie by id or slug
func (m *MockCatalogRepository) FindMovie(ctx context.Context, identifier string, reviewLimit int) (*domain.Movie, error) {
	if m.FindMovieFunc != nil {
		return m.FindMovieFunc(ctx, identifier, reviewLimit)
	}
	return nil, domain.ErrRecordNotFound
}

// ListShows returns a page of shows
func (m *MockCatalogRepository) ListShows(ctx context.Context, filter domain.ListFilter) ([]domain.Show, int64, error) {
	if m.ListShowsFunc != nil {
		return m.ListShowsFunc(ctx, filter)
	}
	return nil, 0, nil
}

// FindShow loads a show by id or slug
func (m *MockCatalogRepository) FindShow(ctx context.Context, identifier string) (*domain.Show, error) {
	if m.FindShowFunc != nil {
		return m.FindShowFunc(ctx, identifier)
	}
	return nil, domain.ErrRecordNotFound
}

// ListLiveChannels returns channels currently live
func (m *MockCatalogRepository) ListLiveChannels(ctx context.Context, limit int) ([]domain.LiveChannel, error) {
	if m.ListLiveChannelsFunc != nil {
		return m.ListLiveChannelsFunc(ctx, limit)
	}
	return nil, nil
}

// MovieExists reports whether the movie exists
func (m *MockCatalogRepository) MovieExists(ctx context.Context, id string) (bool, error) {
	if m.MovieExistsFunc != nil {
		return m.MovieExistsFunc(ctx, id)
	}
	return false, nil
}

// ShowExists reports whether the show exists
func (m *MockCatalogRepository) ShowExists(ctx context.Context, id string) (bool, error) {
	if m.ShowExistsFunc != nil {
		return m.ShowExistsFunc(ctx, id)
	}
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.CatalogRepository = (*MockCatalogRepository)(nil)
