package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockWatchlistRepository implements domain.WatchlistRepository interface for testing
type MockWatchlistRepository struct {
	CreateFunc   func(ctx context.Context, entry *domain.WatchlistEntry) error
	ListFunc     func(ctx context.Context, filter domain.WatchlistFilter) ([]domain.WatchlistEntry, int64, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.WatchlistEntry, error)
	UpdateFunc   func(ctx context.Context, entry *domain.WatchlistEntry) error
	DeleteFunc   func(ctx context.Context, id string) error
}

// NewMockWatchlistRepository creates a new MockWatchlistRepository with default behaviors
func NewMockWatchlistRepository() *MockWatchlistRepository {
	return &MockWatchlistRepository{}
}

// Create stores a watchlist entry
func (m *MockWatchlistRepository) Create(ctx context.Context, entry *domain.WatchlistEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	if entry.ID == "" {
		entry.ID = "entry-1"
	}
	return nil
}

// List returns a page of entries
func (m *MockWatchlistRepository) List(ctx context.Context, filter domain.WatchlistFilter) ([]domain.WatchlistEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// FindByID loads an entry
func (m *MockWatchlistRepository) FindByID(ctx context.Context, id string) (*domain.WatchlistEntry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecordNotFound
}

// Update saves status and progress
func (m *MockWatchlistRepository) Update(ctx context.Context, entry *domain.WatchlistEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	return nil
}

// Delete removes an entry
func (m *MockWatchlistRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.WatchlistRepository = (*MockWatchlistRepository)(nil)
