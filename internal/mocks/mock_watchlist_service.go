package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockWatchlistService implements domain.WatchlistService interface for testing
type MockWatchlistService struct {
	AddFunc    func(ctx context.Context, userID, contentID, contentType string, lang domain.Language) (*domain.WatchlistItem, error)
	ListFunc   func(ctx context.Context, userID string, query domain.WatchlistQuery) ([]domain.WatchlistItem, domain.Pagination, error)
	UpdateFunc func(ctx context.Context, userID, entryID, status string, progress *float64, lang domain.Language) (*domain.WatchlistItem, error)
	RemoveFunc func(ctx context.Context, userID, entryID string) error
}

// NewMockWatchlistService creates a new MockWatchlistService with default behaviors
func NewMockWatchlistService() *MockWatchlistService {
	return &MockWatchlistService{}
}

// Add puts content on the watchlist
func (m *MockWatchlistService) Add(ctx context.Context, userID, contentID, contentType string, lang domain.Language) (*domain.WatchlistItem, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, contentID, contentType, lang)
	}
	return &domain.WatchlistItem{ID: "entry-1", ContentID: contentID, ContentType: contentType, Status: domain.WatchStatusToWatch}, nil
}

// List returns the user's entries
func (m *MockWatchlistService) List(ctx context.Context, userID string, query domain.WatchlistQuery) ([]domain.WatchlistItem, domain.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, query)
	}
	return []domain.WatchlistItem{}, domain.NewPagination(query.Page, query.Limit, 0), nil
}

// Update changes status or progress
func (m *MockWatchlistService) Update(ctx context.Context, userID, entryID, status string, progress *float64, lang domain.Language) (*domain.WatchlistItem, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, entryID, status, progress, lang)
	}
	return &domain.WatchlistItem{ID: entryID, Status: status}, nil
}

// Remove deletes an entry
func (m *MockWatchlistService) Remove(ctx context.Context, userID, entryID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, entryID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.WatchlistService = (*MockWatchlistService)(nil)
