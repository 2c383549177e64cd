package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/streamsvc/domain"
)

// WatchlistServiceImpl implements domain.WatchlistService
type WatchlistServiceImpl struct {
	watchlistRepo domain.WatchlistRepository
	catalogRepo   domain.CatalogRepository
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(watchlistRepo domain.WatchlistRepository, catalogRepo domain.CatalogRepository) domain.WatchlistService {
	return &WatchlistServiceImpl{watchlistRepo: watchlistRepo, catalogRepo: catalogRepo}
}

func validStatus(status string) bool {
	switch status {
	case domain.WatchStatusToWatch, domain.WatchStatusWatching, domain.WatchStatusWatched:
		return true
	}
	return false
}

// Add implements domain.WatchlistService
func (s *WatchlistServiceImpl) Add(ctx context.Context, userID, contentID, contentType string, lang domain.Language) (*domain.WatchlistItem, error) {
	if contentType != domain.ContentTypeMovie && contentType != domain.ContentTypeShow {
		return nil, domain.NewValidationError("Invalid content type")
	}
	if contentID == "" {
		return nil, domain.NewValidationError("Content ID is required")
	}

	entry := &domain.WatchlistEntry{UserID: userID, Status: domain.WatchStatusToWatch}

	var (
		exists bool
		err    error
	)
	if contentType == domain.ContentTypeMovie {
		exists, err = s.catalogRepo.MovieExists(ctx, contentID)
		entry.MovieID = contentID
	} else {
		exists, err = s.catalogRepo.ShowExists(ctx, contentID)
		entry.ShowID = contentID
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check content: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("Content")
	}

	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add to watchlist: %w", err)
	}

	// reload so the projection carries the referenced movie or show
	saved, err := s.watchlistRepo.FindByID(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist item: %w", err)
	}

	item := domain.NewWatchlistItem(saved, lang)
	return &item, nil
}

// List implements domain.WatchlistService
func (s *WatchlistServiceImpl) List(ctx context.Context, userID string, query domain.WatchlistQuery) ([]domain.WatchlistItem, domain.Pagination, error) {
	if query.Status != "" && !validStatus(query.Status) {
		return nil, domain.Pagination{}, domain.NewValidationError("Invalid status")
	}

	page, limit := normalizePage(query.Page, query.Limit)
	p := domain.Pagination{Page: page, Limit: limit}

	entries, total, err := s.watchlistRepo.List(ctx, domain.WatchlistFilter{
		UserID: userID,
		Status: query.Status,
		Offset: p.Offset(),
		Limit:  limit,
	})
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to list watchlist: %w", err)
	}

	items := make([]domain.WatchlistItem, 0, len(entries))
	for i := range entries {
		items = append(items, domain.NewWatchlistItem(&entries[i], query.Language))
	}
	return items, domain.NewPagination(page, limit, total), nil
}

// Update implements domain.WatchlistService
func (s *WatchlistServiceImpl) Update(ctx context.Context, userID, entryID, status string, progress *float64, lang domain.Language) (*domain.WatchlistItem, error) {
	if !validStatus(status) {
		return nil, domain.NewValidationError("Invalid status")
	}
	if progress != nil && (*progress < 0 || *progress > 100) {
		return nil, domain.NewValidationError("Progress must be between 0 and 100")
	}

	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Status = status
	if progress != nil {
		entry.WatchedProgress = *progress
	}

	if err := s.watchlistRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Watchlist item")
		}
		return nil, fmt.Errorf("failed to update watchlist item: %w", err)
	}

	item := domain.NewWatchlistItem(entry, lang)
	return &item, nil
}

// Remove implements domain.WatchlistService
func (s *WatchlistServiceImpl) Remove(ctx context.Context, userID, entryID string) error {
	if _, err := s.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.watchlistRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.NewNotFoundError("Watchlist item")
		}
		return fmt.Errorf("failed to remove watchlist item: %w", err)
	}
	return nil
}

// ownedEntry loads an entry, hiding entries that belong to other users
func (s *WatchlistServiceImpl) ownedEntry(ctx context.Context, userID, entryID string) (*domain.WatchlistEntry, error) {
	entry, err := s.watchlistRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Watchlist item")
		}
		return nil, fmt.Errorf("failed to load watchlist item: %w", err)
	}
	if entry.UserID != userID {
		return nil, domain.NewNotFoundError("Watchlist item")
	}
	return entry, nil
}
