package repositories

import (
	"context"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// WatchlistRepositoryImpl implements domain.WatchlistRepository using GORM
type WatchlistRepositoryImpl struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *gorm.DB) domain.WatchlistRepository {
	return &WatchlistRepositoryImpl{db: db}
}

// Create implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) Create(ctx context.Context, entry *domain.WatchlistEntry) error {
	row := &DBWatchlistEntry{
		UUIDModel:       UUIDModel{ID: entry.ID},
		UserID:          entry.UserID,
		MovieID:         optional(entry.MovieID),
		ShowID:          optional(entry.ShowID),
		Status:          entry.Status,
		WatchedProgress: entry.WatchedProgress,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("create watchlist entry", err)
	}
	entry.ID = row.ID
	entry.CreatedAt = row.CreatedAt
	return nil
}

// List implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) List(ctx context.Context, filter domain.WatchlistFilter) ([]domain.WatchlistEntry, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", filter.UserID)
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DBWatchlistEntry{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, translate("count watchlist", err)
	}

	var rows []DBWatchlistEntry
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Preload("Movie").
		Preload("Show").
		Order("created_at DESC, id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate("list watchlist", err)
	}

	entries := make([]domain.WatchlistEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, *watchlistToDomain(&rows[i]))
	}
	return entries, total, nil
}

// FindByID implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.WatchlistEntry, error) {
	var row DBWatchlistEntry
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Show").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, translate("find watchlist entry", err)
	}
	return watchlistToDomain(&row), nil
}

// Update implements domain.WatchlistRepository. Only status and progress change.
func (r *WatchlistRepositoryImpl) Update(ctx context.Context, entry *domain.WatchlistEntry) error {
	res := r.db.WithContext(ctx).Model(&DBWatchlistEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"status":           entry.Status,
			"watched_progress": entry.WatchedProgress,
		})
	if res.Error != nil {
		return translate("update watchlist entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update watchlist entry", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBWatchlistEntry{})
	if res.Error != nil {
		return translate("delete watchlist entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete watchlist entry", gorm.ErrRecordNotFound)
	}
	return nil
}

func watchlistToDomain(w *DBWatchlistEntry) *domain.WatchlistEntry {
	entry := &domain.WatchlistEntry{
		ID:              w.ID,
		UserID:          w.UserID,
		MovieID:         deref(w.MovieID),
		ShowID:          deref(w.ShowID),
		Status:          w.Status,
		WatchedProgress: w.WatchedProgress,
		CreatedAt:       w.CreatedAt,
	}
	if w.Movie != nil {
		entry.Movie = movieToDomain(w.Movie)
	}
	if w.Show != nil {
		entry.Show = showToDomain(w.Show)
	}
	return entry
}
