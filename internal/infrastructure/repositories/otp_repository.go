package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// OTPRepositoryImpl implements domain.OTPRepository using GORM
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

// Create implements domain.OTPRepository
func (r *OTPRepositoryImpl) Create(ctx context.Context, record *domain.OTPRecord) error {
	dbRecord := &DBOTPRecord{
		UUIDModel: UUIDModel{ID: record.ID},
		UserID:    record.UserID,
		Code:      record.Code,
		ExpiresAt: record.ExpiresAt,
		IsUsed:    record.IsUsed,
	}
	if strings.Contains(record.Destination, "@") {
		dbRecord.Email = optional(record.Destination)
	} else {
		dbRecord.Phone = optional(record.Destination)
	}

	if err := r.db.WithContext(ctx).Create(dbRecord).Error; err != nil {
		return translate("create otp", err)
	}
	record.ID = dbRecord.ID
	record.CreatedAt = dbRecord.CreatedAt
	return nil
}

// FindUsable implements domain.OTPRepository
func (r *OTPRepositoryImpl) FindUsable(ctx context.Context, userID, code string, now time.Time) (*domain.OTPRecord, error) {
	var dbRecord DBOTPRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND is_used = ? AND expires_at > ?", userID, code, false, now).
		Order("created_at DESC").
		First(&dbRecord).Error
	if err != nil {
		return nil, translate("find otp", err)
	}

	destination := deref(dbRecord.Phone)
	if dbRecord.Email != nil {
		destination = *dbRecord.Email
	}
	return &domain.OTPRecord{
		ID:          dbRecord.ID,
		UserID:      dbRecord.UserID,
		Destination: destination,
		Code:        dbRecord.Code,
		ExpiresAt:   dbRecord.ExpiresAt,
		IsUsed:      dbRecord.IsUsed,
		CreatedAt:   dbRecord.CreatedAt,
	}, nil
}

// MarkUsed implements domain.OTPRepository. Only an unused record transitions.
func (r *OTPRepositoryImpl) MarkUsed(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&DBOTPRecord{}).
		Where("id = ? AND is_used = ?", id, false).
		Update("is_used", true)
	if res.Error != nil {
		return translate("mark otp used", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("mark otp used", gorm.ErrRecordNotFound)
	}
	return nil
}
