package repositories

import (
	"context"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return translate("create user", err)
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// CreatePreferences implements domain.UserRepository
func (r *UserRepositoryImpl) CreatePreferences(ctx context.Context, prefs *domain.UserPreferences) error {
	dbPrefs := &DBUserPreferences{
		UserID:             prefs.UserID,
		Language:           string(prefs.Language),
		EmailNotifications: prefs.EmailNotifications,
		Autoplay:           prefs.Autoplay,
	}
	return translate("create preferences", r.db.WithContext(ctx).Create(dbPrefs).Error)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error; err != nil {
		return nil, translate("find user", err)
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByIdentifier implements domain.UserRepository
func (r *UserRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if identifier == "" {
		return nil, translate("find user", gorm.ErrRecordNotFound)
	}
	var dbUser DBUser
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&dbUser).Error
	if err != nil {
		return nil, translate("find user", err)
	}
	return r.dbToDomain(&dbUser), nil
}

// ExistsByEmailOrPhone implements domain.UserRepository. Empty values are ignored.
func (r *UserRepositoryImpl) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	if email == "" && phone == "" {
		return false, nil
	}

	query := r.db.WithContext(ctx).Model(&DBUser{})
	switch {
	case email != "" && phone != "":
		query = query.Where("email = ? OR phone = ?", email, phone)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		query = query.Where("phone = ?", phone)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, translate("count users", err)
	}
	return count > 0, nil
}

// MarkVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("is_verified", true).Error
	return translate("mark user verified", err)
}

// UpdatePreferredLanguage implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePreferredLanguage(ctx context.Context, userID string, lang domain.Language) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBUser{}).Where("id = ?", userID).Update("preferred_language", string(lang))
		if res.Error != nil {
			return translate("update preferred language", res.Error)
		}
		if res.RowsAffected == 0 {
			return translate("update preferred language", gorm.ErrRecordNotFound)
		}
		err := tx.Model(&DBUserPreferences{}).Where("user_id = ?", userID).Update("language", string(lang)).Error
		return translate("update preferences language", err)
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		UUIDModel:         UUIDModel{ID: user.ID},
		Email:             optional(user.Email),
		Phone:             optional(user.Phone),
		PasswordHash:      user.PasswordHash,
		Role:              user.Role,
		IsActive:          user.IsActive,
		IsVerified:        user.IsVerified,
		PreferredLanguage: string(user.PreferredLanguage),
		FirstNameEn:       user.FirstName.Get(domain.LanguageEnglish),
		FirstNameAr:       user.FirstName.Get(domain.LanguageArabic),
		LastNameEn:        user.LastName.Get(domain.LanguageEnglish),
		LastNameAr:        user.LastName.Get(domain.LanguageArabic),
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                dbUser.ID,
		Email:             deref(dbUser.Email),
		Phone:             deref(dbUser.Phone),
		PasswordHash:      dbUser.PasswordHash,
		Role:              dbUser.Role,
		IsActive:          dbUser.IsActive,
		IsVerified:        dbUser.IsVerified,
		PreferredLanguage: domain.Language(dbUser.PreferredLanguage),
		FirstName:         domain.NewLocalizedText(dbUser.FirstNameEn, dbUser.FirstNameAr),
		LastName:          domain.NewLocalizedText(dbUser.LastNameEn, dbUser.LastNameAr),
		CreatedAt:         dbUser.CreatedAt,
		UpdatedAt:         dbUser.UpdatedAt,
	}
}
