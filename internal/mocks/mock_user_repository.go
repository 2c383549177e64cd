package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *domain.User) error
	CreatePreferencesFunc       func(ctx context.Context, prefs *domain.UserPreferences) error
	FindByIDFunc                func(ctx context.Context, id string) (*domain.User, error)
	FindByIdentifierFunc        func(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByEmailOrPhoneFunc    func(ctx context.Context, email, phone string) (bool, error)
	MarkVerifiedFunc            func(ctx context.Context, userID string) error
	UpdatePreferredLanguageFunc func(ctx context.Context, userID string, lang domain.Language) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success with a fixed id
	if user.ID == "" {
		user.ID = "user-1"
	}
	return nil
}

// CreatePreferences stores default preferences for a user
func (m *MockUserRepository) CreatePreferences(ctx context.Context, prefs *domain.UserPreferences) error {
	if m.CreatePreferencesFunc != nil {
		return m.CreatePreferencesFunc(ctx, prefs)
	}
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrRecordNotFound
}

// FindByIdentifier finds a user by email or phone
func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.FindByIdentifierFunc != nil {
		return m.FindByIdentifierFunc(ctx, identifier)
	}
	// Default behavior: not found
	return nil, domain.ErrRecordNotFound
}

// ExistsByEmailOrPhone reports whether either identifier is taken
func (m *MockUserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	if m.ExistsByEmailOrPhoneFunc != nil {
		return m.ExistsByEmailOrPhoneFunc(ctx, email, phone)
	}
	return false, nil
}

// MarkVerified flags the user as verified
func (m *MockUserRepository) MarkVerified(ctx context.Context, userID string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	return nil
}

// UpdatePreferredLanguage changes the user's language
func (m *MockUserRepository) UpdatePreferredLanguage(ctx context.Context, userID string, lang domain.Language) error {
	if m.UpdatePreferredLanguageFunc != nil {
		return m.UpdatePreferredLanguageFunc(ctx, userID, lang)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
