package mocks

import (
	"context"
	"time"

	"github.com/you/streamsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc          func(ctx context.Context, input domain.RegisterInput) (*domain.PublicUser, error)
	LoginFunc             func(ctx context.Context, emailOrPhone, password string) (*domain.AuthResponse, error)
	AuthenticateFunc      func(ctx context.Context, token string) (*domain.TokenClaims, error)
	LogoutFunc            func(ctx context.Context, claims *domain.TokenClaims) error
	MeFunc                func(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdatePreferencesFunc func(ctx context.Context, userID string, lang domain.Language) (*domain.UserProfile, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.PublicUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	// Default behavior: return a mock user
	user := domain.NewPublicUser(&domain.User{ID: "user-1", Email: input.Email, Phone: input.Phone})
	return &user, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, emailOrPhone, password string) (*domain.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, emailOrPhone, password)
	}
	// Default behavior: successful login
	user := &domain.User{ID: "user-1", Email: emailOrPhone, Role: "user", IsActive: true, PreferredLanguage: domain.LanguageEnglish}
	return &domain.AuthResponse{
		Token:     "mock_token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		User:      domain.NewUserProfile(user),
	}, nil
}

// Authenticate validates a bearer token
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.TokenClaims{UserID: "user-1", Role: "user", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
}

// Logout revokes the current token
func (m *MockAuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, claims)
	}
	return nil
}

// Me returns the caller's profile
func (m *MockAuthService) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, userID)
	}
	profile := domain.NewUserProfile(&domain.User{ID: userID, PreferredLanguage: domain.LanguageEnglish})
	return &profile, nil
}

// UpdatePreferences changes the preferred language
func (m *MockAuthService) UpdatePreferences(ctx context.Context, userID string, lang domain.Language) (*domain.UserProfile, error) {
	if m.UpdatePreferencesFunc != nil {
		return m.UpdatePreferencesFunc(ctx, userID, lang)
	}
	profile := domain.NewUserProfile(&domain.User{ID: userID, PreferredLanguage: lang})
	return &profile, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
