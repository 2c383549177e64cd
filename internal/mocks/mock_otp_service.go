package mocks

import (
	"context"
	"time"

	"github.com/you/streamsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context, phoneOrEmail string) (*domain.OTPRequestResult, error)
	VerifyFunc  func(ctx context.Context, phoneOrEmail, code string) (*domain.AuthResponse, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request issues a code
func (m *MockOTPService) Request(ctx context.Context, phoneOrEmail string) (*domain.OTPRequestResult, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, phoneOrEmail)
	}
	return &domain.OTPRequestResult{ExpiresIn: 600}, nil
}

// Verify checks a code and signs the user in
func (m *MockOTPService) Verify(ctx context.Context, phoneOrEmail, code string) (*domain.AuthResponse, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, phoneOrEmail, code)
	}
	user := &domain.User{ID: "user-1", Phone: phoneOrEmail, IsVerified: true, PreferredLanguage: domain.LanguageEnglish}
	return &domain.AuthResponse{
		Token:     "mock_token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		User:      domain.NewUserProfile(user),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
