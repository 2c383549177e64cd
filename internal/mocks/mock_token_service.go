package mocks

import (
	"fmt"
	"time"

	"github.com/you/streamsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc  func(claims *domain.TokenClaims) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue signs claims into a token
func (m *MockTokenService) Issue(claims *domain.TokenClaims) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(claims)
	}
	// Default behavior: fill timestamps and return a readable token
	now := time.Now()
	claims.TokenID = "jti-" + claims.UserID
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(7 * 24 * time.Hour).Unix()
	return fmt.Sprintf("token_%s_%s", claims.UserID, claims.Role), nil
}

// Verify validates a token and returns claims
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: any non-empty token is a valid user token
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	now := time.Now()
	return &domain.TokenClaims{
		UserID:    "user-1",
		Role:      "user",
		TokenID:   "jti-user-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
