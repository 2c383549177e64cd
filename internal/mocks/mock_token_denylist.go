package mocks

import (
	"context"
	"time"

	"github.com/you/streamsvc/domain"
)

// MockTokenDenylist implements domain.TokenDenylist interface for testing
type MockTokenDenylist struct {
	RevokeFunc    func(ctx context.Context, tokenID string, until time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)
}

// NewMockTokenDenylist creates a new MockTokenDenylist with default behaviors
func NewMockTokenDenylist() *MockTokenDenylist {
	return &MockTokenDenylist{}
}

// Revoke records a token id
func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenID, until)
	}
	return nil
}

// IsRevoked checks a token id
func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, tokenID)
	}
	// Default behavior: nothing revoked
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.TokenDenylist = (*MockTokenDenylist)(nil)
