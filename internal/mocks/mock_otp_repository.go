package mocks

import (
	"context"
	"time"

	"github.com/you/streamsvc/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	CreateFunc     func(ctx context.Context, record *domain.OTPRecord) error
	FindUsableFunc func(ctx context.Context, userID, code string, now time.Time) (*domain.OTPRecord, error)
	MarkUsedFunc   func(ctx context.Context, id string) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Create stores an OTP record
func (m *MockOTPRepository) Create(ctx context.Context, record *domain.OTPRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

// FindUsable returns an unused, unexpired record
func (m *MockOTPRepository) FindUsable(ctx context.Context, userID, code string, now time.Time) (*domain.OTPRecord, error) {
	if m.FindUsableFunc != nil {
		return m.FindUsableFunc(ctx, userID, code, now)
	}
	// Default behavior: no matching code
	return nil, domain.ErrRecordNotFound
}

// MarkUsed consumes a record
func (m *MockOTPRepository) MarkUsed(ctx context.Context, id string) error {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPRepository = (*MockOTPRepository)(nil)
