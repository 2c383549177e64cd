package mocks

import (
	"context"

	"github.com/you/streamsvc/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(ctx context.Context, to, message string) error
	SendEmailFunc func(ctx context.Context, to, subject, body string) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(ctx context.Context, to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(ctx, to, message)
	}
	// Default behavior: success (no actual SMS sent in tests)
	return nil
}

// SendEmail sends an email message
func (m *MockNotificationService) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, to, subject, body)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)

// MockOTPDispatcher implements domain.OTPDispatcher interface for testing
type MockOTPDispatcher struct {
	SendFunc func(ctx context.Context, destination, code string) error
}

// NewMockOTPDispatcher creates a new MockOTPDispatcher with default behaviors
func NewMockOTPDispatcher() *MockOTPDispatcher {
	return &MockOTPDispatcher{}
}

// Send delivers a code
func (m *MockOTPDispatcher) Send(ctx context.Context, destination, code string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, destination, code)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPDispatcher = (*MockOTPDispatcher)(nil)
