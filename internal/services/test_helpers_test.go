package services

import (
	"context"
	"testing"
	"time"

	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/logging"
	"github.com/you/streamsvc/internal/mocks"
	"go.uber.org/zap"
)

// authDeps bundles the mocks behind an AuthService under test
type authDeps struct {
	userRepo    *mocks.MockUserRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	denylist    *mocks.MockTokenDenylist
}

func newAuthDeps() *authDeps {
	return &authDeps{
		userRepo:    mocks.NewMockUserRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		denylist:    mocks.NewMockTokenDenylist(),
	}
}

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T, deps *authDeps) domain.AuthService {
	t.Helper()

	logger := zap.NewNop()
	return NewAuthService(deps.userRepo, deps.passwordSvc, deps.tokenSvc, deps.denylist, logging.NewAuditLogger(logger), logger)
}

// otpDeps bundles the mocks behind an OTPService under test
type otpDeps struct {
	userRepo   *mocks.MockUserRepository
	otpRepo    *mocks.MockOTPRepository
	dispatcher *mocks.MockOTPDispatcher
	tokenSvc   *mocks.MockTokenService
}

func newOTPDeps() *otpDeps {
	return &otpDeps{
		userRepo:   mocks.NewMockUserRepository(),
		otpRepo:    mocks.NewMockOTPRepository(),
		dispatcher: mocks.NewMockOTPDispatcher(),
		tokenSvc:   mocks.NewMockTokenService(),
	}
}

// createOTPServiceForTest creates an OTPService with a fixed clock
func createOTPServiceForTest(t *testing.T, deps *otpDeps, now time.Time) domain.OTPService {
	t.Helper()

	logger := zap.NewNop()
	svc := NewOTPService(deps.userRepo, deps.otpRepo, deps.dispatcher, deps.tokenSvc,
		logging.NewAuditLogger(logger), logger, OTPConfig{Length: 6, TTL: 10 * time.Minute})
	svc.(*OTPServiceImpl).now = func() time.Time { return now }
	return svc
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:                "user-1",
		Email:             "test@example.com",
		Phone:             "+201000000000",
		PasswordHash:      "hashed_password123",
		Role:              "user",
		IsActive:          true,
		IsVerified:        true,
		PreferredLanguage: domain.LanguageEnglish,
		FirstName:         domain.NewLocalizedText("Omar", "عمر"),
		LastName:          domain.NewLocalizedText("Hassan", ""),
		CreatedAt:         time.Now().Add(-24 * time.Hour),
		UpdatedAt:         time.Now().Add(-1 * time.Hour),
	}
}

// createInactiveUser creates an inactive user entity for testing
func createInactiveUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.IsActive = false
	return user
}

// assertAppError fails unless err is an AppError of the given kind and message
func assertAppError(t *testing.T, err error, kind domain.ErrorKind, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error %q, got nil", kind, message)
	}
	appErr := domain.AsAppError(err)
	if appErr.Kind != kind {
		t.Errorf("expected kind %s, got %s (%v)", kind, appErr.Kind, err)
	}
	if message != "" && appErr.Message != message {
		t.Errorf("expected message %q, got %q", message, appErr.Message)
	}
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }
