package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

// OTPConfig controls generated codes
type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// OTPServiceImpl implements domain.OTPService with codes persisted through OTPRepository
type OTPServiceImpl struct {
	userRepo   domain.UserRepository
	otpRepo    domain.OTPRepository
	dispatcher domain.OTPDispatcher
	tokenSvc   domain.TokenService
	audit      domain.AuditLogger
	logger     *zap.Logger
	config     OTPConfig
	now        func() time.Time
}

// NewOTPService creates a new OTP service
func NewOTPService(
	userRepo domain.UserRepository,
	otpRepo domain.OTPRepository,
	dispatcher domain.OTPDispatcher,
	tokenSvc domain.TokenService,
	audit domain.AuditLogger,
	logger *zap.Logger,
	config OTPConfig,
) domain.OTPService {
	if config.Length <= 0 {
		config.Length = 6
	}
	if config.TTL <= 0 {
		config.TTL = 10 * time.Minute
	}
	return &OTPServiceImpl{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		dispatcher: dispatcher,
		tokenSvc:   tokenSvc,
		audit:      audit,
		logger:     logger,
		config:     config,
		now:        time.Now,
	}
}

// Request implements domain.OTPService
func (s *OTPServiceImpl) Request(ctx context.Context, phoneOrEmail string) (*domain.OTPRequestResult, error) {
	if phoneOrEmail == "" {
		return nil, domain.NewValidationError("Phone number or email is required")
	}

	user, err := s.findUser(ctx, phoneOrEmail)
	if err != nil {
		return nil, err
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	record := &domain.OTPRecord{
		UserID:      user.ID,
		Destination: phoneOrEmail,
		Code:        code,
		ExpiresAt:   s.now().Add(s.config.TTL),
	}
	if err := s.otpRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	// Delivery is best-effort; the code stays valid either way
	if err := s.dispatcher.Send(ctx, phoneOrEmail, code); err != nil {
		s.logger.Error("failed to dispatch OTP",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	if err := s.audit.LogOTPRequest(ctx, user.ID, phoneOrEmail); err != nil {
		s.logger.Warn("failed to write audit event", zap.Error(err))
	}

	return &domain.OTPRequestResult{ExpiresIn: int(s.config.TTL.Seconds())}, nil
}

// Verify implements domain.OTPService
func (s *OTPServiceImpl) Verify(ctx context.Context, phoneOrEmail, code string) (*domain.AuthResponse, error) {
	if phoneOrEmail == "" || code == "" {
		return nil, domain.NewValidationError("Phone/email and OTP are required")
	}

	user, err := s.findUser(ctx, phoneOrEmail)
	if err != nil {
		return nil, err
	}

	record, err := s.otpRepo.FindUsable(ctx, user.ID, code, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, s.verifyFailed(ctx, user.ID, phoneOrEmail)
		}
		return nil, fmt.Errorf("failed to find OTP: %w", err)
	}

	if err := s.otpRepo.MarkUsed(ctx, record.ID); err != nil {
		// consumed concurrently by another request
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, s.verifyFailed(ctx, user.ID, phoneOrEmail)
		}
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	if !user.IsVerified {
		if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
		user.IsVerified = true
	}

	resp, err := issueAuthResponse(s.tokenSvc, user)
	if err != nil {
		return nil, err
	}

	if err := s.audit.LogOTPVerification(ctx, user.ID, phoneOrEmail, true, ""); err != nil {
		s.logger.Warn("failed to write audit event", zap.Error(err))
	}
	return resp, nil
}

func (s *OTPServiceImpl) findUser(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewAuthenticationError("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *OTPServiceImpl) verifyFailed(ctx context.Context, userID, destination string) error {
	if err := s.audit.LogOTPVerification(ctx, userID, destination, false, "invalid or expired code"); err != nil {
		s.logger.Warn("failed to write audit event", zap.Error(err))
	}
	return domain.NewAuthenticationError("Invalid or expired OTP")
}

// generateSecureCode generates a cryptographically secure OTP code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
