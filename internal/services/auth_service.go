package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

const msgInvalidCredentials = "Invalid email/phone or password"

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	denylist    domain.TokenDenylist
	audit       domain.AuditLogger
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	denylist domain.TokenDenylist,
	audit domain.AuditLogger,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		denylist:    denylist,
		audit:       audit,
		logger:      logger,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.PublicUser, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, domain.NewValidationError("Email or phone is required")
	}

	exists, err := s.userRepo.ExistsByEmailOrPhone(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, domain.NewConflictError("User with this email or phone already exists")
	}

	var hashedPassword string
	if input.Password != "" {
		hashedPassword, err = s.passwordSvc.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user := &domain.User{
		Email:             input.Email,
		Phone:             input.Phone,
		PasswordHash:      hashedPassword,
		Role:              domain.RoleUser,
		IsActive:          true,
		PreferredLanguage: domain.DefaultLanguage,
		FirstName:         domain.NewLocalizedText(input.FirstName, ""),
		LastName:          domain.NewLocalizedText(input.LastName, ""),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflictError("User with this email or phone already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	prefs := &domain.UserPreferences{
		UserID:             user.ID,
		Language:           domain.DefaultLanguage,
		EmailNotifications: true,
		Autoplay:           true,
	}
	if err := s.userRepo.CreatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to create user preferences: %w", err)
	}

	s.logAudit("registration", s.audit.LogUserRegistration(ctx, user.ID, user.Email, user.Phone))

	public := domain.NewPublicUser(user)
	return &public, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, emailOrPhone, password string) (*domain.AuthResponse, error) {
	if emailOrPhone == "" || password == "" {
		return nil, domain.NewValidationError("Email/Phone and password are required")
	}

	user, err := s.userRepo.FindByIdentifier(ctx, emailOrPhone)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, s.loginFailed(ctx, "", emailOrPhone, "user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Inactive accounts get the same answer as a bad password
	if !user.IsActive {
		return nil, s.loginFailed(ctx, user.ID, emailOrPhone, "user inactive")
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, s.loginFailed(ctx, user.ID, emailOrPhone, "password mismatch")
	}

	resp, err := issueAuthResponse(s.tokenSvc, user)
	if err != nil {
		return nil, err
	}

	s.logAudit("login", s.audit.LogUserLogin(ctx, user.ID, emailOrPhone, true, ""))
	return resp, nil
}

func (s *AuthServiceImpl) loginFailed(ctx context.Context, userID, identifier, reason string) error {
	s.logAudit("login", s.audit.LogUserLogin(ctx, userID, identifier, false, reason))
	return domain.NewAuthenticationError(msgInvalidCredentials)
}

// Authenticate implements domain.AuthService
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, authError("Token has expired", err)
		}
		return nil, authError("Invalid token", err)
	}

	if s.denylist != nil && claims.TokenID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return nil, authError("Token has been revoked", domain.ErrTokenRevoked)
		}
	}

	return claims, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if claims == nil {
		return domain.NewAuthenticationError("")
	}

	if s.denylist != nil && claims.TokenID != "" {
		if err := s.denylist.Revoke(ctx, claims.TokenID, time.Unix(claims.ExpiresAt, 0)); err != nil {
			return fmt.Errorf("failed to revoke token: %w", err)
		}
	}

	s.logAudit("logout", s.audit.LogUserLogout(ctx, claims.UserID, claims.TokenID))
	return nil
}

// Me implements domain.AuthService
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	profile := domain.NewUserProfile(user)
	return &profile, nil
}

// UpdatePreferences implements domain.AuthService
func (s *AuthServiceImpl) UpdatePreferences(ctx context.Context, userID string, lang domain.Language) (*domain.UserProfile, error) {
	if !domain.IsSupportedLanguage(string(lang)) {
		return nil, domain.NewValidationError("Unsupported language")
	}

	if err := s.userRepo.UpdatePreferredLanguage(ctx, userID, lang); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User")
		}
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return s.Me(ctx, userID)
}

func (s *AuthServiceImpl) logAudit(event string, err error) {
	if err != nil {
		s.logger.Warn("failed to write audit event", zap.String("event", event), zap.Error(err))
	}
}

// issueAuthResponse signs a token for user and builds the sign-in response
func issueAuthResponse(tokenSvc domain.TokenService, user *domain.User) (*domain.AuthResponse, error) {
	claims := &domain.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
	}

	token, err := tokenSvc.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResponse{
		Token:     token,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
		User:      domain.NewUserProfile(user),
	}, nil
}

func authError(message string, cause error) *domain.AppError {
	appErr := domain.NewAuthenticationError(message)
	appErr.Err = cause
	return appErr
}
