package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// authCookieMaxAge matches the token lifetime: 7 days in seconds
const authCookieMaxAge = 7 * 24 * 60 * 60

// AuthHandlers handles account, login and OTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	otpSvc       domain.OTPService
	secureCookie bool
	logger       *zap.Logger
}

// NewAuthHandlers creates new auth handlers. secureCookie marks the auth
// cookie Secure, which production deployments require.
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService, secureCookie bool, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		otpSvc:       otpSvc,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest represents login request
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// OTPRequest represents an OTP issuance request
type OTPRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
}

// OTPVerifyRequest represents OTP verification request
type OTPVerifyRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
	OTP          string `json:"otp"`
}

// PreferencesRequest represents a preferred language change
type PreferencesRequest struct {
	PreferredLanguage string `json:"preferredLanguage"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Created(c, "User registered successfully", user)
}

// Login handles password login and sets the auth cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	h.setAuthCookie(c, result.Token, authCookieMaxAge)
	response.OK(c, "Login successful", result)
}

// RequestOTP handles OTP generation and sending
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.otpSvc.Request(c.Request.Context(), req.PhoneOrEmail)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, "OTP sent successfully", result)
}

// VerifyOTP handles OTP verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.otpSvc.Verify(c.Request.Context(), req.PhoneOrEmail, req.OTP)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, "OTP verified successfully", result)
}

// Me handles getting user profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Error(c, h.logger, domain.NewAuthenticationError("Authentication required"))
		return
	}

	profile, err := h.authSvc.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, "", profile)
}

// UpdatePreferences changes the caller's preferred language
func (h *AuthHandlers) UpdatePreferences(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Error(c, h.logger, domain.NewAuthenticationError("Authentication required"))
		return
	}

	var req PreferencesRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	profile, err := h.authSvc.UpdatePreferences(c.Request.Context(), claims.UserID, domain.Language(req.PreferredLanguage))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, "Preferences updated", profile)
}

// Logout revokes the current token and clears the auth cookie
func (h *AuthHandlers) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Error(c, h.logger, domain.NewAuthenticationError("Authentication required"))
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	h.setAuthCookie(c, "", -1)
	response.OK(c, "Logged out successfully", nil)
}

func (h *AuthHandlers) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", h.secureCookie, true)
}

// bindJSON decodes the request body, writing a validation error on failure.
func bindJSON(c *gin.Context, logger *zap.Logger, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, logger, domain.NewValidationError("Invalid request body"))
		return false
	}
	return true
}
