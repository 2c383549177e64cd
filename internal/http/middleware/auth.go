package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// AuthCookieName is the cookie login sets and the middleware falls back to
const AuthCookieName = "authToken"

// AuthMW authenticates requests against the auth service
type AuthMW struct {
	authSvc domain.AuthService
	logger  *zap.Logger
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService, logger *zap.Logger) *AuthMW {
	return &AuthMW{authSvc: authSvc, logger: logger}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			response.Error(c, mw.logger, err)
			return
		}

		claims, err := mw.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, mw.logger, err)
			return
		}

		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserRole, claims.Role)
		c.Next()
	}
}

// bearerToken reads the Authorization header, falling back to the auth cookie
// when the header is absent.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
			return cookie, nil
		}
		return "", domain.NewAuthenticationError("Missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", domain.NewAuthenticationError("Invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}
