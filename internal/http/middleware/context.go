package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
)

// Keys set on the gin context by the middleware in this package
const (
	KeyLanguage = "language"
	KeyClaims   = "claims"
	KeyUserID   = "user_id"
	KeyUserRole = "user_role"
)

// Language returns the resolved request language, or the default when the
// language middleware did not run.
func Language(c *gin.Context) domain.Language {
	if v, ok := c.Get(KeyLanguage); ok {
		if lang, ok := v.(domain.Language); ok {
			return lang
		}
	}
	return domain.DefaultLanguage
}

// Claims returns the verified token claims of an authenticated request.
func Claims(c *gin.Context) (*domain.TokenClaims, bool) {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*domain.TokenClaims)
	return claims, ok && claims != nil
}
