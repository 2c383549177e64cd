package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// CasbinMW checks the caller's role against the route policies
type CasbinMW struct {
	policies domain.PolicyService
	audit    domain.AuditLogger
	logger   *zap.Logger
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policies domain.PolicyService, audit domain.AuditLogger, logger *zap.Logger) *CasbinMW {
	return &CasbinMW{policies: policies, audit: audit, logger: logger}
}

// Enforce returns the casbin authorization middleware. It must run after WithJWT.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, mw.logger, domain.NewAuthenticationError("Authentication required"))
			return
		}

		role := claims.Role
		if role == "" {
			role = domain.RoleUser
		}
		path := c.Request.URL.Path
		method := c.Request.Method

		allowed, err := mw.policies.CheckPermission("role_"+role, path, method)
		if err != nil {
			response.Error(c, mw.logger, domain.NewInternalError("Authorization check failed", err))
			return
		}

		if mw.audit != nil {
			if err := mw.audit.LogAccessAttempt(c.Request.Context(), claims.UserID, path, method, allowed); err != nil {
				mw.logger.Warn("failed to log access attempt", zap.Error(err))
			}
		}

		if !allowed {
			response.Error(c, mw.logger, domain.NewAuthorizationError(""))
			return
		}
		c.Next()
	}
}
