package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
)

// ResolveLanguage stores the request language from the lang query parameter
// or the Accept-Language header.
func ResolveLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := domain.ResolveLanguage(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(KeyLanguage, lang)
		c.Next()
	}
}
