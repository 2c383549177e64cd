package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/internal/http/handlers"
	"github.com/you/streamsvc/internal/http/middleware"
	"go.uber.org/zap"
)

// Handlers groups every route handler the router mounts
type Handlers struct {
	Auth      *handlers.AuthHandlers
	Content   *handlers.ContentHandlers
	Search    *handlers.SearchHandlers
	Watchlist *handlers.WatchlistHandlers
}

func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.ClientContext(), middleware.ResolveLanguage())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/request-otp", h.Auth.RequestOTP)
	auth.POST("/verify-otp", h.Auth.VerifyOTP)

	content := r.Group("/content")
	content.GET("/movies", h.Content.ListMovies)
	content.GET("/movies/:id", h.Content.GetMovie)
	content.GET("/shows", h.Content.ListShows)
	content.GET("/shows/:id", h.Content.GetShow)
	content.GET("/live-tv", h.Content.LiveTV)

	r.GET("/search", h.Search.Search)
	r.GET("/search/trending", h.Search.Trending)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", h.Auth.Me)
	v.PATCH("/auth/me/preferences", h.Auth.UpdatePreferences)
	v.POST("/auth/logout", h.Auth.Logout)
	v.GET("/watchlist", h.Watchlist.List)
	v.POST("/watchlist", h.Watchlist.Add)
	v.PATCH("/watchlist/:id", h.Watchlist.Update)
	v.DELETE("/watchlist/:id", h.Watchlist.Remove)

	return r
}
