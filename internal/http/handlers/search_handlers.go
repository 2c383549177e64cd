package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// SearchHandlers serves content search and trending queries
type SearchHandlers struct {
	searchSvc domain.SearchService
	logger    *zap.Logger
}

// NewSearchHandlers creates new search handlers
func NewSearchHandlers(searchSvc domain.SearchService, logger *zap.Logger) *SearchHandlers {
	return &SearchHandlers{searchSvc: searchSvc, logger: logger}
}

// Search matches q against movies, shows and articles
func (h *SearchHandlers) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.searchSvc.Search(c.Request.Context(), query, domain.SearchOptions{
		Language:    middleware.Language(c),
		ContentType: c.Query("type"),
		Limit:       queryInt(c, "limit"),
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, "", gin.H{
		"query":   query,
		"results": results,
		"total":   results.Total(),
	})
}

// Trending returns the most frequent search queries
func (h *SearchHandlers) Trending(c *gin.Context) {
	trending, err := h.searchSvc.Trending(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "", gin.H{"trending": trending})
}
