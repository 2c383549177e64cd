package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// WatchlistHandlers manages the caller's watchlist
type WatchlistHandlers struct {
	watchlistSvc domain.WatchlistService
	logger       *zap.Logger
}

// NewWatchlistHandlers creates new watchlist handlers
func NewWatchlistHandlers(watchlistSvc domain.WatchlistService, logger *zap.Logger) *WatchlistHandlers {
	return &WatchlistHandlers{watchlistSvc: watchlistSvc, logger: logger}
}

// AddWatchlistRequest represents a watchlist addition
type AddWatchlistRequest struct {
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
}

// UpdateWatchlistRequest represents a status or progress change
type UpdateWatchlistRequest struct {
	Status          string   `json:"status"`
	WatchedProgress *float64 `json:"watchedProgress"`
}

func (h *WatchlistHandlers) userID(c *gin.Context) (string, bool) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Error(c, h.logger, domain.NewAuthenticationError("Authentication required"))
		return "", false
	}
	return claims.UserID, true
}

// List returns a page of the caller's watchlist
func (h *WatchlistHandlers) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, page, err := h.watchlistSvc.List(c.Request.Context(), userID, domain.WatchlistQuery{
		Language: middleware.Language(c),
		Status:   c.Query("status"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Paginated(c, items, page)
}

// Add puts a movie or show on the caller's watchlist
func (h *WatchlistHandlers) Add(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req AddWatchlistRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	item, err := h.watchlistSvc.Add(c.Request.Context(), userID, req.ContentID, req.ContentType, middleware.Language(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, "Added to watchlist", item)
}

// Update changes the status and progress of a watchlist entry
func (h *WatchlistHandlers) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req UpdateWatchlistRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	item, err := h.watchlistSvc.Update(c.Request.Context(), userID, c.Param("id"), req.Status, req.WatchedProgress, middleware.Language(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "Watchlist item updated", item)
}

// Remove deletes a watchlist entry
func (h *WatchlistHandlers) Remove(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.watchlistSvc.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "Removed from watchlist", nil)
}
