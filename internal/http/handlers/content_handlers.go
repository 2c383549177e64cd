package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/http/response"
	"go.uber.org/zap"
)

// ContentHandlers serves the movie, show and live TV catalog
type ContentHandlers struct {
	catalogSvc domain.CatalogService
	logger     *zap.Logger
}

// NewContentHandlers creates new content handlers
func NewContentHandlers(catalogSvc domain.CatalogService, logger *zap.Logger) *ContentHandlers {
	return &ContentHandlers{catalogSvc: catalogSvc, logger: logger}
}

// queryInt parses an integer query parameter; missing or malformed values are zero
// so the service applies its default.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func listOptions(c *gin.Context) domain.ListOptions {
	opts := domain.ListOptions{
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
		Language:  middleware.Language(c),
		GenreID:   c.Query("genreId"),
		SortField: c.Query("sortBy"),
	}
	if available, err := strconv.ParseBool(c.Query("available")); err == nil {
		opts.Available = &available
	}
	return opts
}

// ListMovies returns a page of movie summaries
func (h *ContentHandlers) ListMovies(c *gin.Context) {
	items, page, err := h.catalogSvc.ListMovies(c.Request.Context(), listOptions(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Paginated(c, items, page)
}

// GetMovie returns one movie by id or slug
func (h *ContentHandlers) GetMovie(c *gin.Context) {
	movie, err := h.catalogSvc.MovieDetail(c.Request.Context(), c.Param("id"), middleware.Language(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "", movie)
}

// ListShows returns a page of show summaries
func (h *ContentHandlers) ListShows(c *gin.Context) {
	items, page, err := h.catalogSvc.ListShows(c.Request.Context(), listOptions(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Paginated(c, items, page)
}

// GetShow returns one show by id or slug with its seasons and episodes
func (h *ContentHandlers) GetShow(c *gin.Context) {
	show, err := h.catalogSvc.ShowDetail(c.Request.Context(), c.Param("id"), middleware.Language(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "", show)
}

// LiveTV returns the live channels currently on air
func (h *ContentHandlers) LiveTV(c *gin.Context) {
	channels, err := h.catalogSvc.LiveTV(c.Request.Context(), middleware.Language(c), queryInt(c, "limit"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, "", gin.H{"channels": channels})
}
