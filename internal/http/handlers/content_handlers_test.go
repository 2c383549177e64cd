package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/mocks"
	"go.uber.org/zap"
)

func setupContentRouter(catalog *mocks.MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContentHandlers(catalog, zap.NewNop())

	r := gin.New()
	r.Use(middleware.ResolveLanguage())
	r.GET("/content/movies", h.ListMovies)
	r.GET("/content/movies/:id", h.GetMovie)
	r.GET("/content/shows", h.ListShows)
	r.GET("/content/shows/:id", h.GetShow)
	r.GET("/content/live-tv", h.LiveTV)
	return r
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestContentHandlers_ListShows(t *testing.T) {
	catalog := mocks.NewMockCatalogService()
	var got domain.ListOptions
	catalog.ListShowsFunc = func(ctx context.Context, opts domain.ListOptions) ([]domain.ShowSummary, domain.Pagination, error) {
		got = opts
		return []domain.ShowSummary{{ID: "show-1", Title: strPtr("الحلقة")}}, domain.NewPagination(2, 20, 45), nil
	}
	r := setupContentRouter(catalog)

	w := performRequest(r, http.MethodGet, "/content/shows?page=2&limit=20&genreId=g-1&lang=ar", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ListOptions{Page: 2, Limit: 20, Language: domain.LanguageArabic, GenreID: "g-1"}, got)

	body := decodeBody(t, w)
	assert.Equal(t, "Success", body["message"])
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(45), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPreviousPage"])
	assert.Len(t, body["data"], 1)
}

func TestContentHandlers_ListMovies(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockCatalogService, *domain.ListOptions)
		expectedStatus int
		expected       domain.ListOptions
	}{
		{
			name: "malformed numbers fall back to defaults",
			path: "/content/movies?page=abc&limit=&sortBy=rating&available=true",
			setupMocks: func(s *mocks.MockCatalogService, got *domain.ListOptions) {
				s.ListMoviesFunc = func(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
					*got = opts
					return []domain.MovieSummary{}, domain.NewPagination(1, 20, 0), nil
				}
			},
			expectedStatus: http.StatusOK,
			expected:       domain.ListOptions{Language: domain.LanguageEnglish, SortField: "rating", Available: boolPtr(true)},
		},
		{
			name: "unavailable titles on request",
			path: "/content/movies?available=false",
			setupMocks: func(s *mocks.MockCatalogService, got *domain.ListOptions) {
				s.ListMoviesFunc = func(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
					*got = opts
					return []domain.MovieSummary{}, domain.NewPagination(1, 20, 0), nil
				}
			},
			expectedStatus: http.StatusOK,
			expected:       domain.ListOptions{Language: domain.LanguageEnglish, Available: boolPtr(false)},
		},
		{
			name: "malformed availability leaves the default",
			path: "/content/movies?available=maybe",
			setupMocks: func(s *mocks.MockCatalogService, got *domain.ListOptions) {
				s.ListMoviesFunc = func(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
					*got = opts
					return []domain.MovieSummary{}, domain.NewPagination(1, 20, 0), nil
				}
			},
			expectedStatus: http.StatusOK,
			expected:       domain.ListOptions{Language: domain.LanguageEnglish},
		},
		{
			name: "invalid sort field",
			path: "/content/movies?sortBy=budget",
			setupMocks: func(s *mocks.MockCatalogService, got *domain.ListOptions) {
				s.ListMoviesFunc = func(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
					*got = opts
					return nil, domain.Pagination{}, domain.NewValidationError("Invalid sort field")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expected:       domain.ListOptions{Language: domain.LanguageEnglish, SortField: "budget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogService()
			var got domain.ListOptions
			tt.setupMocks(catalog, &got)
			r := setupContentRouter(catalog)

			w := performRequest(r, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContentHandlers_Detail(t *testing.T) {
	catalog := mocks.NewMockCatalogService()
	catalog.MovieDetailFunc = func(ctx context.Context, identifier string, lang domain.Language) (*domain.MovieDetail, error) {
		if identifier != "the-journey" {
			return nil, domain.NewNotFoundError("Movie")
		}
		assert.Equal(t, domain.LanguageArabic, lang)
		rating := "8.0"
		return &domain.MovieDetail{MovieSummary: domain.MovieSummary{ID: "movie-1", Slug: identifier}, AverageUserRating: &rating}, nil
	}
	catalog.ShowDetailFunc = func(ctx context.Context, identifier string, lang domain.Language) (*domain.ShowDetail, error) {
		return nil, errors.New("connection reset")
	}
	r := setupContentRouter(catalog)

	t.Run("movie by slug with Accept-Language", func(t *testing.T) {
		req := performRequestWithHeader(r, http.MethodGet, "/content/movies/the-journey", "Accept-Language", "fr,ar;q=0.5")
		require.Equal(t, http.StatusOK, req.Code)
		data := decodeBody(t, req)["data"].(map[string]interface{})
		assert.Equal(t, "8.0", data["averageUserRating"])
	})

	t.Run("missing movie", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/content/movies/unknown?lang=ar", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		errBody := decodeBody(t, w)["error"].(map[string]interface{})
		assert.Equal(t, "Movie not found", errBody["message"])
	})

	t.Run("unexpected failure is internal", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/content/shows/show-1", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		errBody := decodeBody(t, w)["error"].(map[string]interface{})
		assert.Equal(t, domain.CodeInternal, errBody["code"])
		assert.Equal(t, "connection reset", errBody["message"])
	})
}

func TestContentHandlers_LiveTV(t *testing.T) {
	catalog := mocks.NewMockCatalogService()
	catalog.LiveTVFunc = func(ctx context.Context, lang domain.Language, limit int) ([]domain.ChannelView, error) {
		assert.Equal(t, 5, limit)
		return []domain.ChannelView{{ID: "ch-1", Name: strPtr("Sports One")}}, nil
	}
	r := setupContentRouter(catalog)

	w := performRequest(r, http.MethodGet, "/content/live-tv?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	channels := data["channels"].([]interface{})
	require.Len(t, channels, 1)
	assert.Equal(t, "Sports One", channels[0].(map[string]interface{})["name"])
}
