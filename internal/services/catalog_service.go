package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/streamsvc/domain"
)

const (
	defaultPage      = 1
	defaultPageSize  = 20
	maxPageSize      = 100
	defaultLiveLimit = 50
	maxLiveLimit     = 50
	detailReviews    = 5
)

// CatalogServiceImpl implements domain.CatalogService
type CatalogServiceImpl struct {
	catalogRepo domain.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo domain.CatalogRepository) domain.CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// normalizePage applies page and limit defaults and caps the limit
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func (s *CatalogServiceImpl) listFilter(opts domain.ListOptions) (domain.ListFilter, domain.Pagination, error) {
	page, limit := normalizePage(opts.Page, opts.Limit)

	sortField := opts.SortField
	if sortField == "" {
		sortField = domain.SortByReleaseDate
	}
	if !domain.IsSortField(sortField) {
		return domain.ListFilter{}, domain.Pagination{}, domain.NewValidationError("Invalid sort field")
	}

	available := true
	if opts.Available != nil {
		available = *opts.Available
	}

	p := domain.Pagination{Page: page, Limit: limit}
	return domain.ListFilter{
		Offset:    p.Offset(),
		Limit:     limit,
		GenreID:   opts.GenreID,
		Available: available,
		SortField: sortField,
	}, p, nil
}

// ListMovies implements domain.CatalogService
func (s *CatalogServiceImpl) ListMovies(ctx context.Context, opts domain.ListOptions) ([]domain.MovieSummary, domain.Pagination, error) {
	filter, p, err := s.listFilter(opts)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	movies, total, err := s.catalogRepo.ListMovies(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to list movies: %w", err)
	}

	items := make([]domain.MovieSummary, 0, len(movies))
	for i := range movies {
		items = append(items, domain.NewMovieSummary(&movies[i], opts.Language))
	}
	return items, domain.NewPagination(p.Page, p.Limit, total), nil
}

// ListShows implements domain.CatalogService
func (s *CatalogServiceImpl) ListShows(ctx context.Context, opts domain.ListOptions) ([]domain.ShowSummary, domain.Pagination, error) {
	filter, p, err := s.listFilter(opts)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	shows, total, err := s.catalogRepo.ListShows(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to list shows: %w", err)
	}

	items := make([]domain.ShowSummary, 0, len(shows))
	for i := range shows {
		items = append(items, domain.NewShowSummary(&shows[i], opts.Language))
	}
	return items, domain.NewPagination(p.Page, p.Limit, total), nil
}

// MovieDetail implements domain.CatalogService
func (s *CatalogServiceImpl) MovieDetail(ctx context.Context, identifier string, lang domain.Language) (*domain.MovieDetail, error) {
	movie, err := s.catalogRepo.FindMovie(ctx, identifier, detailReviews)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Movie")
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}

	detail := domain.NewMovieDetail(movie, lang)
	return &detail, nil
}

// ShowDetail implements domain.CatalogService
func (s *CatalogServiceImpl) ShowDetail(ctx context.Context, identifier string, lang domain.Language) (*domain.ShowDetail, error) {
	show, err := s.catalogRepo.FindShow(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Show")
		}
		return nil, fmt.Errorf("failed to load show: %w", err)
	}

	detail := domain.NewShowDetail(show, lang)
	return &detail, nil
}

// LiveTV implements domain.CatalogService
func (s *CatalogServiceImpl) LiveTV(ctx context.Context, lang domain.Language, limit int) ([]domain.ChannelView, error) {
	if limit < 1 {
		limit = defaultLiveLimit
	}
	if limit > maxLiveLimit {
		limit = maxLiveLimit
	}

	channels, err := s.catalogRepo.ListLiveChannels(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list live channels: %w", err)
	}

	views := make([]domain.ChannelView, 0, len(channels))
	for i := range channels {
		views = append(views, domain.NewChannelView(&channels[i], lang))
	}
	return views, nil
}
