package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/streamsvc/domain"
)

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	result, err := Seed(ctx, db, "hashed_password123")
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Users: 2, Movies: 2, Shows: 1, Channels: 1, Articles: 1}, result)

	// a second run replaces rather than duplicates
	_, err = Seed(ctx, db, "hashed_password123")
	require.NoError(t, err)

	catalog := NewCatalogRepository(db)
	movies, total, err := catalog.ListMovies(ctx, domain.ListFilter{Limit: 10, SortField: domain.SortByRating})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "the-last-harbor", movies[0].Slug)

	movie, err := catalog.FindMovie(ctx, "desert-crossing", 5)
	require.NoError(t, err)
	assert.Equal(t, "عبور الصحراء", movie.Title.Get(domain.LanguageArabic))
	assert.Len(t, movie.Ratings, 2)
	assert.Len(t, movie.Reviews, 1)
	assert.Equal(t, "8.0", *domain.AverageRating(movie.Ratings))

	show, err := catalog.FindShow(ctx, "city-of-lanterns")
	require.NoError(t, err)
	require.Len(t, show.Seasons, 1)
	assert.Len(t, show.Seasons[0].Episodes, 2)

	users := NewUserRepository(db)
	layla, err := users.FindByIdentifier(ctx, "+971500000010")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageArabic, layla.PreferredLanguage)
}
