package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []UserRating
		expected *string
	}{
		{name: "mean of three", ratings: []UserRating{{Score: 9.0}, {Score: 7.0}, {Score: 8.0}}, expected: strPtr("8.0")},
		{name: "rounds to one decimal", ratings: []UserRating{{Score: 7.0}, {Score: 8.0}, {Score: 8.0}}, expected: strPtr("7.7")},
		{name: "no ratings", ratings: nil, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(tt.ratings)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestResolveCast(t *testing.T) {
	cast := NewLocalizedText(`["Adel Imam","Yousra"]`, `["عادل إمام"]`)

	assert.Equal(t, []string{"عادل إمام"}, ResolveCast(cast, LanguageArabic))
	assert.Equal(t, []string{"Adel Imam", "Yousra"}, ResolveCast(cast, LanguageEnglish))
	assert.Equal(t, []string{"Adel Imam", "Yousra"}, ResolveCast(NewLocalizedText(`["Adel Imam","Yousra"]`, ""), LanguageArabic))
	assert.Equal(t, []string{}, ResolveCast(nil, LanguageArabic))
	assert.Equal(t, []string{}, ResolveCast(NewLocalizedText("not json", ""), LanguageEnglish))
}

func TestNewMovieDetail_ResolvesNestedFields(t *testing.T) {
	movie := &Movie{
		ID:          "m1",
		Slug:        "the-journey",
		Title:       NewLocalizedText("The Journey", "الرحلة"),
		Description: NewLocalizedText("A long trip", ""),
		Genre:       &Genre{ID: "g1", Name: NewLocalizedText("Drama", "دراما")},
		Reviews: []Review{
			{ID: "r1", Title: NewLocalizedText("Great", ""), Content: NewLocalizedText("Loved it", "أحببته"), Rating: 9, AuthorName: "Sara"},
		},
		Ratings: []UserRating{{Score: 9.0}, {Score: 7.0}, {Score: 8.0}},
		Platforms: []PlatformAvailability{
			{Platform: StreamingPlatform{ID: "p1", Name: "Shahid"}, IsAvailable: true},
		},
	}

	detail := NewMovieDetail(movie, LanguageArabic)

	assert.Equal(t, "الرحلة", *detail.Title)
	assert.Equal(t, "A long trip", *detail.Description)
	assert.Equal(t, "دراما", *detail.Genre.Name)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Great", *detail.Reviews[0].Title)
	assert.Equal(t, "أحببته", *detail.Reviews[0].Content)
	assert.Equal(t, "Sara", detail.Reviews[0].Author)
	assert.Equal(t, "8.0", *detail.AverageUserRating)
	assert.Nil(t, detail.Director)
	require.Len(t, detail.Platforms, 1)
	require.NotNil(t, detail.Platforms[0].IsAvailable)
	assert.True(t, *detail.Platforms[0].IsAvailable)
}

func TestNewShowDetail_KeepsEpisodeOrder(t *testing.T) {
	show := &Show{
		ID:    "s1",
		Title: NewLocalizedText("Family Ties", "روابط عائلية"),
		Seasons: []Season{
			{ID: "se1", SeasonNumber: 1, Title: NewLocalizedText("Season 1", ""), Episodes: []Episode{
				{ID: "e1", EpisodeNumber: 1, Title: NewLocalizedText("Pilot", "البداية")},
				{ID: "e2", EpisodeNumber: 2, Title: NewLocalizedText("Second", "")},
			}},
		},
	}

	detail := NewShowDetail(show, LanguageArabic)

	require.Len(t, detail.Seasons, 1)
	assert.Equal(t, "Season 1", *detail.Seasons[0].Title)
	require.Len(t, detail.Seasons[0].Episodes, 2)
	assert.Equal(t, "البداية", *detail.Seasons[0].Episodes[0].Title)
	assert.Equal(t, "Second", *detail.Seasons[0].Episodes[1].Title)
}

func TestUserProjections_NullIdentifiers(t *testing.T) {
	user := &User{ID: "u1", Email: "a@example.com", FirstName: NewLocalizedText("Omar", "عمر"), PreferredLanguage: LanguageArabic}

	raw, err := json.Marshal(NewPublicUser(user))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","email":"a@example.com","phone":null}`, string(raw))

	profile := NewUserProfile(user)
	assert.Equal(t, "عمر", *profile.FirstName)
	assert.Nil(t, profile.LastName)
}

func TestNewWatchlistItem(t *testing.T) {
	entry := &WatchlistEntry{
		ID:     "w1",
		ShowID: "s1",
		Status: WatchStatusWatching,
		Show:   &Show{ID: "s1", Title: NewLocalizedText("Family Ties", ""), PosterURL: "poster.jpg"},
	}

	item := NewWatchlistItem(entry, LanguageArabic)

	assert.Equal(t, ContentTypeShow, item.ContentType)
	assert.Equal(t, "s1", item.ContentID)
	assert.Equal(t, "Family Ties", *item.Title)
	assert.Equal(t, "poster.jpg", item.PosterURL)
}
