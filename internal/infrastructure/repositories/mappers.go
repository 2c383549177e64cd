package repositories

import "github.com/you/streamsvc/domain"

func genreToDomain(g *DBGenre) *domain.Genre {
	if g == nil {
		return nil
	}
	return &domain.Genre{ID: g.ID, Slug: g.Slug, Name: domain.NewLocalizedText(g.NameEn, g.NameAr)}
}

func platformsToDomain(links []DBContentPlatform) []domain.PlatformAvailability {
	out := make([]domain.PlatformAvailability, 0, len(links))
	for _, l := range links {
		out = append(out, domain.PlatformAvailability{
			Platform: domain.StreamingPlatform{
				ID:      l.Platform.ID,
				Name:    l.Platform.Name,
				LogoURL: l.Platform.LogoURL,
			},
			IsAvailable:    l.IsAvailable,
			AvailableFrom:  l.AvailableFrom,
			AvailableUntil: l.AvailableUntil,
		})
	}
	return out
}

func movieToDomain(m *DBMovie) *domain.Movie {
	movie := &domain.Movie{
		ID:           m.ID,
		Slug:         m.Slug,
		Title:        domain.NewLocalizedText(m.TitleEn, m.TitleAr),
		Description:  domain.NewLocalizedText(m.DescriptionEn, m.DescriptionAr),
		Director:     domain.NewLocalizedText(m.DirectorEn, m.DirectorAr),
		Cast:         domain.NewLocalizedText(m.CastEn, m.CastAr),
		ReleaseDate:  m.ReleaseDate,
		Duration:     m.Duration,
		Rating:       m.Rating,
		PosterURL:    m.PosterURL,
		ThumbnailURL: m.ThumbnailURL,
		BackdropURL:  m.BackdropURL,
		TrailerURL:   m.TrailerURL,
		IsAvailable:  m.IsAvailable,
		Genre:        genreToDomain(m.Genre),
		Platforms:    platformsToDomain(m.Platforms),
	}

	for _, rv := range m.Reviews {
		review := domain.Review{
			ID:      rv.ID,
			Title:   domain.NewLocalizedText(rv.TitleEn, rv.TitleAr),
			Content: domain.NewLocalizedText(rv.ContentEn, rv.ContentAr),
			Rating:  rv.Rating,
		}
		if rv.User != nil {
			review.AuthorName = rv.User.FirstNameEn
		}
		movie.Reviews = append(movie.Reviews, review)
	}
	for _, rt := range m.Ratings {
		movie.Ratings = append(movie.Ratings, domain.UserRating{UserID: rt.UserID, Score: rt.Score})
	}
	return movie
}

func showToDomain(s *DBShow) *domain.Show {
	show := &domain.Show{
		ID:            s.ID,
		Slug:          s.Slug,
		Title:         domain.NewLocalizedText(s.TitleEn, s.TitleAr),
		Description:   domain.NewLocalizedText(s.DescriptionEn, s.DescriptionAr),
		ReleaseDate:   s.ReleaseDate,
		TotalSeasons:  s.TotalSeasons,
		TotalEpisodes: s.TotalEpisodes,
		Rating:        s.Rating,
		PosterURL:     s.PosterURL,
		ThumbnailURL:  s.ThumbnailURL,
		BackdropURL:   s.BackdropURL,
		IsAvailable:   s.IsAvailable,
		Genre:         genreToDomain(s.Genre),
		Platforms:     platformsToDomain(s.Platforms),
	}

	for _, se := range s.Seasons {
		season := domain.Season{
			ID:           se.ID,
			SeasonNumber: se.SeasonNumber,
			Title:        domain.NewLocalizedText(se.TitleEn, se.TitleAr),
		}
		for _, ep := range se.Episodes {
			season.Episodes = append(season.Episodes, domain.Episode{
				ID:            ep.ID,
				EpisodeNumber: ep.EpisodeNumber,
				Title:         domain.NewLocalizedText(ep.TitleEn, ep.TitleAr),
				Description:   domain.NewLocalizedText(ep.DescriptionEn, ep.DescriptionAr),
				Duration:      ep.Duration,
				ReleaseDate:   ep.ReleaseDate,
				ThumbnailURL:  ep.ThumbnailURL,
			})
		}
		show.Seasons = append(show.Seasons, season)
	}
	return show
}

func channelToDomain(c *DBLiveChannel) *domain.LiveChannel {
	return &domain.LiveChannel{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        domain.NewLocalizedText(c.NameEn, c.NameAr),
		Description: domain.NewLocalizedText(c.DescriptionEn, c.DescriptionAr),
		Category:    domain.NewLocalizedText(c.CategoryEn, c.CategoryAr),
		LogoURL:     c.LogoURL,
		StreamURL:   c.StreamURL,
		IsLive:      c.IsLive,
		Platforms:   platformsToDomain(c.Platforms),
	}
}

func articleToDomain(a *DBArticle) *domain.Article {
	article := &domain.Article{
		ID:            a.ID,
		Slug:          a.Slug,
		Title:         domain.NewLocalizedText(a.TitleEn, a.TitleAr),
		Excerpt:       domain.NewLocalizedText(a.ExcerptEn, a.ExcerptAr),
		Content:       domain.NewLocalizedText(a.ContentEn, a.ContentAr),
		FeaturedImage: a.FeaturedImage,
		IsPublished:   a.IsPublished,
		PublishedAt:   a.PublishedAt,
	}
	if a.Author != nil {
		article.AuthorName = a.Author.FirstNameEn
	}
	return article
}
