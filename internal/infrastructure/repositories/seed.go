package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SeedResult reports the rows created by Seed
type SeedResult struct {
	Users    int
	Movies   int
	Shows    int
	Channels int
	Articles int
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptr(s string) *string { return &s }

// Seed replaces all catalog and account data with a small bilingual sample
// set. passwordHash is stored for every sample user.
func Seed(ctx context.Context, db *gorm.DB, passwordHash string) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		models := Models()
		for i := len(models) - 1; i >= 0; i-- {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", models[i], err)
			}
		}

		action := &DBGenre{Slug: "action", NameEn: "Action", NameAr: "حركة"}
		drama := &DBGenre{Slug: "drama", NameEn: "Drama", NameAr: "دراما"}
		comedy := &DBGenre{Slug: "comedy", NameEn: "Comedy", NameAr: "كوميديا"}
		shahid := &DBStreamingPlatform{Name: "Shahid", LogoURL: "https://cdn.example.com/platforms/shahid.png"}
		starz := &DBStreamingPlatform{Name: "STARZPLAY", LogoURL: "https://cdn.example.com/platforms/starzplay.png"}
		for _, v := range []interface{}{action, drama, comedy, shahid, starz} {
			if err := tx.Create(v).Error; err != nil {
				return err
			}
		}

		layla := &DBUser{
			Email:             ptr("layla@example.com"),
			Phone:             ptr("+971500000010"),
			PasswordHash:      passwordHash,
			Role:              "user",
			IsActive:          true,
			IsVerified:        true,
			PreferredLanguage: "ar",
			FirstNameEn:       "Layla",
			FirstNameAr:       "ليلى",
			LastNameEn:        "Haddad",
			LastNameAr:        "حداد",
		}
		sam := &DBUser{
			Email:             ptr("sam@example.com"),
			Phone:             ptr("+971500000011"),
			PasswordHash:      passwordHash,
			Role:              "user",
			IsActive:          true,
			IsVerified:        true,
			PreferredLanguage: "en",
			FirstNameEn:       "Sam",
			FirstNameAr:       "سام",
			LastNameEn:        "Khoury",
			LastNameAr:        "خوري",
		}
		for _, u := range []*DBUser{layla, sam} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
			if err := tx.Create(&DBUserPreferences{UserID: u.ID, Language: u.PreferredLanguage, EmailNotifications: true, Autoplay: true}).Error; err != nil {
				return err
			}
			result.Users++
		}

		desert := &DBMovie{
			Slug:          "desert-crossing",
			TitleEn:       "Desert Crossing",
			TitleAr:       "عبور الصحراء",
			DescriptionEn: "Three strangers share a truck across the Empty Quarter.",
			DescriptionAr: "ثلاثة غرباء يتشاركون شاحنة عبر الربع الخالي.",
			DirectorEn:    "Nadia Saleh",
			DirectorAr:    "نادية صالح",
			CastEn:        `["Karim Nasser","Hala Aziz"]`,
			CastAr:        `["كريم ناصر","هالة عزيز"]`,
			ReleaseDate:   date(2021, time.March, 4),
			Duration:      112,
			Rating:        7.9,
			PosterURL:     "https://cdn.example.com/movies/desert-crossing/poster.jpg",
			TrailerURL:    "https://cdn.example.com/movies/desert-crossing/trailer.mp4",
			IsAvailable:   true,
			GenreID:       drama.ID,
		}
		harbor := &DBMovie{
			Slug:          "the-last-harbor",
			TitleEn:       "The Last Harbor",
			TitleAr:       "الميناء الأخير",
			DescriptionEn: "A coast guard captain races a storm to reach a stranded ferry.",
			DescriptionAr: "قبطان خفر السواحل يسابق العاصفة للوصول إلى عبارة عالقة.",
			DirectorEn:    "Omar Farid",
			DirectorAr:    "عمر فريد",
			CastEn:        `["Youssef Amin"]`,
			ReleaseDate:   date(2023, time.October, 12),
			Duration:      128,
			Rating:        8.4,
			PosterURL:     "https://cdn.example.com/movies/the-last-harbor/poster.jpg",
			IsAvailable:   true,
			GenreID:       action.ID,
		}
		for _, m := range []*DBMovie{desert, harbor} {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			result.Movies++
		}

		lanterns := &DBShow{
			Slug:          "city-of-lanterns",
			TitleEn:       "City of Lanterns",
			TitleAr:       "مدينة الفوانيس",
			DescriptionEn: "A family bakery in old Cairo through three generations.",
			DescriptionAr: "مخبز عائلي في القاهرة القديمة عبر ثلاثة أجيال.",
			ReleaseDate:   date(2022, time.April, 2),
			TotalSeasons:  1,
			TotalEpisodes: 2,
			Rating:        8.1,
			PosterURL:     "https://cdn.example.com/shows/city-of-lanterns/poster.jpg",
			IsAvailable:   true,
			GenreID:       comedy.ID,
			Seasons: []DBSeason{{
				SeasonNumber: 1,
				TitleEn:      "Season 1",
				TitleAr:      "الموسم 1",
				Episodes: []DBEpisode{
					{EpisodeNumber: 1, TitleEn: "The First Oven", TitleAr: "الفرن الأول", Duration: 44, ReleaseDate: date(2022, time.April, 2)},
					{EpisodeNumber: 2, TitleEn: "Ramadan Nights", TitleAr: "ليالي رمضان", Duration: 47, ReleaseDate: date(2022, time.April, 9)},
				},
			}},
		}
		if err := tx.Create(lanterns).Error; err != nil {
			return err
		}
		result.Shows++

		news := &DBLiveChannel{
			Slug:       "gulf-news-24",
			NameEn:     "Gulf News 24",
			NameAr:     "أخبار الخليج 24",
			CategoryEn: "News",
			CategoryAr: "أخبار",
			StreamURL:  "https://stream.example.com/gulf-news-24.m3u8",
			IsLive:     true,
		}
		if err := tx.Create(news).Error; err != nil {
			return err
		}
		result.Channels++

		links := []DBContentPlatform{
			{PlatformID: shahid.ID, MovieID: &desert.ID, IsAvailable: true},
			{PlatformID: starz.ID, MovieID: &harbor.ID, IsAvailable: true},
			{PlatformID: shahid.ID, ShowID: &lanterns.ID, IsAvailable: true},
			{PlatformID: shahid.ID, ChannelID: &news.ID, IsAvailable: true},
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		if err := tx.Create(&[]DBRating{
			{MovieID: desert.ID, UserID: layla.ID, Score: 9},
			{MovieID: desert.ID, UserID: sam.ID, Score: 7},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&DBReview{
			MovieID:   desert.ID,
			UserID:    layla.ID,
			Rating:    9,
			TitleEn:   "Quietly brilliant",
			TitleAr:   "رائع بهدوء",
			ContentEn: "The long silences say more than the dialogue.",
			ContentAr: "الصمت الطويل يقول أكثر من الحوار.",
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&DBArticle{
			Slug:        "best-arabic-dramas-this-year",
			TitleEn:     "The Best Arabic Dramas This Year",
			TitleAr:     "أفضل المسلسلات العربية هذا العام",
			ExcerptEn:   "Our picks for the season.",
			ExcerptAr:   "اختياراتنا لهذا الموسم.",
			ContentEn:   "From Cairo to Dubai, these dramas stood out.",
			ContentAr:   "من القاهرة إلى دبي، تميزت هذه المسلسلات.",
			IsPublished: true,
			PublishedAt: date(2024, time.January, 15),
			AuthorID:    layla.ID,
		}).Error; err != nil {
			return err
		}
		result.Articles++

		return tx.Create(&DBWatchlistEntry{UserID: sam.ID, MovieID: &harbor.ID, Status: "to_watch"}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	return result, nil
}
