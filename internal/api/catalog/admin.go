package catalog

import (
	"errors"
	"net/http"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/reviews"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/watchlists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errDuplicateNumber = errors.New("duplicate number")

// ------------------------------
// POST /admin/series
// ------------------------------
func CreateSeries(c *gin.Context) {
	var req CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		s := catalog.Series{
			Title:       req.Title,
			Description: req.Description,
			ReleaseDate: req.ReleaseDate,
			CoverURL:    req.CoverURL,
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}

		if err := replaceGenres(tx, &s, req.GenreIDs); err != nil {
			return err
		}
		if err := replaceActors(tx, &s, req.ActorIDs); err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": s.ID})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown genre or actor id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create series", "details": err.Error()})
	}
}

// ------------------------------
// PUT /admin/series/:id
// ------------------------------
func UpdateSeries(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.ReleaseDate != nil {
			updates["release_date"] = *req.ReleaseDate
		}
		if req.CoverURL != nil {
			updates["cover_url"] = *req.CoverURL
		}
		if len(updates) > 0 {
			if err := tx.Model(&catalog.Series{}).
				Where("id = ?", s.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.GenreIDs != nil {
			if err := replaceGenres(tx, &s, req.GenreIDs); err != nil {
				return err
			}
		}
		if req.ActorIDs != nil {
			if err := replaceActors(tx, &s, req.ActorIDs); err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update series", "details": err.Error()})
	}
}

// ------------------------------
// DELETE /admin/series/:id
// Removes the series and everything hanging off it: seasons, episodes,
// progress, ratings, reviews and watchlist entries, all in one transaction.
// ------------------------------
func DeleteSeries(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", id).Error; err != nil {
			return err
		}

		if err := progress.DeleteBySeries(tx, s.ID); err != nil {
			return err
		}
		if err := ratings.DeleteBySeries(tx, s.ID); err != nil {
			return err
		}
		if err := reviews.DeleteBySeries(tx, s.ID); err != nil {
			return err
		}
		if err := watchlists.DeleteBySeries(tx, s.ID); err != nil {
			return err
		}

		if err := tx.Where(
			"season_id IN (?)",
			tx.Table("seasons").Select("id").Where("series_id = ?", s.ID),
		).Delete(&catalog.Episode{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalog.Season{}, "series_id = ?", s.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&s).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&s).Association("Actors").Clear(); err != nil {
			return err
		}

		return tx.Delete(&catalog.Series{}, "id = ?", s.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete series"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /admin/series/:id/seasons
// ------------------------------
func CreateSeason(c *gin.Context) {
	seriesID := c.Param("id")

	var req CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var s catalog.Series
		if err := tx.First(&s, "id = ?", seriesID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&catalog.Season{}).
			Where("series_id = ? AND season_number = ?", s.ID, req.SeasonNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicateNumber
		}

		season := catalog.Season{
			SeriesID:     s.ID,
			SeasonNumber: req.SeasonNumber,
			Title:        req.Title,
		}
		if err := tx.Create(&season).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": season.ID})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		if err == errDuplicateNumber {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Season number already exists for this series"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create season", "details": err.Error()})
	}
}

// ------------------------------
// PUT /admin/seasons/:id
// ------------------------------
func UpdateSeason(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var season catalog.Season
		if err := tx.First(&season, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.SeasonNumber != nil && *req.SeasonNumber != season.SeasonNumber {
			var count int64
			if err := tx.Model(&catalog.Season{}).
				Where("series_id = ? AND season_number = ? AND id <> ?",
					season.SeriesID, *req.SeasonNumber, season.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errDuplicateNumber
			}
			updates["season_number"] = *req.SeasonNumber
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}

		if len(updates) > 0 {
			if err := tx.Model(&catalog.Season{}).
				Where("id = ?", season.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		if err == errDuplicateNumber {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Season number already exists for this series"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update season", "details": err.Error()})
	}
}

// ------------------------------
// DELETE /admin/seasons/:id
// ------------------------------
func DeleteSeason(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var season catalog.Season
		if err := tx.First(&season, "id = ?", id).Error; err != nil {
			return err
		}

		if err := progress.DeleteBySeason(tx, season.ID); err != nil {
			return err
		}
		if err := tx.Delete(&catalog.Episode{}, "season_id = ?", season.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&catalog.Season{}, "id = ?", season.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete season"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /admin/seasons/:id/episodes
// ------------------------------
func CreateEpisode(c *gin.Context) {
	seasonID := c.Param("id")

	var req CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var season catalog.Season
		if err := tx.First(&season, "id = ?", seasonID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&catalog.Episode{}).
			Where("season_id = ? AND episode_number = ?", season.ID, req.EpisodeNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicateNumber
		}

		ep := catalog.Episode{
			SeasonID:        season.ID,
			EpisodeNumber:   req.EpisodeNumber,
			Title:           req.Title,
			AirDate:         req.AirDate,
			DurationMinutes: req.DurationMinutes,
		}
		if err := tx.Create(&ep).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": ep.ID})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		if err == errDuplicateNumber {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Episode number already exists for this season"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create episode", "details": err.Error()})
	}
}

// ------------------------------
// PUT /admin/episodes/:id
// ------------------------------
func UpdateEpisode(c *gin.Context) {
	id := c.Param("id")

	var req UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ep catalog.Episode
		if err := tx.First(&ep, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.EpisodeNumber != nil && *req.EpisodeNumber != ep.EpisodeNumber {
			var count int64
			if err := tx.Model(&catalog.Episode{}).
				Where("season_id = ? AND episode_number = ? AND id <> ?",
					ep.SeasonID, *req.EpisodeNumber, ep.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errDuplicateNumber
			}
			updates["episode_number"] = *req.EpisodeNumber
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.AirDate != nil {
			updates["air_date"] = *req.AirDate
		}
		if req.DurationMinutes != nil {
			updates["duration_minutes"] = *req.DurationMinutes
		}

		if len(updates) > 0 {
			if err := tx.Model(&catalog.Episode{}).
				Where("id = ?", ep.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
			return
		}
		if err == errDuplicateNumber {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Episode number already exists for this season"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update episode", "details": err.Error()})
	}
}

// ------------------------------
// DELETE /admin/episodes/:id
// ------------------------------
func DeleteEpisode(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ep catalog.Episode
		if err := tx.First(&ep, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&progress.Record{}, "episode_id = ?", ep.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&catalog.Episode{}, "id = ?", ep.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// Genres (admin)
// ------------------------------
func CreateGenre(c *gin.Context) {
	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := catalog.Genre{Name: req.Name}
	if err := database.DB.Create(&g).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Genre may already exist", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": g.ID})
}

func UpdateGenre(c *gin.Context) {
	id := c.Param("id")

	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&catalog.Genre{}).Where("id = ?", id).Update("name", req.Name)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update genre"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DeleteGenre(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&catalog.Genre{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete genre"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// Actors (admin)
// ------------------------------
func CreateActor(c *gin.Context) {
	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := catalog.Actor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
	}
	if err := database.DB.Create(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create actor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": a.ID})
}

func UpdateActor(c *gin.Context) {
	id := c.Param("id")

	var req ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&catalog.Actor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"biography":  req.Biography,
		"birth_date": req.BirthDate,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update actor"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DeleteActor(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a catalog.Actor
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}
		// the join table has no model of its own; clear it by hand
		if err := tx.Exec("DELETE FROM series_actors WHERE actor_id = ?", a.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&catalog.Actor{}, "id = ?", a.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete actor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ---------- helpers

func replaceGenres(tx *gorm.DB, s *catalog.Series, ids []uint) error {
	if ids == nil {
		return nil
	}
	var genres []catalog.Genre
	if len(ids) > 0 {
		if err := tx.Find(&genres, "id IN ?", ids).Error; err != nil {
			return err
		}
		if len(genres) != len(ids) {
			return gorm.ErrRecordNotFound
		}
	}
	return tx.Model(s).Association("Genres").Replace(genres)
}

func replaceActors(tx *gorm.DB, s *catalog.Series, ids []uint) error {
	if ids == nil {
		return nil
	}
	var actors []catalog.Actor
	if len(ids) > 0 {
		if err := tx.Find(&actors, "id IN ?", ids).Error; err != nil {
			return err
		}
		if len(actors) != len(ids) {
			return gorm.ErrRecordNotFound
		}
	}
	return tx.Model(s).Association("Actors").Replace(actors)
}
