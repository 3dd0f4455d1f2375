package catalog

import (
	"net/http"
	"strings"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /series  (public browse)
// ------------------------------
func ListSeries(c *gin.Context) {
	title := c.Query("title")
	genre := c.Query("genre")
	page := getPage(c)
	pageSize := getPageSize(c)

	var total int64
	if err := browseSeriesQuery(database.DB, title, genre).
		Distinct("series.id").
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	var series []catalog.Series
	err := browseSeriesQuery(database.DB, title, genre).
		Preload("Genres").
		Order("title ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&series).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	out := make([]SeriesListItemDTO, 0, len(series))
	for _, s := range series {
		out = append(out, toSeriesListItemDTO(s))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"list":      out,
	})
}

// ------------------------------
// GET /series/:id  (public detail, seasons + episodes + credits)
// ------------------------------
func GetSeriesByID(c *gin.Context) {
	id := c.Param("id")

	var s catalog.Series
	err := database.DB.
		Preload("Genres").
		Preload("Actors").
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("season_number ASC")
		}).
		Preload("Seasons.Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episode_number ASC")
		}).
		First(&s, "id = ?", id).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	c.JSON(http.StatusOK, toSeriesDetailDTO(s))
}

// ------------------------------
// GET /genres
// ------------------------------
func ListGenres(c *gin.Context) {
	var genres []catalog.Genre
	if err := database.DB.Order("name ASC").Find(&genres).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load genres"})
		return
	}
	c.JSON(http.StatusOK, genres)
}

// ------------------------------
// GET /actors  (paginated, optional last-name search)
// ------------------------------
func ListActors(c *gin.Context) {
	page := getPage(c)
	pageSize := getPageSize(c)
	search := strings.ToLower(c.Query("name"))

	q := database.DB.Model(&catalog.Actor{})
	if search != "" {
		q = q.Where("LOWER(last_name) LIKE ? OR LOWER(first_name) LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actors"})
		return
	}

	var actors []catalog.Actor
	if err := q.Order("last_name ASC, first_name ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&actors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"list":      actors,
	})
}

// ------------------------------
// GET /actors/:id  (with credited series)
// ------------------------------
func GetActorByID(c *gin.Context) {
	id := c.Param("id")

	var actor catalog.Actor
	if err := database.DB.First(&actor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Actor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actor"})
		return
	}

	var credits []catalog.Series
	if err := database.DB.Model(&catalog.Series{}).
		Joins("JOIN series_actors ON series_actors.series_id = series.id").
		Where("series_actors.actor_id = ?", actor.ID).
		Order("title ASC").
		Find(&credits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load credits"})
		return
	}

	creditDTOs := make([]SeriesListItemDTO, 0, len(credits))
	for _, s := range credits {
		creditDTOs = append(creditDTOs, toSeriesListItemDTO(s))
	}

	c.JSON(http.StatusOK, gin.H{
		"actor":  actor,
		"series": creditDTOs,
	})
}
