package ratings

import (
	"net/http"
	"strconv"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func seriesParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// PUT /series/:id/rating
// Creating and overwriting share one endpoint; both require the whole
// series watched.
// ------------------------------
func UpsertRating(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	done, err := progress.HasCompleted(database.DB, userID, seriesID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check progress"})
		return
	}
	if !done {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Finish the series before rating it"})
		return
	}

	rating, err := ratings.Upsert(database.DB, userID, seriesID, req.Score, req.Comment)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		if err == ratings.ErrScoreOutOfRange {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 10"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ------------------------------
// DELETE /series/:id/rating
// ------------------------------
func DeleteRating(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	if err := ratings.Delete(database.DB, userID, seriesID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /series/:id/ratings
// ------------------------------
func ListRatings(c *gin.Context) {
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	var list []ratings.Rating
	if err := database.DB.
		Where("series_id = ?", seriesID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}
