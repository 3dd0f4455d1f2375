package reviews

import (
	"net/http"
	"strconv"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/reviews"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Body string `json:"body" binding:"required"`
}

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
// PUT /series/:id/review  (create or replace; gated on full watch)
// ------------------------------
func UpsertReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	var req ReviewRequest
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
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Finish the series before reviewing it"})
		return
	}

	review, err := reviews.Upsert(database.DB, userID, seriesID, req.Body)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// ------------------------------
// DELETE /series/:id/review
// ------------------------------
func DeleteReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	if err := reviews.Delete(database.DB, userID, seriesID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /series/:id/reviews
// ------------------------------
func ListReviews(c *gin.Context) {
	seriesID, ok := seriesParam(c)
	if !ok {
		return
	}

	var list []reviews.Review
	if err := database.DB.
		Where("series_id = ?", seriesID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}
