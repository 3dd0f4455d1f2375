package users

import (
	"net/http"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var episodesWatched int64
	if err := database.DB.Model(&progress.Record{}).
		Where("user_id = ? AND is_completed = ?", user.ID, true).
		Count(&episodesWatched).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load watch stats"})
		return
	}

	var seriesRated int64
	if err := database.DB.Model(&ratings.Rating{}).
		Where("user_id = ?", user.ID).
		Count(&seriesRated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating stats"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Stats: StatsDTO{
			EpisodesWatched: episodesWatched,
			SeriesRated:     seriesRated,
		},
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif users.VerificationToken
	if err := database.DB.Where("token = ? AND (type = ? OR type = '')", token, "verify_email").
		First(&verif).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid verification token"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", verif.UserID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify account"})
		return
	}

	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can now log in."})
}
