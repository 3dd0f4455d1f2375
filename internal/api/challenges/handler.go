package challenges

import (
	"net/http"
	"strconv"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/challenges"

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

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /challenges
// ------------------------------
func ListChallenges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var all []challenges.Challenge
	if err := database.DB.Order("starts_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load challenges"})
		return
	}

	var rows []challenges.Progress
	if err := database.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load challenges"})
		return
	}
	byChallenge := make(map[uint]challenges.Progress, len(rows))
	for _, r := range rows {
		byChallenge[r.ChallengeID] = r
	}

	now := time.Now()
	out := make([]ChallengeDTO, 0, len(all))
	for _, ch := range all {
		dto := toChallengeDTO(ch, now)
		if p, found := byChallenge[ch.ID]; found {
			dto.EpisodesWatched = p.EpisodesWatched
			dto.CompletedAt = p.CompletedAt
		}
		out = append(out, dto)
	}

	c.JSON(http.StatusOK, gin.H{"list": out})
}

// ------------------------------
// GET /challenges/:id/progress
// ------------------------------
func GetChallengeProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	chID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var ch challenges.Challenge
	if err := database.DB.First(&ch, "id = ?", chID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load challenge"})
		return
	}

	dto := toChallengeDTO(ch, time.Now())
	var p challenges.Progress
	err := database.DB.First(&p, "user_id = ? AND challenge_id = ?", userID, chID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load challenge"})
		return
	}
	if err == nil {
		dto.EpisodesWatched = p.EpisodesWatched
		dto.CompletedAt = p.CompletedAt
	}

	c.JSON(http.StatusOK, dto)
}

// ------------------------------
// Admin CRUD
// ------------------------------
func CreateChallenge(c *gin.Context) {
	var req ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.EndsAt.After(req.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ends_at must be after starts_at"})
		return
	}

	ch := challenges.Challenge{
		Title:          req.Title,
		Description:    req.Description,
		TargetEpisodes: req.TargetEpisodes,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
	}
	if err := database.DB.Create(&ch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	c.JSON(http.StatusCreated, ch)
}

func UpdateChallenge(c *gin.Context) {
	chID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChallengeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ch challenges.Challenge
	if err := database.DB.First(&ch, "id = ?", chID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load challenge"})
		return
	}

	if req.Title != nil {
		ch.Title = *req.Title
	}
	if req.Description != nil {
		ch.Description = *req.Description
	}
	if req.TargetEpisodes != nil {
		ch.TargetEpisodes = *req.TargetEpisodes
	}
	if req.StartsAt != nil {
		ch.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		ch.EndsAt = *req.EndsAt
	}
	if !ch.EndsAt.After(ch.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ends_at must be after starts_at"})
		return
	}

	if err := database.DB.Save(&ch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update challenge"})
		return
	}

	c.JSON(http.StatusOK, ch)
}

func DeleteChallenge(c *gin.Context) {
	chID, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ch challenges.Challenge
		if err := tx.First(&ch, "id = ?", chID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&challenges.Progress{}, "challenge_id = ?", chID).Error; err != nil {
			return err
		}
		return tx.Delete(&challenges.Challenge{}, "id = ?", chID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
