package progress

import (
	"net/http"
	"strconv"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"

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
// POST /episodes/:id/watch
// body: { "completed": true }, defaults to true when omitted
// ------------------------------
func MarkEpisodeWatched(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	episodeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MarkWatchedRequest
	req.Completed = true
	_ = c.ShouldBindJSON(&req) // allow empty body

	rec, err := progress.MarkWatched(database.DB, userID, episodeID, req.Completed)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ------------------------------
// DELETE /episodes/:id/watch
// ------------------------------
func RemoveEpisodeProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	episodeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := progress.RemoveRecord(database.DB, userID, episodeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No progress recorded for this episode"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /seasons/:id/watch-up-to
// body: { "count": N }
// ------------------------------
func MarkSeasonUpTo(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seasonID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MarkUpToRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive number"})
		return
	}

	marked, err := progress.MarkSeasonUpTo(database.DB, userID, seasonID, req.Count)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

// ------------------------------
// GET /series/:id/progress
// ------------------------------
func GetSeriesProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := paramID(c, "id")
	if !ok {
		return
	}

	summary, err := progress.SeriesSummary(database.DB, userID, seriesID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ------------------------------
// GET /series/:id/next-episode
// ------------------------------
func GetNextEpisode(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seriesID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ep, err := progress.NextEpisode(database.DB, userID, seriesID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load next episode"})
		return
	}

	if ep == nil {
		c.JSON(http.StatusOK, gin.H{"all_watched": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"all_watched": false, "episode": ep})
}

// ------------------------------
// GET /seasons/:id/current-episode
// ------------------------------
func GetCurrentEpisodeForSeason(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	seasonID, ok := paramID(c, "id")
	if !ok {
		return
	}

	current, err := progress.CurrentEpisodeForSeason(database.DB, userID, seasonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_episode": current})
}

// ------------------------------
// GET /progress  (dashboard: every series the user has touched)
// ------------------------------
func GetDashboard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var seriesIDs []uint
	err := database.DB.Table("progress_records").
		Joins("JOIN episodes ON episodes.id = progress_records.episode_id").
		Joins("JOIN seasons ON seasons.id = episodes.season_id").
		Where("progress_records.user_id = ?", userID).
		Distinct().
		Pluck("seasons.series_id", &seriesIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	out := make([]DashboardEntryDTO, 0, len(seriesIDs))
	for _, sid := range seriesIDs {
		var s catalog.Series
		if err := database.DB.First(&s, "id = ?", sid).Error; err != nil {
			continue
		}
		summary, err := progress.SeriesSummary(database.DB, userID, sid)
		if err != nil {
			continue
		}
		out = append(out, DashboardEntryDTO{
			SeriesID: sid,
			Title:    s.Title,
			CoverURL: s.CoverURL,
			Summary:  summary,
		})
	}

	c.JSON(http.StatusOK, gin.H{"list": out})
}
