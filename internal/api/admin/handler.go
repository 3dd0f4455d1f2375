package admin

import (
	"net/http"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/reviews"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
	IsVerified   bool   `json:"is_verified"`
	CreatedAt    string `json:"created_at"`
}

type AdminStats struct {
	TotalUsers     int            `json:"total_users"`
	TotalSeries    int            `json:"total_series"`
	TotalEpisodes  int            `json:"total_episodes"`
	TotalRatings   int            `json:"total_ratings"`
	RecentWatches  int            `json:"recent_watches"`
	SeriesPerGenre map[string]int `json:"series_per_genre"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Order("created_at DESC").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:           u.ID,
			Name:         u.Name,
			Lastname:     u.Lastname,
			Email:        u.Email,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
			IsVerified:   u.IsVerified,
			CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalSeries, totalEpisodes, totalRatings int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&catalog.Series{}).Count(&totalSeries)
	database.DB.Model(&catalog.Episode{}).Count(&totalEpisodes)
	database.DB.Model(&ratings.Rating{}).Count(&totalRatings)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	var recentWatches int64
	database.DB.Model(&progress.Record{}).
		Where("is_completed = ? AND watched_at >= ?", true, thirtyDaysAgo).
		Count(&recentWatches)

	stats.TotalUsers = int(totalUsers)
	stats.TotalSeries = int(totalSeries)
	stats.TotalEpisodes = int(totalEpisodes)
	stats.TotalRatings = int(totalRatings)
	stats.RecentWatches = int(recentWatches)

	type GenreCount struct {
		Name  *string
		Count int
	}
	var counts []GenreCount

	database.DB.
		Table("series").
		Select("genres.name, COUNT(series.id) as count").
		Joins("LEFT JOIN series_genres ON series_genres.series_id = series.id").
		Joins("LEFT JOIN genres ON genres.id = series_genres.genre_id").
		Group("genres.name").
		Scan(&counts)

	stats.SeriesPerGenre = map[string]int{}
	for _, g := range counts {
		name := "Uncategorized"
		if g.Name != nil {
			name = *g.Name
		}
		stats.SeriesPerGenre[name] = g.Count
	}

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var userRatings []ratings.Rating
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&userRatings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	var userReviews []reviews.Review
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&userReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	var episodesWatched int64
	database.DB.Model(&progress.Record{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&episodesWatched)

	c.JSON(http.StatusOK, gin.H{
		"user": AdminUser{
			ID:           user.ID,
			Name:         user.Name,
			Lastname:     user.Lastname,
			Email:        user.Email,
			Role:         user.Role,
			AuthProvider: user.AuthProvider,
			IsVerified:   user.IsVerified,
			CreatedAt:    user.CreatedAt.Format("2006-01-02 15:04"),
		},
		"ratings":          userRatings,
		"reviews":          userReviews,
		"episodes_watched": episodesWatched,
	})
}
