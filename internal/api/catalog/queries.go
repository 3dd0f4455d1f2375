package catalog

import (
	"strconv"
	"strings"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getPage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	return page
}

func getPageSize(c *gin.Context) int {
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize <= 0 {
		pageSize = 10
	}
	return pageSize
}

// browseSeriesQuery applies the public list filters: a case-insensitive title
// substring and an optional genre name.
func browseSeriesQuery(db *gorm.DB, title, genre string) *gorm.DB {
	q := db.Model(&catalog.Series{})
	if title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}
	if genre != "" {
		q = q.Joins("JOIN series_genres ON series_genres.series_id = series.id").
			Joins("JOIN genres ON genres.id = series_genres.genre_id").
			Where("LOWER(genres.name) = ?", strings.ToLower(genre))
	}
	return q
}
