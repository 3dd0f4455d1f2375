package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/ratings"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/watchlists"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))
	database.DB = db

	r := gin.New()
	r.DELETE("/admin/series/:id", DeleteSeries)
	return r
}

func TestDeleteSeriesCleansUpEverything(t *testing.T) {
	r := setupAdminRouter(t)

	s := catalog.Series{Title: "Doomed"}
	require.NoError(t, database.DB.Create(&s).Error)
	season := catalog.Season{SeriesID: s.ID, SeasonNumber: 1}
	require.NoError(t, database.DB.Create(&season).Error)
	ep := catalog.Episode{SeasonID: season.ID, EpisodeNumber: 1}
	require.NoError(t, database.DB.Create(&ep).Error)

	_, err := progress.MarkWatched(database.DB, 1, ep.ID, true)
	require.NoError(t, err)
	_, err = ratings.Upsert(database.DB, 1, s.ID, 9, "")
	require.NoError(t, err)
	_, err = watchlists.AddEntry(database.DB, 1, s.ID, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/series/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	for name, model := range map[string]interface{}{
		"series":   &catalog.Series{},
		"seasons":  &catalog.Season{},
		"episodes": &catalog.Episode{},
		"progress": &progress.Record{},
		"ratings":  &ratings.Rating{},
		"entries":  &watchlists.Entry{},
	} {
		var count int64
		require.NoError(t, database.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count, name)
	}
}

func TestDeleteSeriesNotFound(t *testing.T) {
	r := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/series/42", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
