package reviews

import (
	"testing"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Genre{},
		&catalog.Actor{},
		&catalog.Series{},
		&catalog.Season{},
		&catalog.Episode{},
		&Review{},
	)
	require.NoError(t, err)

	return db
}

func TestUpsertReplacesBody(t *testing.T) {
	db := setupTestDB(t)
	s := catalog.Series{Title: "Test Series"}
	require.NoError(t, db.Create(&s).Error)

	first, err := Upsert(db, 1, s.ID, "slow start")
	require.NoError(t, err)

	second, err := Upsert(db, 1, s.ID, "great finale")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "great finale", second.Body)

	var count int64
	require.NoError(t, db.Model(&Review{}).
		Where("user_id = ? AND series_id = ?", 1, s.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertUnknownSeries(t *testing.T) {
	db := setupTestDB(t)

	_, err := Upsert(db, 1, 999, "body")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	s := catalog.Series{Title: "Test Series"}
	require.NoError(t, db.Create(&s).Error)

	_, err := Upsert(db, 1, s.ID, "body")
	require.NoError(t, err)

	require.NoError(t, Delete(db, 1, s.ID))
	assert.Equal(t, gorm.ErrRecordNotFound, Delete(db, 1, s.ID))
}
