package watchlists

import (
	"testing"
	"time"

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
		&Collection{},
		&Entry{},
	)
	require.NoError(t, err)

	return db
}

func seedSeries(t *testing.T, db *gorm.DB, title string) catalog.Series {
	s := catalog.Series{Title: title}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func TestIsFavoritesName(t *testing.T) {
	assert.True(t, IsFavoritesName("Favorites"))
	assert.True(t, IsFavoritesName("favorites"))
	assert.True(t, IsFavoritesName("FAVORITES"))
	assert.True(t, IsFavoritesName("Favourite"))
	assert.True(t, IsFavoritesName("  favorites  "))
	assert.False(t, IsFavoritesName("Favs"))
	assert.False(t, IsFavoritesName("Watch later"))
}

func TestEnsureFavoritesCreatesWhenMissing(t *testing.T) {
	db := setupTestDB(t)

	fav, err := EnsureFavorites(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "Favorites", fav.Name)
	assert.Equal(t, uint(1), fav.UserID)

	// second call finds the same row
	again, err := EnsureFavorites(db, 1)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&Collection{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureFavoritesDeduplicates(t *testing.T) {
	db := setupTestDB(t)

	base := time.Now().Add(-time.Hour)
	cols := []Collection{
		{UserID: 1, Name: "Favorites", CreatedAt: base},
		{UserID: 1, Name: "FAVORITES", CreatedAt: base.Add(time.Minute)},
		{UserID: 1, Name: "favourite", CreatedAt: base.Add(2 * time.Minute)},
		{UserID: 1, Name: "Watch later", CreatedAt: base.Add(3 * time.Minute)},
	}
	for i := range cols {
		require.NoError(t, db.Create(&cols[i]).Error)
	}

	a := seedSeries(t, db, "A")
	b := seedSeries(t, db, "B")
	c := seedSeries(t, db, "C")

	// entries spread over the duplicates
	for _, e := range []Entry{
		{UserID: 1, SeriesID: a.ID, CollectionID: &cols[0].ID, AddedAt: time.Now()},
		{UserID: 1, SeriesID: b.ID, CollectionID: &cols[1].ID, AddedAt: time.Now()},
		{UserID: 1, SeriesID: c.ID, CollectionID: &cols[2].ID, AddedAt: time.Now()},
	} {
		entry := e
		require.NoError(t, db.Create(&entry).Error)
	}

	fav, err := EnsureFavorites(db, 1)
	require.NoError(t, err)
	assert.Equal(t, cols[0].ID, fav.ID)

	// duplicates are gone, the unrelated collection survives
	var remaining []Collection
	require.NoError(t, db.Where("user_id = ?", 1).Find(&remaining).Error)
	assert.Len(t, remaining, 2)

	// all three entries now hang off the surviving Favorites
	var moved int64
	require.NoError(t, db.Model(&Entry{}).
		Where("collection_id = ?", fav.ID).
		Count(&moved).Error)
	assert.Equal(t, int64(3), moved)
}

func TestEnsureFavoritesIgnoresOtherUsers(t *testing.T) {
	db := setupTestDB(t)

	_, err := EnsureFavorites(db, 1)
	require.NoError(t, err)
	_, err = EnsureFavorites(db, 2)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&Collection{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddEntryIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, "A")

	first, err := AddEntry(db, 1, s.ID, nil)
	require.NoError(t, err)

	second, err := AddEntry(db, 1, s.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddEntryUnknownSeries(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddEntry(db, 1, 999, nil)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestRemoveEntry(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, "A")

	_, err := AddEntry(db, 1, s.ID, nil)
	require.NoError(t, err)

	require.NoError(t, RemoveEntry(db, 1, s.ID, nil))
	assert.Equal(t, gorm.ErrRecordNotFound, RemoveEntry(db, 1, s.ID, nil))
}

func TestEntryScopedToCollection(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, "A")

	fav, err := EnsureFavorites(db, 1)
	require.NoError(t, err)

	_, err = AddEntry(db, 1, s.ID, nil)
	require.NoError(t, err)
	_, err = AddEntry(db, 1, s.ID, &fav.ID)
	require.NoError(t, err)

	// same series twice, once ungrouped and once in Favorites
	var count int64
	require.NoError(t, db.Model(&Entry{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, RemoveEntry(db, 1, s.ID, nil))
	require.NoError(t, db.Model(&Entry{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
