package challenges

import (
	"testing"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"

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
		&progress.Record{},
		&Challenge{},
		&Progress{},
	)
	require.NoError(t, err)

	return db
}

func seedEpisodes(t *testing.T, db *gorm.DB, n int) []catalog.Episode {
	s := catalog.Series{Title: "Test Series"}
	require.NoError(t, db.Create(&s).Error)
	season := catalog.Season{SeriesID: s.ID, SeasonNumber: 1}
	require.NoError(t, db.Create(&season).Error)

	eps := make([]catalog.Episode, 0, n)
	for i := 1; i <= n; i++ {
		ep := catalog.Episode{SeasonID: season.ID, EpisodeNumber: i}
		require.NoError(t, db.Create(&ep).Error)
		eps = append(eps, ep)
	}
	return eps
}

func openChallenge(t *testing.T, db *gorm.DB, target int) Challenge {
	now := time.Now()
	ch := Challenge{
		Title:          "Binge week",
		TargetEpisodes: target,
		StartsAt:       now.Add(-24 * time.Hour),
		EndsAt:         now.Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&ch).Error)
	return ch
}

func TestRecalculateCountsWatchesInWindow(t *testing.T) {
	db := setupTestDB(t)
	eps := seedEpisodes(t, db, 5)
	ch := openChallenge(t, db, 3)

	for i := 0; i < 2; i++ {
		_, err := progress.MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}

	require.NoError(t, Recalculate(db, 1))

	var p Progress
	require.NoError(t, db.First(&p, "user_id = ? AND challenge_id = ?", 1, ch.ID).Error)
	assert.Equal(t, 2, p.EpisodesWatched)
	assert.Nil(t, p.CompletedAt)
}

func TestRecalculateStampsCompletionOnce(t *testing.T) {
	db := setupTestDB(t)
	eps := seedEpisodes(t, db, 5)
	ch := openChallenge(t, db, 3)

	for i := 0; i < 3; i++ {
		_, err := progress.MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}
	require.NoError(t, Recalculate(db, 1))

	var p Progress
	require.NoError(t, db.First(&p, "user_id = ? AND challenge_id = ?", 1, ch.ID).Error)
	require.NotNil(t, p.CompletedAt)
	firstStamp := *p.CompletedAt

	// watching more keeps the original completion timestamp
	_, err := progress.MarkWatched(db, 1, eps[3].ID, true)
	require.NoError(t, err)
	require.NoError(t, Recalculate(db, 1))

	require.NoError(t, db.First(&p, "user_id = ? AND challenge_id = ?", 1, ch.ID).Error)
	assert.Equal(t, 4, p.EpisodesWatched)
	require.NotNil(t, p.CompletedAt)
	assert.True(t, p.CompletedAt.Equal(firstStamp))
}

func TestRecalculateIgnoresClosedWindows(t *testing.T) {
	db := setupTestDB(t)
	eps := seedEpisodes(t, db, 2)

	now := time.Now()
	closed := Challenge{
		Title:          "Last month",
		TargetEpisodes: 1,
		StartsAt:       now.Add(-60 * 24 * time.Hour),
		EndsAt:         now.Add(-30 * 24 * time.Hour),
	}
	require.NoError(t, db.Create(&closed).Error)

	_, err := progress.MarkWatched(db, 1, eps[0].ID, true)
	require.NoError(t, err)
	require.NoError(t, Recalculate(db, 1))

	var count int64
	require.NoError(t, db.Model(&Progress{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
