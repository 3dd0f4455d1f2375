package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Genre{},
		&catalog.Actor{},
		&catalog.Series{},
		&catalog.Season{},
		&catalog.Episode{},
		&Record{},
	)
	require.NoError(t, err)

	return db
}

// seedSeries creates a series with the given number of seasons, each holding
// episodesPerSeason episodes numbered from 1.
func seedSeries(t *testing.T, db *gorm.DB, seasons, episodesPerSeason int) catalog.Series {
	s := catalog.Series{Title: "Test Series"}
	require.NoError(t, db.Create(&s).Error)

	for sn := 1; sn <= seasons; sn++ {
		season := catalog.Season{SeriesID: s.ID, SeasonNumber: sn}
		require.NoError(t, db.Create(&season).Error)

		for en := 1; en <= episodesPerSeason; en++ {
			ep := catalog.Episode{SeasonID: season.ID, EpisodeNumber: en}
			require.NoError(t, db.Create(&ep).Error)
		}
	}

	return s
}

func episodesOf(t *testing.T, db *gorm.DB, seriesID uint) []catalog.Episode {
	var eps []catalog.Episode
	err := db.Table("episodes").
		Select("episodes.*").
		Joins("JOIN seasons ON seasons.id = episodes.season_id").
		Where("seasons.series_id = ?", seriesID).
		Order("seasons.season_number ASC, episodes.episode_number ASC").
		Scan(&eps).Error
	require.NoError(t, err)
	return eps
}

func TestMarkWatchedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 3)
	eps := episodesOf(t, db, s.ID)

	first, err := MarkWatched(db, 1, eps[0].ID, true)
	require.NoError(t, err)

	second, err := MarkWatched(db, 1, eps[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&Record{}).
		Where("user_id = ? AND episode_id = ?", 1, eps[0].ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkWatchedUnknownEpisode(t *testing.T) {
	db := setupTestDB(t)

	_, err := MarkWatched(db, 1, 999, true)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestMarkSeasonUpTo(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	marked, err := MarkSeasonUpTo(db, 1, season.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, marked)

	var records []Record
	require.NoError(t, db.Where("user_id = ?", 1).Order("episode_id ASC").Find(&records).Error)
	require.Len(t, records, 3)

	// one shared timestamp for the whole batch
	for _, r := range records {
		assert.True(t, r.IsCompleted)
		assert.True(t, r.WatchedAt.Equal(records[0].WatchedAt))
	}
}

func TestMarkSeasonUpToOvershoot(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	marked, err := MarkSeasonUpTo(db, 1, season.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, marked)

	// repeating maintains, never duplicates
	marked, err = MarkSeasonUpTo(db, 1, season.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, marked)

	var count int64
	require.NoError(t, db.Model(&Record{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestMarkSeasonUpToPublishesPerEpisode(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	bus := events.NewBus(16)
	var mu sync.Mutex
	var got []events.Event
	bus.Subscribe(events.EpisodeWatched, func(e events.Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})
	bus.Start()
	events.SetDefault(bus)
	defer func() {
		events.SetDefault(nil)
		bus.Stop()
	}()

	marked, err := MarkSeasonUpTo(db, 1, season.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, marked)

	// one event per marked episode, same as single MarkWatched
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	seen := make(map[uint]bool, len(got))
	for _, e := range got {
		assert.Equal(t, uint(1), e.UserID)
		seen[e.EpisodeID] = true
	}
	assert.Len(t, seen, 3)
}

func TestRemoveRecord(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 2)
	eps := episodesOf(t, db, s.ID)

	_, err := MarkWatched(db, 1, eps[0].ID, true)
	require.NoError(t, err)

	require.NoError(t, RemoveRecord(db, 1, eps[0].ID))
	assert.Equal(t, gorm.ErrRecordNotFound, RemoveRecord(db, 1, eps[0].ID))
}

func TestSeriesSummary(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 2, 5)
	eps := episodesOf(t, db, s.ID)

	// watch the first 7 of 10 episodes in order
	for i := 0; i < 7; i++ {
		_, err := MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}

	sum, err := SeriesSummary(db, 1, s.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, sum.TotalEpisodes)
	assert.Equal(t, 7, sum.WatchedEpisodes)
	assert.InDelta(t, 70.0, sum.ProgressPercentage, 0.001)
	assert.Equal(t, StatusInProgress, sum.Status)
	assert.Equal(t, 2, sum.CurrentEpisodeNumber)
	assert.Equal(t, 2, sum.CurrentSeasonNumber)
}

func TestSeriesSummaryCurrentAfterBulkMark(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	// all three rows share one watched_at; the highest-numbered one wins
	marked, err := MarkSeasonUpTo(db, 1, season.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, marked)

	sum, err := SeriesSummary(db, 1, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.CurrentEpisodeNumber)
	assert.Equal(t, 1, sum.CurrentSeasonNumber)
}

func TestSeriesSummaryUnwatched(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 4)

	sum, err := SeriesSummary(db, 1, s.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.TotalEpisodes)
	assert.Equal(t, 0, sum.WatchedEpisodes)
	assert.Equal(t, 0.0, sum.ProgressPercentage)
	assert.Equal(t, StatusToDo, sum.Status)
	assert.Equal(t, 0, sum.CurrentEpisodeNumber)
	assert.Equal(t, 0, sum.CurrentSeasonNumber)
}

func TestSeriesSummaryFinished(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 2)
	eps := episodesOf(t, db, s.ID)

	for _, ep := range eps {
		_, err := MarkWatched(db, 1, ep.ID, true)
		require.NoError(t, err)
	}

	sum, err := SeriesSummary(db, 1, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, sum.Status)
	assert.InDelta(t, 100.0, sum.ProgressPercentage, 0.001)
}

func TestCurrentEpisodeForSeasonStopsAtGap(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)
	eps := episodesOf(t, db, s.ID)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	// episodes 1, 2 and 4 watched; the gap at 3 stops the run
	for _, i := range []int{0, 1, 3} {
		_, err := MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}

	current, err := CurrentEpisodeForSeason(db, 1, season.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current)
}

func TestCurrentEpisodeForSeasonConsecutive(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 5)
	eps := episodesOf(t, db, s.ID)

	var season catalog.Season
	require.NoError(t, db.First(&season, "series_id = ?", s.ID).Error)

	for i := 0; i < 3; i++ {
		_, err := MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}

	current, err := CurrentEpisodeForSeason(db, 1, season.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, current)
}

func TestNextEpisode(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 2, 2)
	eps := episodesOf(t, db, s.ID)

	next, err := NextEpisode(db, 1, s.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, eps[0].ID, next.ID)

	for i := 0; i < 3; i++ {
		_, err := MarkWatched(db, 1, eps[i].ID, true)
		require.NoError(t, err)
	}

	next, err = NextEpisode(db, 1, s.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, eps[3].ID, next.ID)

	_, err = MarkWatched(db, 1, eps[3].ID, true)
	require.NoError(t, err)

	next, err = NextEpisode(db, 1, s.ID)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestHasCompleted(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 1, 3)
	eps := episodesOf(t, db, s.ID)

	done, err := HasCompleted(db, 1, s.ID)
	require.NoError(t, err)
	assert.False(t, done)

	for _, ep := range eps {
		_, err := MarkWatched(db, 1, ep.ID, true)
		require.NoError(t, err)
	}

	done, err = HasCompleted(db, 1, s.ID)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestHasCompletedEmptySeries(t *testing.T) {
	db := setupTestDB(t)
	s := seedSeries(t, db, 0, 0)

	done, err := HasCompleted(db, 1, s.ID)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestDeleteBySeries(t *testing.T) {
	db := setupTestDB(t)
	a := seedSeries(t, db, 1, 2)
	b := seedSeries(t, db, 1, 2)

	for _, ep := range episodesOf(t, db, a.ID) {
		_, err := MarkWatched(db, 1, ep.ID, true)
		require.NoError(t, err)
	}
	for _, ep := range episodesOf(t, db, b.ID) {
		_, err := MarkWatched(db, 1, ep.ID, true)
		require.NoError(t, err)
	}

	require.NoError(t, DeleteBySeries(db, a.ID))

	var count int64
	require.NoError(t, db.Model(&Record{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
