package progress

import (
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"

	"gorm.io/gorm"
)

// Summary is the per-series progress view shown on dashboards.
type Summary struct {
	TotalEpisodes        int     `json:"total_episodes"`
	WatchedEpisodes      int     `json:"watched_episodes"`
	ProgressPercentage   float64 `json:"progress_percentage"`
	CurrentEpisodeNumber int     `json:"current_episode_number"`
	CurrentSeasonNumber  int     `json:"current_season_number"`
	Status               Status  `json:"status"`
}

func seriesEpisodesQuery(db *gorm.DB, seriesID uint) *gorm.DB {
	return db.Table("episodes").
		Joins("JOIN seasons ON seasons.id = episodes.season_id").
		Where("seasons.series_id = ?", seriesID)
}

// SeriesSummary recomputes the user's progress through a series from the
// ledger. The percentage is watched*100/total, 0 for an empty series; the
// "current" episode and season come from the most recently watched completed
// episode, 0/0 when nothing is watched yet.
func SeriesSummary(db *gorm.DB, userID, seriesID uint) (Summary, error) {
	var s catalog.Series
	if err := db.First(&s, "id = ?", seriesID).Error; err != nil {
		return Summary{}, err
	}

	var total int64
	if err := seriesEpisodesQuery(db, seriesID).Count(&total).Error; err != nil {
		return Summary{}, err
	}

	var watched int64
	if err := seriesEpisodesQuery(db, seriesID).
		Joins("JOIN progress_records ON progress_records.episode_id = episodes.id").
		Where("progress_records.user_id = ? AND progress_records.is_completed = ?", userID, true).
		Distinct("episodes.id").
		Count(&watched).Error; err != nil {
		return Summary{}, err
	}

	out := Summary{
		TotalEpisodes:   int(total),
		WatchedEpisodes: int(watched),
		Status:          StatusFor(int(total), int(watched)),
	}
	if total > 0 {
		out.ProgressPercentage = float64(watched) * 100.0 / float64(total)
	}

	// Most recent completed watch decides the "current" position. Bulk marks
	// share one watched_at, so catalogue order breaks the tie.
	var current struct {
		EpisodeNumber int
		SeasonNumber  int
	}
	err := seriesEpisodesQuery(db, seriesID).
		Select("episodes.episode_number, seasons.season_number").
		Joins("JOIN progress_records ON progress_records.episode_id = episodes.id").
		Where("progress_records.user_id = ? AND progress_records.is_completed = ?", userID, true).
		Order("progress_records.watched_at DESC, seasons.season_number DESC, episodes.episode_number DESC").
		Limit(1).
		Scan(&current).Error
	if err != nil {
		return Summary{}, err
	}
	out.CurrentEpisodeNumber = current.EpisodeNumber
	out.CurrentSeasonNumber = current.SeasonNumber

	return out, nil
}

// CurrentEpisodeForSeason returns the length of the longest consecutive run
// of completed episodes starting at episode 1. The walk stops at the first
// gap, including a completed episode whose number is not exactly one past the
// running counter: watching {1,2,4} yields 2, not 3.
func CurrentEpisodeForSeason(db *gorm.DB, userID, seasonID uint) (int, error) {
	var season catalog.Season
	if err := db.First(&season, "id = ?", seasonID).Error; err != nil {
		return 0, err
	}

	var watchedNumbers []int
	err := db.Table("episodes").
		Joins("JOIN progress_records ON progress_records.episode_id = episodes.id").
		Where("episodes.season_id = ?", seasonID).
		Where("progress_records.user_id = ? AND progress_records.is_completed = ?", userID, true).
		Order("episodes.episode_number ASC").
		Pluck("episodes.episode_number", &watchedNumbers).Error
	if err != nil {
		return 0, err
	}

	current := 0
	for _, num := range watchedNumbers {
		if num != current+1 {
			break
		}
		current = num
	}
	return current, nil
}

// NextEpisode returns the first episode of the series, ordered by season then
// episode number, the user has not completed. nil means everything is
// watched.
func NextEpisode(db *gorm.DB, userID, seriesID uint) (*catalog.Episode, error) {
	var s catalog.Series
	if err := db.First(&s, "id = ?", seriesID).Error; err != nil {
		return nil, err
	}

	var ep catalog.Episode
	err := db.Table("episodes").
		Select("episodes.*").
		Joins("JOIN seasons ON seasons.id = episodes.season_id").
		Where("seasons.series_id = ?", seriesID).
		Where("episodes.id NOT IN (?)",
			db.Table("progress_records").
				Select("episode_id").
				Where("user_id = ? AND is_completed = ?", userID, true),
		).
		Order("seasons.season_number ASC, episodes.episode_number ASC").
		Limit(1).
		Scan(&ep).Error
	if err != nil {
		return nil, err
	}
	if ep.ID == 0 {
		return nil, nil
	}
	return &ep, nil
}

// HasCompleted is the completion gate guarding ratings and reviews: true iff
// the user has a completed ledger row for every episode of the series. A
// series with no episodes counts as completed.
func HasCompleted(db *gorm.DB, userID, seriesID uint) (bool, error) {
	var total int64
	if err := seriesEpisodesQuery(db, seriesID).Count(&total).Error; err != nil {
		return false, err
	}
	if total == 0 {
		return true, nil
	}

	var watched int64
	if err := seriesEpisodesQuery(db, seriesID).
		Joins("JOIN progress_records ON progress_records.episode_id = episodes.id").
		Where("progress_records.user_id = ? AND progress_records.is_completed = ?", userID, true).
		Distinct("episodes.id").
		Count(&watched).Error; err != nil {
		return false, err
	}

	return watched >= total, nil
}
