package progress

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/catalog"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/events"

	"gorm.io/gorm"
)

// MarkWatched upserts the ledger row for (user, episode). Calling it twice
// with the same arguments leaves exactly one row. The episode must exist.
func MarkWatched(db *gorm.DB, userID, episodeID uint, completed bool) (Record, error) {
	var rec Record

	err := db.Transaction(func(tx *gorm.DB) error {
		var ep catalog.Episode
		if err := tx.First(&ep, "id = ?", episodeID).Error; err != nil {
			return err
		}

		now := time.Now()

		var existing Record
		e := tx.First(&existing, "user_id = ? AND episode_id = ?", userID, episodeID).Error
		if e != nil {
			if e != gorm.ErrRecordNotFound {
				return e
			}
			rec = Record{
				UserID:      userID,
				EpisodeID:   episodeID,
				WatchedAt:   now,
				IsCompleted: completed,
			}
			return tx.Create(&rec).Error
		}

		if err := tx.Model(&Record{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"watched_at":   now,
				"is_completed": completed,
			}).Error; err != nil {
			return err
		}

		existing.WatchedAt = now
		existing.IsCompleted = completed
		rec = existing
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	if completed {
		events.Publish(events.Event{
			Type:      events.EpisodeWatched,
			UserID:    userID,
			EpisodeID: episodeID,
			Timestamp: rec.WatchedAt,
		})
	}

	return rec, nil
}

// MarkSeasonUpTo marks the first min(n, episode count) episodes of a season
// as completed, by ascending episode number, all sharing one watched_at
// timestamp. Returns how many episodes were marked. Idempotent: repeating the
// call only extends or maintains progress. One "episode.watched" event is
// published per marked episode, same as MarkWatched.
func MarkSeasonUpTo(db *gorm.DB, userID, seasonID uint, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	marked := 0
	var markedIDs []uint
	var batchTime time.Time
	err := db.Transaction(func(tx *gorm.DB) error {
		var season catalog.Season
		if err := tx.First(&season, "id = ?", seasonID).Error; err != nil {
			return err
		}

		var episodes []catalog.Episode
		if err := tx.Where("season_id = ?", seasonID).
			Order("episode_number ASC").
			Limit(n).
			Find(&episodes).Error; err != nil {
			return err
		}

		now := time.Now()
		batchTime = now
		for _, ep := range episodes {
			var existing Record
			e := tx.First(&existing, "user_id = ? AND episode_id = ?", userID, ep.ID).Error
			if e != nil {
				if e != gorm.ErrRecordNotFound {
					return e
				}
				rec := Record{
					UserID:      userID,
					EpisodeID:   ep.ID,
					WatchedAt:   now,
					IsCompleted: true,
				}
				if err := tx.Create(&rec).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&Record{}).
					Where("id = ?", existing.ID).
					Updates(map[string]interface{}{
						"watched_at":   now,
						"is_completed": true,
					}).Error; err != nil {
					return err
				}
			}
			marked++
			markedIDs = append(markedIDs, ep.ID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, epID := range markedIDs {
		events.Publish(events.Event{
			Type:      events.EpisodeWatched,
			UserID:    userID,
			EpisodeID: epID,
			Timestamp: batchTime,
		})
	}

	return marked, nil
}

// RemoveRecord deletes the ledger row for (user, episode). Ledger rows are
// never removed any other way.
func RemoveRecord(db *gorm.DB, userID, episodeID uint) error {
	res := db.Delete(&Record{}, "user_id = ? AND episode_id = ?", userID, episodeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBySeries removes all ledger rows (for every user) whose episode
// belongs to the series. Used when a series is deleted from the catalogue.
func DeleteBySeries(tx *gorm.DB, seriesID uint) error {
	return tx.Where(
		"episode_id IN (?)",
		tx.Table("episodes").
			Select("episodes.id").
			Joins("JOIN seasons ON seasons.id = episodes.season_id").
			Where("seasons.series_id = ?", seriesID),
	).Delete(&Record{}).Error
}

// DeleteBySeason removes all ledger rows whose episode belongs to the season.
func DeleteBySeason(tx *gorm.DB, seasonID uint) error {
	return tx.Where(
		"episode_id IN (?)",
		tx.Table("episodes").Select("id").Where("season_id = ?", seasonID),
	).Delete(&Record{}).Error
}
