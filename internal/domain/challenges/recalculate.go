package challenges

import (
	"time"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/progress"

	"gorm.io/gorm"
)

// Recalculate recounts the user's completed ledger rows inside each open
// challenge window and upserts their standing. Invoked from the event bus
// after an episode watch; a failure here is logged by the caller and never
// reaches the user.
func Recalculate(db *gorm.DB, userID uint) error {
	now := time.Now()

	var open []Challenge
	if err := db.Where("starts_at <= ? AND ends_at >= ?", now, now).
		Find(&open).Error; err != nil {
		return err
	}

	for _, ch := range open {
		var count int64
		if err := db.Model(&progress.Record{}).
			Where("user_id = ? AND is_completed = ?", userID, true).
			Where("watched_at >= ? AND watched_at <= ?", ch.StartsAt, ch.EndsAt).
			Count(&count).Error; err != nil {
			return err
		}

		var completedAt *time.Time
		if int(count) >= ch.TargetEpisodes {
			t := now
			completedAt = &t
		}

		var existing Progress
		e := db.First(&existing, "user_id = ? AND challenge_id = ?", userID, ch.ID).Error
		if e != nil {
			if e != gorm.ErrRecordNotFound {
				return e
			}
			row := Progress{
				UserID:          userID,
				ChallengeID:     ch.ID,
				EpisodesWatched: int(count),
				CompletedAt:     completedAt,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
			continue
		}

		updates := map[string]interface{}{
			"episodes_watched": int(count),
		}
		// completed_at is stamped once and kept
		if existing.CompletedAt == nil && completedAt != nil {
			updates["completed_at"] = completedAt
		}
		if err := db.Model(&Progress{}).
			Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return err
		}
	}

	return nil
}
